// Package bestpath finds the cheapest derivation of a hypergraph's final
// state and computes the inside and outside scores that pruning and
// training build on.
//
// What:
//
//   - Best: axioms (lexical states and the start state) are seeded with One
//     and every arc proposes inside[t1] ⊗ … ⊗ inside[tk] ⊗ weight for its
//     head. Acyclic input is relaxed in topological order, so costs may have
//     any sign. Cyclic input falls back to Knuth's generalisation of Dijkstra:
//     an arc fires once all of its distinct tails are finalised and states are
//     finalised in Less order, which is exact only when Times never makes a
//     cost better (non-negative costs).
//   - Path.Derivation / Path.Arcs / Path.Yield: follow predecessor arcs from
//     the final state down to axioms.
//   - Inside / Outside: best (Less-minimal) scores per state, same algorithm
//     choice as Best.
//   - InsideSum / OutsideSum: accumulated (Plus over all derivations)
//     scores in topological order; acyclic input only.
//
// Complexity:
//
//   - Best, Inside, Outside:   Time O(N + T) acyclic, O((N + T) log N) cyclic,
//     Memory O(N + A) (T = total tails)
//   - InsideSum, OutsideSum:   Time O(N + T·k) where k = max tails, Memory O(N + A)
//
// Errors:
//
//   - ErrCyclicDerivation  predecessors loop (wraps hypergraph.ErrCycle)
//   - ErrBounds            inside slice does not match NumStates
//   - sortstates.ErrCycleDetected from the accumulating variants
//
// An unreachable or absent final state is not an error: Best reports ok=false.
package bestpath
