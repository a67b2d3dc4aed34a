// Package prune removes states and arcs that do not take part in good
// derivations.
//
// What:
//
//   - Single best (default): keep exactly the arcs and states of the best
//     derivation of the final state.
//   - Beam: keep every state and arc whose best derivation through it costs
//     at most best + beam + epsilon, judged by inside ⊗ outside. With
//     ExtraStates k > 0 the beam widens to admit the k cheapest states just
//     outside it; every state tied with the kth is admitted too.
//   - Posteriors: the beam compares accumulated (Plus) inside ⊗ outside
//     scores against the total instead of best ones; acyclic input only.
//
// Pruning never changes the cost of the best derivation. With SkipIfTrivial
// a hypergraph in which no state has more than one incoming arc is left
// untouched.
//
// Errors:
//
//   - ErrBadBeam, ErrBadExtraStates, ErrBadEpsilon  invalid options
//   - cycle errors from bestpath when Posteriors is set
package prune
