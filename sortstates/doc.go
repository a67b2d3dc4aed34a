// Package sortstates renumbers the states of a hypergraph so that algorithms
// that sweep states in index order see every antecedent before its consumer.
//
// What:
//
//   - Topological: non-lexical states occupy [0,B) such that every arc's
//     non-lexical tails have smaller ids than its head; lexical states follow
//     in [B,N). The order comes from a three-colour depth-first traversal that
//     starts at the final state and walks incoming arcs, so tails finish (and
//     are numbered) before the heads they feed.
//   - LexicalFirst / LexicalLast: a single linear partition pass that moves
//     lexical states to the front or the back, keeping relative order.
//
// Stable mode first checks whether the hypergraph already satisfies the
// target order and, if so, returns without renumbering. Sorting twice is
// therefore a no-op the second time and is reported via Result.AlreadySorted.
//
// Complexity:
//
//   - Topological: Time O(N + total tails), Memory O(N)
//   - Partition:   Time O(N + total tails) (relabelling arcs), Memory O(N)
//
// Errors:
//
//   - ErrCycleDetected  more back edges than Options.MaxBackEdges allow;
//     wraps hypergraph.ErrCycle.
package sortstates
