// Package kbest enumerates derivations of a forest lazily in non-decreasing
// cost order.
//
// A Forest is a set of OR-nodes joined by binarized hyperedges: each edge
// has at most two child nodes and a local weight. A derivation of a node is
// an edge plus one derivation of each child; its cost is
// cost(child0) ⊗ cost(child1) ⊗ local.
//
// Get(node, n) returns the nth best derivation of node:
//
//  1. If the node's memo already holds entry n, return it.
//  2. Otherwise pop the cheapest pending candidate (an edge plus a rank into
//     each child's own list), materialise it and append it to the memo.
//  3. Push the successors of the popped candidate: the same edge with one
//     child's rank advanced by one, each at most once.
//  4. If the filter rejects a derivation of the goal node, drop it and
//     repeat from step 2.
//
// Memo costs never decrease as long as Times never makes a cost better.
// A node reached again while its own Get is still running (a forest with a
// cycle) yields ErrDerivationCycle instead of recursing forever. A forest
// that reported an error should be discarded.
//
// FromHypergraph turns a hypergraph into a forest with one node per state;
// arcs with more than two tails are binarized left to right through private
// intermediate nodes whose local weight is One.
//
// Complexity (per Get of the kth derivation of the goal):
//
//   - Time:   O(|E| + k·D·log k) where D is the derivation size
//   - Memory: O(|E| + k·D) for memos and candidate heaps
package kbest
