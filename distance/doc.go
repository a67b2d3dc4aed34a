// Package distance computes all-pairs shortest distances over any weight
// kind.
//
// Both variants share one matrix convention: the diagonal is seeded with
// One, every other cell with Zero, and arc weights are folded in with Plus.
//
//   - AllPairs: Floyd–Warshall style closure, O(N³). Graph-shaped input
//     only; for each intermediate k, for each i ≠ k, for each j ∉ {i, k}:
//     dist[i][j] ⊕= dist[i][k] ⊗ dist[k][j], skipping Zero operands.
//     Excluding k == i and j == k keeps accumulating semirings (Log) from
//     counting a path through the intermediate twice.
//   - AllPairsDAG: O(N · (N + A)) forward sweep over topologically sorted
//     input. An optional KeepFunc may stop extension from a partial weight,
//     optionally zeroing it.
//
// Errors:
//
//   - ErrMatrixShape    matrix size differs from NumStates (wraps hypergraph.ErrBounds)
//   - ErrNotGraph       input has true hyperarcs (wraps hypergraph.ErrNotGraph)
//   - ErrCycleDetected  AllPairsDAG met an arc pointing backwards or to itself
//     (wraps hypergraph.ErrCycle)
package distance
