// SPDX-License-Identifier: MIT
// Package: distance
//
// Purpose:
//   - Semiring Floyd–Warshall closure over graph-shaped hypergraphs.
//
// Contract:
//   - dist is overwritten; its order must equal NumStates.
//   - Loop order is fixed (k → i → j) for deterministic accumulation.

package distance

import (
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

// AllPairs fills dist with the sum over paths from i to j for every pair.
// Arcs contribute dist[first tail][head] ⊕= weight; lexical tails after the
// first only label the arc.
//
// The relaxation skips j == k as well as j == i, so dist[i][k] is never
// extended by dist[k][k]. The closure therefore does not iterate a self-loop
// at k: for idempotent kinds (Viterbi, Bool) nothing is lost, while for
// accumulating kinds (Log) paths that take the loop at k are left out rather
// than counted twice.
//
// Complexity: Time O(N³ + A), Extra space O(1).
func AllPairs[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], dist *Matrix[W]) error {
	// 1. Validate shape and structure
	if err := checkShape(hg, dist); err != nil {
		return err
	}
	if !hg.IsGraph() {
		return ErrNotGraph
	}

	// 2. Seed: One on the diagonal, arc weights on direct edges
	dist.seed()
	n := dist.n
	data := dist.data
	hg.ForEachArc(func(_ hypergraph.ArcID, a *hypergraph.Arc[W]) bool {
		idx := int(a.Tails[0])*n + int(a.Head)
		data[idx] = data[idx].Plus(a.Weight)
		return true
	})

	// 3. Relax through every intermediate k
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       W
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			ik = data[i*n+k]
			if ik.IsZero() {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				kj = data[baseK+j]
				if kj.IsZero() {
					continue
				}
				data[baseI+j] = data[baseI+j].Plus(ik.Times(kj))
			}
		}
	}

	return nil
}
