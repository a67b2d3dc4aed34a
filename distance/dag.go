// SPDX-License-Identifier: MIT
// Package: distance
//
// Purpose:
//   - Quadratic all-pairs distances over topologically sorted graph-shaped input.
//
// Contract:
//   - Every arc's first tail id is strictly less than its head id.
//   - dist is overwritten; its order must equal NumStates.

package distance

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

// Verdict is a KeepFunc decision about a partial weight.
type Verdict int

const (
	// Keep extends the partial weight through the state's out-arcs.
	Keep Verdict = iota
	// Stop records the partial weight but does not extend it.
	Stop
	// StopZero discards the partial weight and does not extend it.
	StopZero
)

// KeepFunc judges the accumulated weight w from src to via before it is
// extended. It is not consulted for via == src.
type KeepFunc[W weight.Weight[W]] func(src, via hypergraph.StateID, w W) Verdict

// AllPairsDAG fills dist by sweeping forward from every source in index
// order. keep may be nil (extend everything).
//
// Returns ErrCycleDetected naming the first arc whose head does not exceed
// its first tail; dist is untouched in that case.
//
// Complexity: Time O(N · (N + A)), Extra space O(N + A) for the adjacency.
func AllPairsDAG[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], dist *Matrix[W], keep KeepFunc[W]) error {
	// 1. Validate shape, structure and order before writing anything
	if err := checkShape(hg, dist); err != nil {
		return err
	}
	if !hg.IsGraph() {
		return ErrNotGraph
	}
	var bad error
	hg.ForEachArc(func(id hypergraph.ArcID, a *hypergraph.Arc[W]) bool {
		if a.Head <= a.Tails[0] {
			bad = fmt.Errorf("%w: arc %d (%d <- %d) is not forward", ErrCycleDetected, id, a.Head, a.Tails[0])
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}

	// 2. Sweep each source row forward
	dist.seed()
	out := hypergraph.NewFirstTailOutArcs(hg)
	n := dist.n
	for s := 0; s < n; s++ {
		src := hypergraph.StateID(s)
		row := dist.Row(src)
		for v := s; v < n; v++ {
			w := row[v]
			if w.IsZero() {
				continue
			}
			via := hypergraph.StateID(v)
			// 2a. Let the caller cut off unpromising partial weights
			if keep != nil && v != s {
				switch keep(src, via, w) {
				case Stop:
					continue
				case StopZero:
					row[v] = weight.Zero[W]()
					continue
				}
			}
			// 2b. Extend through every out-arc; heads are strictly later
			for _, id := range out.Arcs(via) {
				a := hg.MustArc(id)
				row[a.Head] = row[a.Head].Plus(w.Times(a.Weight))
			}
		}
	}

	return nil
}
