package bestpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/sortstates"
	"github.com/katalvlaran/hyperpath/weight"
)

// Outside returns, per state, the best cost of completing a derivation from
// that state up to the final state, given best inside scores. Outside of the
// final state is One; states that cannot reach it get Zero.
//
// The contribution of tail position i of arc a is
// outside[head] ⊗ weight ⊗ (⊗ over j≠i of inside[tj]), so inside[s] ⊗
// outside[s] is the cost of the best derivation through s for commutative
// Times.
//
// Acyclic input is swept in reverse topological order and accepts costs of
// any sign; cyclic input is swept in cost order and needs non-negative costs.
func Outside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], inside []W) ([]W, error) {
	n := hg.NumStates()
	if len(inside) != n {
		return nil, fmt.Errorf("%w: inside has %d entries for %d states", ErrBounds, len(inside), n)
	}
	zero := weight.Zero[W]()
	outside := make([]W, n)
	for s := range outside {
		outside[s] = zero
	}
	final := hg.Final()
	if final == hypergraph.NoState {
		return outside, nil
	}

	in := hypergraph.NewInArcs(hg)
	outside[final] = weight.One[W]()
	if order, err := sortstates.Order(hg); err == nil {
		topoOutside(hg, in, order, inside, outside)
		return outside, nil
	}

	// 1) Cyclic: seed the final state and sweep heads in cost order
	done := make([]bool, n)
	pq := statePQ[W]{{id: final, cost: outside[final]}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*stateItem[W])
		h := item.id
		if done[h] {
			continue
		}
		done[h] = true

		// 2) Push the head's outside score down to every tail of every in-arc
		for _, id := range in.Arcs(h) {
			a := hg.MustArc(id)
			base := outside[h].Times(a.Weight)
			for i, t := range a.Tails {
				if done[t] {
					continue
				}
				cand := base.Times(siblings(a.Tails, i, inside))
				if cand.IsZero() || !cand.Less(outside[t]) {
					continue
				}
				outside[t] = cand
				heap.Push(&pq, &stateItem[W]{id: t, cost: cand})
			}
		}
	}

	return outside, nil
}

// topoOutside pushes outside scores from heads to tails, heads first.
func topoOutside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], in hypergraph.Adjacency, order []hypergraph.StateID, inside, outside []W) {
	for i := len(order) - 1; i >= 0; i-- {
		h := order[i]
		if outside[h].IsZero() || hg.IsAxiom(h) {
			continue
		}
		for _, id := range in.Arcs(h) {
			a := hg.MustArc(id)
			base := outside[h].Times(a.Weight)
			for j, t := range a.Tails {
				cand := base.Times(siblings(a.Tails, j, inside))
				if cand.IsZero() || !cand.Less(outside[t]) {
					continue
				}
				outside[t] = cand
			}
		}
	}
}

// siblings returns the product of inside scores of every tail except position skip.
func siblings[W weight.Weight[W]](tails []hypergraph.StateID, skip int, inside []W) W {
	acc := weight.One[W]()
	for j, t := range tails {
		if j == skip {
			continue
		}
		acc = acc.Times(inside[t])
	}

	return acc
}
