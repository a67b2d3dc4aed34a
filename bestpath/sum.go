package bestpath

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/sortstates"
	"github.com/katalvlaran/hyperpath/weight"
)

// InsideSum returns, per state, the Plus over all of its derivations.
// Axioms are One. The input must be acyclic over non-lexical states;
// otherwise the sortstates cycle error is returned.
func InsideSum[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) ([]W, error) {
	order, err := sortstates.Order(hg)
	if err != nil {
		return nil, err
	}
	n := hg.NumStates()
	zero, one := weight.Zero[W](), weight.One[W]()
	inside := make([]W, n)
	for s := range inside {
		inside[s] = zero
		if hg.IsAxiom(hypergraph.StateID(s)) {
			inside[s] = one
		}
	}

	in := hypergraph.NewInArcs(hg)
	for _, s := range order {
		if hg.IsAxiom(s) {
			continue
		}
		for _, id := range in.Arcs(s) {
			accumulate(&inside[s], arcCost(hg.MustArc(id), inside))
		}
	}

	return inside, nil
}

// OutsideSum returns, per state, the Plus over all ways of completing a
// derivation from that state to the final state, given accumulated inside
// scores. Same acyclicity requirement as InsideSum.
func OutsideSum[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], inside []W) ([]W, error) {
	n := hg.NumStates()
	if len(inside) != n {
		return nil, fmt.Errorf("%w: inside has %d entries for %d states", ErrBounds, len(inside), n)
	}
	order, err := sortstates.Order(hg)
	if err != nil {
		return nil, err
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
	outside[final] = weight.One[W]()

	// Heads before tails: walk the topological order backwards.
	in := hypergraph.NewInArcs(hg)
	for i := len(order) - 1; i >= 0; i-- {
		h := order[i]
		if outside[h].IsZero() || hg.IsAxiom(h) {
			continue
		}
		for _, id := range in.Arcs(h) {
			a := hg.MustArc(id)
			base := outside[h].Times(a.Weight)
			for j, t := range a.Tails {
				accumulate(&outside[t], base.Times(siblings(a.Tails, j, inside)))
			}
		}
	}

	return outside, nil
}

// accumulate folds x into *dst, in place when W supports it.
func accumulate[W weight.Weight[W]](dst *W, x W) {
	if acc, ok := any(dst).(weight.Accumulator[W]); ok {
		acc.PlusBy(x)
		return
	}
	*dst = (*dst).Plus(x)
}
