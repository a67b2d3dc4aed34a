package kbest

import (
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// FromHypergraph builds a forest whose node i stands for state i. Axioms
// get a single leaf edge labelled with their StateID and cost One; every
// other state gets one edge per incoming arc, labelled with its ArcID.
// The goal is the final state, when set.
//
// Cyclic hypergraphs are accepted here; Get reports the cycle when it
// reaches it.
func FromHypergraph[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], options ...Option[W]) (*Forest[W], error) {
	f := NewForest(options...)
	n := hg.NumStates()
	for s := 0; s < n; s++ {
		f.AddNode()
	}

	one := weight.One[W]()
	in := hypergraph.NewInArcs(hg)
	for s := 0; s < n; s++ {
		id := hypergraph.StateID(s)
		if hg.IsAxiom(id) {
			if err := f.AddEdge(NodeID(s), nil, one, id); err != nil {
				return nil, err
			}
			continue
		}
		for _, arc := range in.Arcs(id) {
			a := hg.MustArc(arc)
			if err := f.addBinarized(NodeID(s), a.Tails, a.Weight, arc); err != nil {
				return nil, err
			}
		}
	}
	if final := hg.Final(); final != hypergraph.NoState {
		if err := f.SetGoal(NodeID(final)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// addBinarized adds head <- tails, folding tails left to right through
// fresh intermediate nodes when there are more than two.
func (f *Forest[W]) addBinarized(head NodeID, tails []hypergraph.StateID, w W, label hypergraph.ArcID) error {
	if len(tails) <= 2 {
		kids := make([]NodeID, len(tails))
		for i, t := range tails {
			kids[i] = NodeID(t)
		}
		return f.AddEdge(head, kids, w, label)
	}

	one := weight.One[W]()
	left := NodeID(tails[0])
	for _, t := range tails[1 : len(tails)-1] {
		x := f.AddNode()
		if err := f.AddEdge(x, []NodeID{left, NodeID(t)}, one, nil); err != nil {
			return err
		}
		left = x
	}

	return f.AddEdge(head, []NodeID{left, NodeID(tails[len(tails)-1])}, w, label)
}

// KBest returns up to k cheapest derivations of hg's final state in
// non-decreasing cost order. Fewer are returned when the hypergraph has
// fewer; none when it has no final state.
func KBest[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], k int, options ...Option[W]) ([]*Derivation[W], error) {
	if k <= 0 || hg.Final() == hypergraph.NoState {
		return nil, nil
	}
	f, err := FromHypergraph(hg, options...)
	if err != nil {
		return nil, err
	}
	out := make([]*Derivation[W], 0, k)
	for rank := 0; rank < k; rank++ {
		d, ok, err := f.Get(f.Goal(), rank)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, d)
	}
	f.opts.Logger.Debug("kbest: done", "requested", k, "found", len(out))

	return out, nil
}

// Yield returns the lexical input labels at the leaves of d, left to right,
// skipping epsilon. d must come from a forest built on hg.
func Yield[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], d *Derivation[W]) []symbol.Symbol {
	var out []symbol.Symbol
	for _, s := range d.Leaves() {
		if !hg.IsLexical(s) {
			continue
		}
		if l := hg.InputLabel(s); !l.IsEpsilon() {
			out = append(out, l)
		}
	}

	return out
}
