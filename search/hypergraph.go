package search

import (
	"sort"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

// GraphAutomaton views a graph-shaped hypergraph as an Automaton. A
// transition s -> h exists for every arc whose first tail is s and whose
// head is h; the remaining tails are lexical and contribute One.
type GraphAutomaton[W weight.Weight[W]] struct {
	hg  *hypergraph.Hypergraph[W]
	out hypergraph.Adjacency
}

// HypergraphAutomaton wraps hg. It fails when hg has a non-lexical tail
// beyond the first one, or no start state.
func HypergraphAutomaton[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) (*GraphAutomaton[W], error) {
	if !hg.IsGraph() {
		return nil, ErrNotGraph
	}
	if hg.Start() == hypergraph.NoState {
		return nil, ErrNoStart
	}

	return &GraphAutomaton[W]{hg: hg, out: hypergraph.NewFirstTailOutArcs(hg)}, nil
}

// Start returns the hypergraph's start state.
func (g *GraphAutomaton[W]) Start() hypergraph.StateID { return g.hg.Start() }

// IsFinal reports whether s is the hypergraph's final state.
func (g *GraphAutomaton[W]) IsFinal(s hypergraph.StateID) bool { return s == g.hg.Final() }

// Expand returns the arcs leaving s, cheapest first, labelled with their ArcID.
func (g *GraphAutomaton[W]) Expand(s hypergraph.StateID) []Transition[hypergraph.StateID, W] {
	ids := g.out.Arcs(s)
	out := make([]Transition[hypergraph.StateID, W], 0, len(ids))
	for _, id := range ids {
		a := g.hg.MustArc(id)
		out = append(out, Transition[hypergraph.StateID, W]{From: s, To: a.Head, Weight: a.Weight, Label: id})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight.Less(out[j].Weight) })

	return out
}

// Best searches hg from its start state to its final state.
func Best[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], options ...Option[hypergraph.StateID]) (*Result[hypergraph.StateID, W], bool, error) {
	g, err := HypergraphAutomaton(hg)
	if err != nil {
		return nil, false, err
	}

	return Search[hypergraph.StateID, W](g, options...)
}

// Arcs returns the arc ids along a result produced from a GraphAutomaton.
func Arcs[W weight.Weight[W]](r *Result[hypergraph.StateID, W]) []hypergraph.ArcID {
	out := make([]hypergraph.ArcID, 0, len(r.Transitions))
	for _, t := range r.Transitions {
		if id, ok := t.Label.(hypergraph.ArcID); ok {
			out = append(out, id)
		}
	}

	return out
}
