package bestpath

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
)

// Derivation rebuilds the best derivation tree from the final state down to
// axioms. It reports ErrCyclicDerivation if predecessor arcs loop, which can
// only happen when Pred was edited or the hypergraph changed after Best.
func (p *Path[W]) Derivation() (*Derivation, error) {
	onPath := make([]bool, len(p.Pred))

	return p.build(p.Final, onPath)
}

func (p *Path[W]) build(s hypergraph.StateID, onPath []bool) (*Derivation, error) {
	id := p.Pred[s]
	if id == hypergraph.NoArc {
		return &Derivation{State: s, Arc: hypergraph.NoArc}, nil
	}
	if onPath[s] {
		return nil, fmt.Errorf("%w: state %d reached again via arc %d", ErrCyclicDerivation, s, id)
	}
	a, err := p.hg.Arc(id)
	if err != nil {
		return nil, err
	}
	onPath[s] = true
	d := &Derivation{State: s, Arc: id, Children: make([]*Derivation, len(a.Tails))}
	for i, t := range a.Tails {
		if d.Children[i], err = p.build(t, onPath); err != nil {
			return nil, err
		}
	}
	onPath[s] = false

	return d, nil
}

// Arcs lists the arcs of the best derivation in pre-order (head before
// tails, tails left to right).
func (p *Path[W]) Arcs() ([]hypergraph.ArcID, error) {
	d, err := p.Derivation()
	if err != nil {
		return nil, err
	}

	return d.Arcs(), nil
}

// Yield returns the lexical input labels of the best derivation's leaves,
// left to right, skipping epsilon.
func (p *Path[W]) Yield() ([]symbol.Symbol, error) {
	d, err := p.Derivation()
	if err != nil {
		return nil, err
	}
	var out []symbol.Symbol
	for _, s := range d.Leaves() {
		if !p.hg.IsLexical(s) {
			continue
		}
		if l := p.hg.InputLabel(s); !l.IsEpsilon() {
			out = append(out, l)
		}
	}

	return out, nil
}

// Arcs lists the tree's arcs in pre-order.
func (d *Derivation) Arcs() []hypergraph.ArcID {
	var out []hypergraph.ArcID
	d.walk(func(n *Derivation) {
		if n.Arc != hypergraph.NoArc {
			out = append(out, n.Arc)
		}
	})

	return out
}

// Leaves lists the axiom states at the tree's leaves, left to right.
func (d *Derivation) Leaves() []hypergraph.StateID {
	var out []hypergraph.StateID
	d.walk(func(n *Derivation) {
		if n.Arc == hypergraph.NoArc {
			out = append(out, n.State)
		}
	})

	return out
}

func (d *Derivation) walk(fn func(*Derivation)) {
	fn(d)
	for _, c := range d.Children {
		c.walk(fn)
	}
}
