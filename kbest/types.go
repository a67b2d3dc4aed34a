package kbest

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrDerivationCycle indicates a node whose derivations depend on itself.
	ErrDerivationCycle = fmt.Errorf("kbest: derivation cycle: %w", hypergraph.ErrCycle)

	// ErrNodeOutOfRange indicates an unknown node id.
	ErrNodeOutOfRange = errors.New("kbest: node id out of range")

	// ErrTooManyChildren indicates an edge with more than two children.
	ErrTooManyChildren = errors.New("kbest: edges take at most two children")
)

// NodeID identifies an OR-node of a Forest.
type NodeID int

// NoNode is the sentinel for "no node".
const NoNode NodeID = -1

// Options configures a Forest.
//
// Filter – rejects derivations of the goal node; nil keeps everything.
// The goal's cheapest derivation must pass it.
// Logger – receives debug records about exhaustion. Default discards.
type Options[W weight.Weight[W]] struct {
	Filter func(*Derivation[W]) bool
	Logger *slog.Logger
}

// Option configures a Forest.
type Option[W weight.Weight[W]] func(*Options[W])

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions[W weight.Weight[W]]() Options[W] {
	return Options[W]{Logger: slog.New(slog.DiscardHandler)}
}

// WithFilter installs fn as the goal filter.
func WithFilter[W weight.Weight[W]](fn func(*Derivation[W]) bool) Option[W] {
	return func(o *Options[W]) { o.Filter = fn }
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger[W weight.Weight[W]](l *slog.Logger) Option[W] {
	return func(o *Options[W]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Derivation is one materialised derivation of a node.
type Derivation[W weight.Weight[W]] struct {
	// Node is the derived node.
	Node NodeID
	// Cost is the total weight of the derivation.
	Cost W
	// Label is the label of the edge used at the root of this derivation.
	Label any
	// Children holds one derivation per child of that edge.
	Children []*Derivation[W]
}

// Walk calls fn for every node of the derivation in pre-order.
func (d *Derivation[W]) Walk(fn func(*Derivation[W])) {
	fn(d)
	for _, c := range d.Children {
		c.Walk(fn)
	}
}

// Arcs lists, in pre-order, every label that is a hypergraph.ArcID. For
// forests built by FromHypergraph these are the arcs of the derivation.
func (d *Derivation[W]) Arcs() []hypergraph.ArcID {
	var out []hypergraph.ArcID
	d.Walk(func(n *Derivation[W]) {
		if id, ok := n.Label.(hypergraph.ArcID); ok {
			out = append(out, id)
		}
	})

	return out
}

// Leaves lists, left to right, every label that is a hypergraph.StateID.
// For forests built by FromHypergraph these are the axiom states.
func (d *Derivation[W]) Leaves() []hypergraph.StateID {
	var out []hypergraph.StateID
	d.Walk(func(n *Derivation[W]) {
		if s, ok := n.Label.(hypergraph.StateID); ok {
			out = append(out, s)
		}
	})

	return out
}
