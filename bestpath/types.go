package bestpath

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrCyclicDerivation indicates predecessor arcs that loop back on themselves.
	ErrCyclicDerivation = fmt.Errorf("bestpath: cyclic derivation: %w", hypergraph.ErrCycle)

	// ErrBounds indicates a score slice whose length differs from NumStates.
	ErrBounds = fmt.Errorf("bestpath: %w", hypergraph.ErrBounds)
)

// Options configures Best.
//
// Logger – receives one debug record per call. Default discards.
type Options struct {
	Logger *slog.Logger
}

// Option configures Best.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Path is the result of Best.
type Path[W weight.Weight[W]] struct {
	hg *hypergraph.Hypergraph[W]

	// Final is the state the path derives.
	Final hypergraph.StateID
	// Cost is Inside[Final].
	Cost W
	// Pred holds, per state, the arc that achieved Inside (NoArc for axioms
	// and unreachable states).
	Pred []hypergraph.ArcID
	// Inside holds the best inside score per state (Zero when underivable).
	Inside []W
}

// Derivation is a tree of arcs rooted at the derived state. Leaves are
// axioms (Arc == NoArc); inner nodes have one child per arc tail.
type Derivation struct {
	State    hypergraph.StateID
	Arc      hypergraph.ArcID
	Children []*Derivation
}
