package search

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrPopLimit indicates the search hit its pop budget before settling a
	// final state.
	ErrPopLimit = errors.New("search: pop limit reached")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("search: invalid option")

	// ErrNotGraph indicates a hypergraph with true hyperarcs.
	ErrNotGraph = fmt.Errorf("search: %w", hypergraph.ErrNotGraph)

	// ErrNoStart indicates a hypergraph without a start state.
	ErrNoStart = errors.New("search: hypergraph has no start state")
)

// Transition is one outgoing move of an automaton state.
type Transition[S comparable, W weight.Weight[W]] struct {
	From   S
	To     S
	Weight W
	// Label is opaque to the search; HypergraphAutomaton stores the ArcID.
	Label any
}

// Automaton is an implicitly defined weighted state machine.
type Automaton[S comparable, W weight.Weight[W]] interface {
	// Start returns the initial state.
	Start() S
	// IsFinal reports whether s accepts.
	IsFinal(s S) bool
	// Expand returns the transitions leaving s, cheapest first unless the
	// search runs with WithFullyExpand.
	Expand(s S) []Transition[S, W]
}

// Options configures Search.
//
// Heuristic   – estimated remaining cost from a state; it must be
// consistent (h(s) <= w + h(to) for every transition). Default nil.
// Slack       – margin subtracted from continuation priorities. Default 0.
// FullyExpand – follow every transition when a state is popped. Default false.
// MaxPops     – upper bound on heap pops; 0 means unlimited. Default 0.
// Logger      – receives one debug record per call. Default discards.
type Options[S comparable] struct {
	Heuristic   func(S) float64
	Slack       float64
	FullyExpand bool
	MaxPops     int
	Logger      *slog.Logger
}

// Option configures Search.
type Option[S comparable] func(*Options[S])

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{Logger: slog.New(slog.DiscardHandler)}
}

// WithHeuristic sets the remaining-cost estimate.
func WithHeuristic[S comparable](h func(S) float64) Option[S] {
	return func(o *Options[S]) { o.Heuristic = h }
}

// WithSlack sets the continuation margin. Negative values are rejected by Search.
func WithSlack[S comparable](slack float64) Option[S] {
	return func(o *Options[S]) { o.Slack = slack }
}

// WithFullyExpand disables lazy expansion.
func WithFullyExpand[S comparable]() Option[S] {
	return func(o *Options[S]) { o.FullyExpand = true }
}

// WithMaxPops bounds the number of heap pops. Negative values are rejected by Search.
func WithMaxPops[S comparable](n int) Option[S] {
	return func(o *Options[S]) { o.MaxPops = n }
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger[S comparable](l *slog.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result describes the path to the first final state settled.
type Result[S comparable, W weight.Weight[W]] struct {
	// Final is the accepting state reached.
	Final S
	// Cost is the product of the transition weights along the path.
	Cost W
	// Transitions lists the path from Start to Final.
	Transitions []Transition[S, W]
	// Pops counts heap pops, continuations included.
	Pops int
}
