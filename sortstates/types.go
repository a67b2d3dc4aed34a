package sortstates

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrCycleDetected indicates a back edge found during the topological traversal.
	ErrCycleDetected = fmt.Errorf("sortstates: %w", hypergraph.ErrCycle)

	// ErrBadPolicy indicates an unknown Policy value.
	ErrBadPolicy = errors.New("sortstates: unknown policy")
)

// Traversal colours.
const (
	White = iota // not yet visited
	Gray         // on the traversal stack
	Black        // fully explored
)

// Policy selects the target state order.
type Policy int

const (
	// Topological numbers non-lexical states so tails precede heads, then
	// appends lexical states.
	Topological Policy = iota
	// LexicalFirst moves lexical states to the front.
	LexicalFirst
	// LexicalLast moves lexical states to the back.
	LexicalLast
)

// String names the policy.
func (p Policy) String() string {
	switch p {
	case Topological:
		return "topological"
	case LexicalFirst:
		return "lexical-first"
	case LexicalLast:
		return "lexical-last"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options configures Sort.
//
// Policy        – target order. Default Topological.
// Stable        – skip all work when the input already satisfies Policy. Default true.
// Copy          – sort a clone and leave the input untouched. Default false (in place).
// MaxBackEdges  – back edges tolerated before ErrCycleDetected. Tolerated back
//
//	edges are ignored, so the result is no longer strictly topological.
//	Default 0.
//
// Logger        – receives one debug record per call. Default discards.
type Options struct {
	Policy       Policy
	Stable       bool
	Copy         bool
	MaxBackEdges int
	Logger       *slog.Logger
}

// Option configures Sort.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Policy:       Topological,
		Stable:       true,
		Copy:         false,
		MaxBackEdges: 0,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// WithPolicy selects the target order.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithStable toggles the already-sorted check.
func WithStable(stable bool) Option {
	return func(o *Options) { o.Stable = stable }
}

// WithCopy sorts a clone instead of the input.
func WithCopy() Option {
	return func(o *Options) { o.Copy = true }
}

// WithMaxBackEdges tolerates up to n back edges. Negative values are treated as 0.
func WithMaxBackEdges(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxBackEdges = n
	}
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result describes a completed sort.
type Result[W weight.Weight[W]] struct {
	// Graph is the sorted hypergraph: the input itself, or a clone under Copy.
	Graph *hypergraph.Hypergraph[W]
	// Permutation maps old state ids to new ones (Permutation[old] == new).
	Permutation []hypergraph.StateID
	// AlreadySorted is true when stable mode found nothing to do.
	AlreadySorted bool
	// BackEdges counts the back edges tolerated by MaxBackEdges.
	BackEdges int
}
