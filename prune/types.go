package prune

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// Sentinel errors for invalid options. Options are validated by Prune, not
// by their constructors.
var (
	// ErrBadBeam indicates a negative or NaN beam.
	ErrBadBeam = errors.New("prune: beam must be non-negative")

	// ErrBadExtraStates indicates a negative extra-state count.
	ErrBadExtraStates = errors.New("prune: extra states must be non-negative")

	// ErrBadEpsilon indicates a negative or NaN epsilon.
	ErrBadEpsilon = errors.New("prune: epsilon must be non-negative")
)

// DefaultEpsilon absorbs float rounding when comparing against the threshold.
const DefaultEpsilon = 1e-7

// Options configures Prune.
//
// SingleBest    – keep only the best derivation. Default true; WithBeam clears it.
// Beam          – cost margin above the best derivation. Default 0.
// ExtraStates   – widen the beam to admit this many more non-lexical states. Default 0.
// Epsilon       – rounding tolerance added to the threshold. Default DefaultEpsilon.
// SkipIfTrivial – leave single-path hypergraphs untouched. Default false.
// Posteriors    – beam over accumulated scores (acyclic input). Default false.
// Logger        – receives one debug record per call. Default discards.
type Options struct {
	SingleBest    bool
	Beam          float64
	ExtraStates   int
	Epsilon       float64
	SkipIfTrivial bool
	Posteriors    bool
	Logger        *slog.Logger
}

// Option configures Prune.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		SingleBest: true,
		Epsilon:    DefaultEpsilon,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithSingleBest keeps only the best derivation.
func WithSingleBest() Option {
	return func(o *Options) { o.SingleBest = true }
}

// WithBeam switches to beam pruning with margin b.
func WithBeam(b float64) Option {
	return func(o *Options) {
		o.SingleBest = false
		o.Beam = b
	}
}

// WithExtraStates widens the beam to admit k more states.
func WithExtraStates(k int) Option {
	return func(o *Options) { o.ExtraStates = k }
}

// WithEpsilon sets the rounding tolerance.
func WithEpsilon(e float64) Option {
	return func(o *Options) { o.Epsilon = e }
}

// WithSkipIfTrivial leaves hypergraphs that are already a single path alone.
func WithSkipIfTrivial() Option {
	return func(o *Options) { o.SkipIfTrivial = true }
}

// WithPosteriors judges the beam on accumulated inside and outside scores.
func WithPosteriors() Option {
	return func(o *Options) { o.Posteriors = true }
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats summarises one Prune call.
type Stats struct {
	StatesBefore, StatesAfter int
	ArcsBefore, ArcsAfter     int
	// Threshold is the largest admitted cost (best + beam + epsilon, possibly
	// widened); +Inf for single-best pruning.
	Threshold float64
	// Skipped is true when SkipIfTrivial applied.
	Skipped bool
	// Remap maps old state ids to new ones (NoState for removed states).
	// Nil when nothing was renumbered.
	Remap []hypergraph.StateID
}
