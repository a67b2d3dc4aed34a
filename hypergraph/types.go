package hypergraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// Sentinel errors. Algorithm packages wrap ErrCycle, ErrBounds and ErrNotGraph
// so callers can classify failures with errors.Is regardless of origin.
var (
	// ErrStateOutOfRange indicates a state id outside [0, NumStates).
	ErrStateOutOfRange = errors.New("hypergraph: state id out of range")

	// ErrEmptyTails indicates an arc with no tail states.
	ErrEmptyTails = errors.New("hypergraph: arc must have at least one tail")

	// ErrArcNotFound indicates an unknown or removed arc id.
	ErrArcNotFound = errors.New("hypergraph: arc not found")

	// ErrConflictingProperties indicates a property required both on and off.
	ErrConflictingProperties = errors.New("hypergraph: conflicting property requirements")

	// ErrUnsupportedProperty indicates a requirement EnsureProperties cannot satisfy.
	ErrUnsupportedProperty = errors.New("hypergraph: property cannot be ensured")

	// ErrNotGraph indicates an algorithm that needs graph-shaped input got true hyperarcs.
	ErrNotGraph = errors.New("hypergraph: graph-shaped hypergraph required")

	// ErrCycle indicates a cycle where acyclic or topologically ordered input was assumed.
	ErrCycle = errors.New("hypergraph: cycle detected")

	// ErrBounds indicates a caller-provided buffer whose size does not match the hypergraph.
	ErrBounds = errors.New("hypergraph: buffer size mismatch")

	// ErrBadPermutation indicates a state permutation that is not a bijection on [0, N).
	ErrBadPermutation = errors.New("hypergraph: invalid state permutation")
)

// StateID identifies a state in [0, NumStates).
type StateID uint32

// NoState is the sentinel for an absent start or final state.
const NoState StateID = math.MaxUint32

// ArcID addresses an arc in the arena. Ids are stable until Compact,
// Restrict or Clear.
type ArcID int

// NoArc is the sentinel for "no arc" (e.g. the predecessor of an axiom).
const NoArc ArcID = -1

// Arc is a hyperedge: one head, one or more ordered tails, and a weight.
// Payload is an optional caller value whose lifetime is the arc's.
type Arc[W weight.Weight[W]] struct {
	Head    StateID
	Tails   []StateID
	Weight  W
	Payload any
}

// Properties is a structural bitmask.
type Properties uint32

const (
	// StoresInArcs: per-state incoming arc lists are maintained natively.
	StoresInArcs Properties = 1 << iota
	// StoresFirstTailOutArcs: per-state lists of arcs whose first tail is the state.
	StoresFirstTailOutArcs
	// SortedStates: non-lexical states occupy [0,B) in topological order
	// (every non-lexical tail id < head id) and lexical states occupy [B,N).
	SortedStates
	// IsGraph: every tail after the first is lexical.
	IsGraph
	// IsFSM: every arc has exactly two tails and the second is lexical.
	IsFSM
	// HasOutputLabels: at least one state has an output label.
	HasOutputLabels
	// OneLexicalTailMax: no arc has more than one lexical tail.
	OneLexicalTailMax
)

// storedProperties are the bits that describe storage rather than content.
const storedProperties = StoresInArcs | StoresFirstTailOutArcs

// computedProperties are derived from content and cached lazily.
const computedProperties = SortedStates | IsGraph | IsFSM | HasOutputLabels | OneLexicalTailMax

// Has reports whether every bit in mask is set.
func (p Properties) Has(mask Properties) bool { return p&mask == mask }

// String lists the set property names.
func (p Properties) String() string {
	names := []struct {
		bit  Properties
		name string
	}{
		{StoresInArcs, "in-arcs"},
		{StoresFirstTailOutArcs, "out-arcs"},
		{SortedStates, "sorted"},
		{IsGraph, "graph"},
		{IsFSM, "fsm"},
		{HasOutputLabels, "output-labels"},
		{OneLexicalTailMax, "one-lexical-tail"},
	}
	out := ""
	for _, n := range names {
		if p&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if out == "" {
		return "none"
	}

	return out
}

// Option configures a Hypergraph at construction.
type Option func(*config)

type config struct {
	inArcs  bool
	outArcs bool
	voc     symbol.Vocabulary
	states  int
	arcs    int
}

// WithInArcs maintains per-state incoming arc lists natively.
func WithInArcs() Option { return func(c *config) { c.inArcs = true } }

// WithFirstTailOutArcs maintains per-state lists of arcs keyed by first tail.
func WithFirstTailOutArcs() Option { return func(c *config) { c.outArcs = true } }

// WithVocabulary attaches a vocabulary used for rendering labels. Copies
// share it by reference.
func WithVocabulary(v symbol.Vocabulary) Option { return func(c *config) { c.voc = v } }

// WithCapacity pre-sizes the state and arc arenas.
func WithCapacity(states, arcs int) Option {
	return func(c *config) {
		if states > 0 {
			c.states = states
		}
		if arcs > 0 {
			c.arcs = arcs
		}
	}
}
