// Package hypergraph defines the weighted hypergraph (generalised weighted
// automaton / derivation forest) that every algorithm in this module works on.
//
// What:
//
//   - States are dense integer ids in [0, N). Each carries an input label and
//     an optional output label (falling back to the input label). A state is
//     lexical when its label is a terminal or special symbol; lexical states
//     and the start state are axioms.
//   - Arcs (hyperarcs) have one head, an ordered non-empty tail list and a
//     weight. Arcs live in an arena owned by the Hypergraph and are addressed
//     by ArcID; an optional type-erased payload shares the arc's lifetime.
//   - A small property bitmask (stored adjacency, sorted states, graph/FSM
//     shape, output labels) is computed lazily and cached until the next
//     mutation.
//   - Adjacency adaptors (NewInArcs, NewFirstTailOutArcs, NewOutArcs) answer
//     from stored adjacency when present, else from a side index built once.
//
// Shapes:
//
//   - Graph: every arc's tails after the first are lexical (a plain graph
//     whose arcs may carry label leaves).
//   - FSM:   every arc has exactly two tails, the second lexical:
//     (source, label) -> destination.
//
// Concurrency:
//
//   - No internal locking. A Hypergraph must be owned by one goroutine at a
//     time; partition work so goroutines use disjoint instances.
//
// Errors:
//
//   - ErrStateOutOfRange        state id >= NumStates
//   - ErrEmptyTails             arc without tails
//   - ErrArcNotFound            unknown or removed ArcID
//   - ErrConflictingProperties  a property required both on and off
//   - ErrUnsupportedProperty    a property EnsureProperties cannot establish
//   - ErrNotGraph               graph-shaped input required
//   - ErrCycle                  cycle found where acyclic input was assumed
//   - ErrBounds                 caller buffer does not match the state count
package hypergraph
