package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// state holds the labels of one state.
type state struct {
	in  symbol.Symbol
	out symbol.Symbol
}

// arcSlot is one arena cell; removed arcs stay as tombstones until Compact.
type arcSlot[W weight.Weight[W]] struct {
	arc  Arc[W]
	live bool
}

// Hypergraph is a mutable weighted hypergraph. The zero value is not usable;
// construct with New.
type Hypergraph[W weight.Weight[W]] struct {
	voc symbol.Vocabulary

	states []state
	slots  []arcSlot[W]
	live   int

	start StateID
	final StateID

	storeIn  bool
	storeOut bool
	inArcs   [][]ArcID // head -> arcs, when storeIn
	outArcs  [][]ArcID // first tail -> arcs, when storeOut

	// lexical memoises AddLexicalState per label.
	lexical map[symbol.Symbol]StateID

	props      Properties
	propsValid bool
}

// New creates an empty Hypergraph.
// Complexity: O(1) plus any capacity hint.
func New[W weight.Weight[W]](opts ...Option) *Hypergraph[W] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	hg := &Hypergraph[W]{
		voc:      cfg.voc,
		states:   make([]state, 0, cfg.states),
		slots:    make([]arcSlot[W], 0, cfg.arcs),
		start:    NoState,
		final:    NoState,
		storeIn:  cfg.inArcs,
		storeOut: cfg.outArcs,
		lexical:  make(map[symbol.Symbol]StateID),
	}

	return hg
}

// Vocabulary returns the attached vocabulary (may be nil).
func (hg *Hypergraph[W]) Vocabulary() symbol.Vocabulary { return hg.voc }

// SetVocabulary replaces the attached vocabulary.
func (hg *Hypergraph[W]) SetVocabulary(v symbol.Vocabulary) { hg.voc = v }

// NumStates returns N; state ids are [0, N).
func (hg *Hypergraph[W]) NumStates() int { return len(hg.states) }

// NumArcs returns the number of live arcs.
func (hg *Hypergraph[W]) NumArcs() int { return hg.live }

// ArcCapacity returns one past the largest ArcID ever issued since the last
// compaction; live ids are a subset of [0, ArcCapacity).
func (hg *Hypergraph[W]) ArcCapacity() int { return len(hg.slots) }

// AddState appends a state labelled in (NoSymbol for unlabelled) and returns its id.
func (hg *Hypergraph[W]) AddState(in symbol.Symbol) StateID {
	return hg.AddStateIO(in, symbol.NoSymbol)
}

// AddStateIO appends a state with distinct input and output labels.
func (hg *Hypergraph[W]) AddStateIO(in, out symbol.Symbol) StateID {
	id := StateID(len(hg.states))
	hg.states = append(hg.states, state{in: in, out: out})
	if hg.storeIn {
		hg.inArcs = append(hg.inArcs, nil)
	}
	if hg.storeOut {
		hg.outArcs = append(hg.outArcs, nil)
	}
	hg.invalidate()

	return id
}

// AddLexicalState returns the state labelled with label, creating it on
// first use. Repeated calls with the same label share one state.
func (hg *Hypergraph[W]) AddLexicalState(label symbol.Symbol) StateID {
	if id, ok := hg.lexical[label]; ok && int(id) < len(hg.states) && hg.states[id].in == label {
		return id
	}
	id := hg.AddState(label)
	hg.lexical[label] = id

	return id
}

// AddArc adds a hyperarc head <- tails with weight w. tails is copied.
func (hg *Hypergraph[W]) AddArc(head StateID, tails []StateID, w W) (ArcID, error) {
	return hg.AddArcPayload(head, tails, w, nil)
}

// AddArcPayload adds an arc carrying an opaque payload.
func (hg *Hypergraph[W]) AddArcPayload(head StateID, tails []StateID, w W, payload any) (ArcID, error) {
	// 1) Validate shape and ids before touching the arena.
	if len(tails) == 0 {
		return NoArc, ErrEmptyTails
	}
	if err := hg.checkState(head); err != nil {
		return NoArc, err
	}
	for _, t := range tails {
		if err := hg.checkState(t); err != nil {
			return NoArc, err
		}
	}

	// 2) Append to the arena.
	id := ArcID(len(hg.slots))
	hg.slots = append(hg.slots, arcSlot[W]{
		arc: Arc[W]{
			Head:    head,
			Tails:   append([]StateID(nil), tails...),
			Weight:  w,
			Payload: payload,
		},
		live: true,
	})
	hg.live++

	// 3) Maintain native adjacency.
	if hg.storeIn {
		hg.inArcs[head] = append(hg.inArcs[head], id)
	}
	if hg.storeOut {
		hg.outArcs[tails[0]] = append(hg.outArcs[tails[0]], id)
	}
	hg.invalidate()

	return id, nil
}

// AddFSMArc adds the transition src --label/w--> dst as the arc
// dst <- (src, lexical(label)).
func (hg *Hypergraph[W]) AddFSMArc(src, dst StateID, label symbol.Symbol, w W) (ArcID, error) {
	if err := hg.checkState(src); err != nil {
		return NoArc, err
	}
	if err := hg.checkState(dst); err != nil {
		return NoArc, err
	}
	lex := hg.AddLexicalState(label)

	return hg.AddArc(dst, []StateID{src, lex}, w)
}

// RemoveArc tombstones an arc. Its id is not reused until Compact.
func (hg *Hypergraph[W]) RemoveArc(id ArcID) error {
	if !hg.ArcLive(id) {
		return fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	slot := &hg.slots[id]
	if hg.storeIn {
		hg.inArcs[slot.arc.Head] = removeID(hg.inArcs[slot.arc.Head], id)
	}
	if hg.storeOut {
		first := slot.arc.Tails[0]
		hg.outArcs[first] = removeID(hg.outArcs[first], id)
	}
	slot.live = false
	slot.arc = Arc[W]{}
	hg.live--
	hg.invalidate()

	return nil
}

// ArcLive reports whether id addresses a live arc.
func (hg *Hypergraph[W]) ArcLive(id ArcID) bool {
	return id >= 0 && int(id) < len(hg.slots) && hg.slots[id].live
}

// Arc returns the arc at id. The returned Tails slice is owned by the
// hypergraph and must not be modified.
func (hg *Hypergraph[W]) Arc(id ArcID) (Arc[W], error) {
	if !hg.ArcLive(id) {
		return Arc[W]{}, fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}

	return hg.slots[id].arc, nil
}

// MustArc returns the arc at id, assuming the caller obtained id from this
// hypergraph's own listings. It panics on a dead id.
func (hg *Hypergraph[W]) MustArc(id ArcID) *Arc[W] {
	if !hg.ArcLive(id) {
		panic(fmt.Sprintf("hypergraph: MustArc(%d) on dead arc", id))
	}

	return &hg.slots[id].arc
}

// SetArcWeight replaces an arc's weight.
func (hg *Hypergraph[W]) SetArcWeight(id ArcID, w W) error {
	if !hg.ArcLive(id) {
		return fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	hg.slots[id].arc.Weight = w

	return nil
}

// ArcIDs lists live arc ids in insertion order.
func (hg *Hypergraph[W]) ArcIDs() []ArcID {
	out := make([]ArcID, 0, hg.live)
	for i := range hg.slots {
		if hg.slots[i].live {
			out = append(out, ArcID(i))
		}
	}

	return out
}

// ForEachArc calls fn for every live arc in insertion order until fn returns false.
func (hg *Hypergraph[W]) ForEachArc(fn func(id ArcID, a *Arc[W]) bool) {
	for i := range hg.slots {
		if !hg.slots[i].live {
			continue
		}
		if !fn(ArcID(i), &hg.slots[i].arc) {
			return
		}
	}
}

// Start returns the start state or NoState.
func (hg *Hypergraph[W]) Start() StateID { return hg.start }

// Final returns the final state or NoState.
func (hg *Hypergraph[W]) Final() StateID { return hg.final }

// SetStart sets the start state; NoState clears it.
func (hg *Hypergraph[W]) SetStart(s StateID) error {
	if s != NoState {
		if err := hg.checkState(s); err != nil {
			return err
		}
	}
	hg.start = s
	hg.invalidate()

	return nil
}

// SetFinal sets the final state; NoState clears it.
func (hg *Hypergraph[W]) SetFinal(s StateID) error {
	if s != NoState {
		if err := hg.checkState(s); err != nil {
			return err
		}
	}
	hg.final = s
	hg.invalidate()

	return nil
}

// InputLabel returns the input label of s (NoSymbol when out of range).
func (hg *Hypergraph[W]) InputLabel(s StateID) symbol.Symbol {
	if int(s) >= len(hg.states) {
		return symbol.NoSymbol
	}

	return hg.states[s].in
}

// OutputLabel returns the output label of s, falling back to the input label.
func (hg *Hypergraph[W]) OutputLabel(s StateID) symbol.Symbol {
	if int(s) >= len(hg.states) {
		return symbol.NoSymbol
	}
	if out := hg.states[s].out; out != symbol.NoSymbol {
		return out
	}

	return hg.states[s].in
}

// SetLabel replaces the input label of s.
func (hg *Hypergraph[W]) SetLabel(s StateID, in symbol.Symbol) error {
	if err := hg.checkState(s); err != nil {
		return err
	}
	hg.states[s].in = in
	hg.invalidate()

	return nil
}

// SetOutputLabel replaces the output label of s (NoSymbol clears it).
func (hg *Hypergraph[W]) SetOutputLabel(s StateID, out symbol.Symbol) error {
	if err := hg.checkState(s); err != nil {
		return err
	}
	hg.states[s].out = out
	hg.invalidate()

	return nil
}

// IsLexical reports whether s is labelled with a terminal or special symbol.
func (hg *Hypergraph[W]) IsLexical(s StateID) bool {
	if int(s) >= len(hg.states) {
		return false
	}

	return isLexicalLabel(hg.states[s].in)
}

// IsAxiom reports whether s needs no antecedents: lexical states and the start state.
func (hg *Hypergraph[W]) IsAxiom(s StateID) bool {
	return s == hg.start || hg.IsLexical(s)
}

// StoresInArcs reports whether incoming arc lists are maintained natively.
func (hg *Hypergraph[W]) StoresInArcs() bool { return hg.storeIn }

// StoresFirstTailOutArcs reports whether first-tail outgoing lists are maintained natively.
func (hg *Hypergraph[W]) StoresFirstTailOutArcs() bool { return hg.storeOut }

// InArcs returns the stored incoming arcs of s, or nil when not stored.
// Use NewInArcs for access that works regardless of storage.
func (hg *Hypergraph[W]) InArcs(s StateID) []ArcID {
	if !hg.storeIn || int(s) >= len(hg.inArcs) {
		return nil
	}

	return hg.inArcs[s]
}

// FirstTailOutArcs returns the stored arcs whose first tail is s, or nil when not stored.
func (hg *Hypergraph[W]) FirstTailOutArcs(s StateID) []ArcID {
	if !hg.storeOut || int(s) >= len(hg.outArcs) {
		return nil
	}

	return hg.outArcs[s]
}

// Clear removes every state and arc; storage flags and vocabulary are kept.
func (hg *Hypergraph[W]) Clear() {
	hg.states = hg.states[:0]
	hg.slots = nil
	hg.live = 0
	hg.start, hg.final = NoState, NoState
	hg.lexical = make(map[symbol.Symbol]StateID)
	if hg.storeIn {
		hg.inArcs = hg.inArcs[:0]
	}
	if hg.storeOut {
		hg.outArcs = hg.outArcs[:0]
	}
	hg.invalidate()
}

// checkState validates a state id.
func (hg *Hypergraph[W]) checkState(s StateID) error {
	if int(s) >= len(hg.states) || s == NoState {
		return fmt.Errorf("%w: %d (have %d)", ErrStateOutOfRange, s, len(hg.states))
	}

	return nil
}

// invalidate drops the cached computed properties.
func (hg *Hypergraph[W]) invalidate() { hg.propsValid = false }

// isLexicalLabel classifies a label as lexical.
func isLexicalLabel(s symbol.Symbol) bool { return s.IsTerminal() || s.IsSpecial() }

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []ArcID, id ArcID) []ArcID {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
