package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// Clone returns a deep copy of states, labels and arcs. The vocabulary is
// shared by reference; payloads are copied shallowly.
// Complexity: O(N + total tails).
func (hg *Hypergraph[W]) Clone() *Hypergraph[W] {
	out := &Hypergraph[W]{
		voc:        hg.voc,
		states:     append([]state(nil), hg.states...),
		slots:      make([]arcSlot[W], len(hg.slots)),
		live:       hg.live,
		start:      hg.start,
		final:      hg.final,
		storeIn:    hg.storeIn,
		storeOut:   hg.storeOut,
		lexical:    make(map[symbol.Symbol]StateID, len(hg.lexical)),
		props:      hg.props,
		propsValid: hg.propsValid,
	}
	for i, slot := range hg.slots {
		if slot.live {
			slot.arc.Tails = append([]StateID(nil), slot.arc.Tails...)
		}
		out.slots[i] = slot
	}
	for k, v := range hg.lexical {
		out.lexical[k] = v
	}
	if hg.storeIn {
		out.inArcs = cloneLists(hg.inArcs)
	}
	if hg.storeOut {
		out.outArcs = cloneLists(hg.outArcs)
	}

	return out
}

// Restrict keeps the states for which keepState returns true and the arcs
// for which keepArc returns true and whose head and tails are all kept; nil
// predicates keep everything. States and arcs are renumbered densely in
// their previous relative order. The returned slice maps old state ids to
// new ones (NoState for removed states).
// Complexity: O(N + total tails).
func (hg *Hypergraph[W]) Restrict(keepState func(StateID) bool, keepArc func(ArcID, *Arc[W]) bool) []StateID {
	// 1) Renumber surviving states.
	remap := make([]StateID, len(hg.states))
	states := make([]state, 0, len(hg.states))
	for s := range hg.states {
		if keepState != nil && !keepState(StateID(s)) {
			remap[s] = NoState
			continue
		}
		remap[s] = StateID(len(states))
		states = append(states, hg.states[s])
	}

	// 2) Keep arcs whose endpoints survive and that pass keepArc.
	slots := make([]arcSlot[W], 0, hg.live)
	for i := range hg.slots {
		if !hg.slots[i].live {
			continue
		}
		a := hg.slots[i].arc
		if keepArc != nil && !keepArc(ArcID(i), &a) {
			continue
		}
		if !remapArc(&a, remap) {
			continue
		}
		slots = append(slots, arcSlot[W]{arc: a, live: true})
	}

	// 3) Install and fix up start/final, lexical memo and adjacency.
	hg.states, hg.slots, hg.live = states, slots, len(slots)
	hg.start = remapState(hg.start, remap)
	hg.final = remapState(hg.final, remap)
	hg.remapLexical(remap)
	hg.rebuildAdjacency()
	hg.invalidate()

	return remap
}

// Compact drops arc tombstones and renumbers arcs densely. State ids are unchanged.
func (hg *Hypergraph[W]) Compact() {
	if hg.live == len(hg.slots) {
		return
	}
	hg.Restrict(nil, nil)
}

// Permute renames every state: state s becomes perm[s]. perm must be a
// bijection on [0, N). Arc ids are unchanged.
func (hg *Hypergraph[W]) Permute(perm []StateID) error {
	n := len(hg.states)
	if len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if int(p) >= n || seen[p] {
			return fmt.Errorf("%w: %v", ErrBadPermutation, p)
		}
		seen[p] = true
	}

	states := make([]state, n)
	for old, nw := range perm {
		states[nw] = hg.states[old]
	}
	hg.states = states
	for i := range hg.slots {
		if !hg.slots[i].live {
			continue
		}
		remapArc(&hg.slots[i].arc, perm)
	}
	hg.start = remapState(hg.start, perm)
	hg.final = remapState(hg.final, perm)
	hg.remapLexical(perm)
	hg.rebuildAdjacency()
	hg.invalidate()

	return nil
}

// Trim removes useless states: those that cannot be derived from axioms, or
// from which the final state cannot be reached. Arcs touching removed states
// go too. It returns the number of states and arcs removed.
// Complexity: O(N + total tails).
func (hg *Hypergraph[W]) Trim() (int, int) {
	n := len(hg.states)
	beforeArcs := hg.live
	derivable := hg.derivable()

	// Backward sweep from the final state over arcs whose tails are derivable.
	useful := make([]bool, n)
	if hg.final != NoState && derivable[hg.final] {
		in := NewInArcs(hg)
		queue := []StateID{hg.final}
		useful[hg.final] = true
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, id := range in.Arcs(s) {
				a := &hg.slots[id].arc
				if !allDerivable(a.Tails, derivable) {
					continue
				}
				for _, t := range a.Tails {
					if !useful[t] {
						useful[t] = true
						queue = append(queue, t)
					}
				}
			}
		}
	}

	hg.Restrict(func(s StateID) bool { return useful[s] }, func(_ ArcID, a *Arc[W]) bool {
		return useful[a.Head] && allDerivable(a.Tails, useful)
	})

	return n - len(hg.states), beforeArcs - hg.live
}

// derivable marks states reachable bottom-up from axioms: an arc fires once
// all its tails are derivable.
func (hg *Hypergraph[W]) derivable() []bool {
	n := len(hg.states)
	done := make([]bool, n)
	pending := make([]int, len(hg.slots))
	out := NewOutArcs(hg)

	queue := make([]StateID, 0, n)
	for s := 0; s < n; s++ {
		if hg.IsAxiom(StateID(s)) {
			done[s] = true
			queue = append(queue, StateID(s))
		}
	}
	for i := range hg.slots {
		if hg.slots[i].live {
			pending[i] = distinctTails(hg.slots[i].arc.Tails)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, id := range out.Arcs(s) {
			pending[id]--
			if pending[id] != 0 {
				continue
			}
			h := hg.slots[id].arc.Head
			if !done[h] {
				done[h] = true
				queue = append(queue, h)
			}
		}
	}

	return done
}

func distinctTails(tails []StateID) int {
	n := 0
	for i, t := range tails {
		if !containsState(tails[:i], t) {
			n++
		}
	}

	return n
}

func allDerivable(tails []StateID, ok []bool) bool {
	for _, t := range tails {
		if !ok[t] {
			return false
		}
	}

	return true
}

// remapArc rewrites head and tails through m, returning false if any maps to NoState.
func remapArc[W weight.Weight[W]](a *Arc[W], m []StateID) bool {
	if m[a.Head] == NoState {
		return false
	}
	tails := make([]StateID, len(a.Tails))
	for i, t := range a.Tails {
		if m[t] == NoState {
			return false
		}
		tails[i] = m[t]
	}
	a.Head = m[a.Head]
	a.Tails = tails

	return true
}

func remapState(s StateID, m []StateID) StateID {
	if s == NoState || int(s) >= len(m) {
		return NoState
	}

	return m[s]
}

func (hg *Hypergraph[W]) remapLexical(m []StateID) {
	lex := make(map[symbol.Symbol]StateID, len(hg.lexical))
	for label, s := range hg.lexical {
		if ns := remapState(s, m); ns != NoState {
			lex[label] = ns
		}
	}
	hg.lexical = lex
}

func cloneLists(lists [][]ArcID) [][]ArcID {
	out := make([][]ArcID, len(lists))
	for i, l := range lists {
		out[i] = append([]ArcID(nil), l...)
	}

	return out
}
