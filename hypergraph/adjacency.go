package hypergraph

import "github.com/katalvlaran/hyperpath/weight"

// Adjacency answers per-state arc lists in O(1).
type Adjacency interface {
	// Arcs returns the arc ids adjacent to s. The slice must not be modified.
	Arcs(s StateID) []ArcID
	// Native reports whether answers come straight from the hypergraph's
	// own storage rather than a side index.
	Native() bool
}

// sideIndex is a snapshot adjacency built by scanning every arc once.
// It does not observe later mutations of the hypergraph.
type sideIndex struct {
	lists [][]ArcID
}

func (x *sideIndex) Arcs(s StateID) []ArcID {
	if int(s) >= len(x.lists) {
		return nil
	}

	return x.lists[s]
}

func (x *sideIndex) Native() bool { return false }

// nativeIn delegates to stored in-arcs.
type nativeIn[W weight.Weight[W]] struct{ hg *Hypergraph[W] }

func (n nativeIn[W]) Arcs(s StateID) []ArcID { return n.hg.InArcs(s) }
func (n nativeIn[W]) Native() bool           { return true }

// nativeOut delegates to stored first-tail out-arcs.
type nativeOut[W weight.Weight[W]] struct{ hg *Hypergraph[W] }

func (n nativeOut[W]) Arcs(s StateID) []ArcID { return n.hg.FirstTailOutArcs(s) }
func (n nativeOut[W]) Native() bool           { return true }

// NewInArcs returns incoming-arc adjacency (arcs by head). If hg stores in-arcs
// the adaptor delegates; otherwise it builds a side index in O(N + A) whose
// per-state order follows arc insertion order.
func NewInArcs[W weight.Weight[W]](hg *Hypergraph[W]) Adjacency {
	if hg.storeIn {
		return nativeIn[W]{hg: hg}
	}
	idx := &sideIndex{lists: make([][]ArcID, len(hg.states))}
	hg.ForEachArc(func(id ArcID, a *Arc[W]) bool {
		idx.lists[a.Head] = append(idx.lists[a.Head], id)
		return true
	})

	return idx
}

// NewFirstTailOutArcs returns outgoing adjacency keyed by each arc's first
// tail, delegating to native storage when present.
func NewFirstTailOutArcs[W weight.Weight[W]](hg *Hypergraph[W]) Adjacency {
	if hg.storeOut {
		return nativeOut[W]{hg: hg}
	}
	idx := &sideIndex{lists: make([][]ArcID, len(hg.states))}
	hg.ForEachArc(func(id ArcID, a *Arc[W]) bool {
		idx.lists[a.Tails[0]] = append(idx.lists[a.Tails[0]], id)
		return true
	})

	return idx
}

// NewOutArcs returns outgoing adjacency over every tail: an arc is listed
// once under each distinct tail state. Always a side index.
func NewOutArcs[W weight.Weight[W]](hg *Hypergraph[W]) Adjacency {
	idx := &sideIndex{lists: make([][]ArcID, len(hg.states))}
	hg.ForEachArc(func(id ArcID, a *Arc[W]) bool {
		for i, t := range a.Tails {
			if containsState(a.Tails[:i], t) {
				continue
			}
			idx.lists[t] = append(idx.lists[t], id)
		}
		return true
	})

	return idx
}

func containsState(ss []StateID, s StateID) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}

	return false
}
