package bestpath

import (
	"container/heap"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/sortstates"
	"github.com/katalvlaran/hyperpath/weight"
)

// Best computes the cheapest derivation of hg's final state.
//
// Returns ok=false (and a nil Path) when hg has no final state or the final
// state cannot be derived from the axioms. Inside scores are computed for
// every state, not only those on the best path.
func Best[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], options ...Option) (*Path[W], bool, error) {
	// 1) Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2) Best inside scores: topological DP when acyclic, Knuth otherwise
	inside, pred, acyclic := bestInside(hg)

	// 3) Report "no answer" without an error
	final := hg.Final()
	if final == hypergraph.NoState || inside[final].IsZero() {
		opts.Logger.Debug("bestpath: final state not derivable",
			"states", hg.NumStates(),
			"arcs", hg.NumArcs(),
			"acyclic", acyclic,
		)

		return nil, false, nil
	}
	opts.Logger.Debug("bestpath: done",
		"states", hg.NumStates(),
		"arcs", hg.NumArcs(),
		"acyclic", acyclic,
		"cost", inside[final].String(),
	)

	return &Path[W]{
		hg:     hg,
		Final:  final,
		Cost:   inside[final],
		Pred:   pred,
		Inside: inside,
	}, true, nil
}

// Inside returns the best inside score of every state (Zero when underivable).
func Inside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) []W {
	inside, _, _ := bestInside(hg)

	return inside
}

// bestInside picks the exact algorithm for hg. Acyclic input is solved by a
// topological DP, which allows any sign of cost; cyclic input falls back to
// Knuth's algorithm, which needs costs that never improve under Times.
func bestInside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) ([]W, []hypergraph.ArcID, bool) {
	if order, err := sortstates.Order(hg); err == nil {
		inside, pred := topoInside(hg, order)
		return inside, pred, true
	}
	r := newKnuth(hg)
	r.run()

	return r.inside, r.pred, false
}

// topoInside relaxes every in-arc of every non-axiom state, tails first.
func topoInside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], order []hypergraph.StateID) ([]W, []hypergraph.ArcID) {
	n := hg.NumStates()
	zero, one := weight.Zero[W](), weight.One[W]()
	inside := make([]W, n)
	pred := make([]hypergraph.ArcID, n)
	for s := range inside {
		inside[s] = zero
		pred[s] = hypergraph.NoArc
		if hg.IsAxiom(hypergraph.StateID(s)) {
			inside[s] = one
		}
	}

	in := hypergraph.NewInArcs(hg)
	for _, s := range order {
		if hg.IsAxiom(s) {
			continue
		}
		for _, id := range in.Arcs(s) {
			cand := arcCost(hg.MustArc(id), inside)
			if cand.IsZero() || !cand.Less(inside[s]) {
				continue
			}
			inside[s] = cand
			pred[s] = id
		}
	}

	return inside, pred
}

// knuth holds the mutable state for one best-inside computation.
type knuth[W weight.Weight[W]] struct {
	hg      *hypergraph.Hypergraph[W]
	out     hypergraph.Adjacency // every distinct tail -> arcs
	inside  []W
	pred    []hypergraph.ArcID
	done    []bool
	pending []int // per arc: distinct tails not yet finalised
	pq      statePQ[W]
}

func newKnuth[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) *knuth[W] {
	n := hg.NumStates()
	r := &knuth[W]{
		hg:      hg,
		out:     hypergraph.NewOutArcs(hg),
		inside:  make([]W, n),
		pred:    make([]hypergraph.ArcID, n),
		done:    make([]bool, n),
		pending: make([]int, hg.ArcCapacity()),
		pq:      make(statePQ[W], 0, n),
	}
	zero, one := weight.Zero[W](), weight.One[W]()

	// 1) Every state starts underivable; axioms start at One
	for s := 0; s < n; s++ {
		r.inside[s] = zero
		r.pred[s] = hypergraph.NoArc
		if hg.IsAxiom(hypergraph.StateID(s)) {
			r.inside[s] = one
			r.pq = append(r.pq, &stateItem[W]{id: hypergraph.StateID(s), cost: one})
		}
	}
	heap.Init(&r.pq)

	// 2) Count distinct tails per arc
	hg.ForEachArc(func(id hypergraph.ArcID, a *hypergraph.Arc[W]) bool {
		r.pending[id] = distinctTails(a.Tails)
		return true
	})

	return r
}

// run finalises states in cost order, firing arcs whose tails are all final.
func (r *knuth[W]) run() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest state; skip stale entries
		item := heap.Pop(&r.pq).(*stateItem[W])
		s := item.id
		if r.done[s] {
			continue
		}
		r.done[s] = true

		// 2) Every arc waiting on s loses one pending tail
		for _, id := range r.out.Arcs(s) {
			r.pending[id]--
			if r.pending[id] != 0 {
				continue
			}
			a := r.hg.MustArc(id)
			if r.done[a.Head] {
				continue
			}
			// 3) All tails final: propose a cost for the head
			cand := arcCost(a, r.inside)
			if cand.IsZero() || !cand.Less(r.inside[a.Head]) {
				continue
			}
			r.inside[a.Head] = cand
			r.pred[a.Head] = id
			heap.Push(&r.pq, &stateItem[W]{id: a.Head, cost: cand})
		}
	}
}

// arcCost returns inside[t1] ⊗ … ⊗ inside[tk] ⊗ weight.
func arcCost[W weight.Weight[W]](a *hypergraph.Arc[W], inside []W) W {
	acc := inside[a.Tails[0]]
	for _, t := range a.Tails[1:] {
		acc = acc.Times(inside[t])
	}

	return acc.Times(a.Weight)
}

func distinctTails(tails []hypergraph.StateID) int {
	n := 0
outer:
	for i, t := range tails {
		for _, u := range tails[:i] {
			if u == t {
				continue outer
			}
		}
		n++
	}

	return n
}

// stateItem is a state and its tentative score in the priority queue.
type stateItem[W weight.Weight[W]] struct {
	id   hypergraph.StateID
	cost W
}

// statePQ is a min-heap of *stateItem ordered by cost, then id. Stale
// entries are skipped when popped (lazy decrease-key).
type statePQ[W weight.Weight[W]] []*stateItem[W]

func (pq statePQ[W]) Len() int { return len(pq) }

func (pq statePQ[W]) Less(i, j int) bool {
	if pq[i].cost.Less(pq[j].cost) {
		return true
	}
	if pq[j].cost.Less(pq[i].cost) {
		return false
	}

	return pq[i].id < pq[j].id
}

func (pq statePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[W]) Push(x any) { *pq = append(*pq, x.(*stateItem[W])) }

func (pq *statePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
