package prune

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hyperpath/bestpath"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

// Prune removes, in place, the states and arcs of hg that fall outside the
// configured criterion. States and arcs are renumbered densely; Stats.Remap
// maps old state ids to new ones.
//
// A hypergraph whose final state cannot be derived is emptied: no
// derivation is within any beam of the best one.
func Prune[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], options ...Option) (*Stats, error) {
	// 1) Apply and validate options
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	st := &Stats{StatesBefore: hg.NumStates(), ArcsBefore: hg.NumArcs()}

	// 2) Single-path hypergraphs have nothing to prune
	if opts.SkipIfTrivial && singlePath(hg) {
		st.StatesAfter, st.ArcsAfter = st.StatesBefore, st.ArcsBefore
		st.Threshold = math.Inf(1)
		st.Skipped = true
		opts.Logger.Debug("prune: skipped trivial hypergraph", "states", st.StatesBefore, "arcs", st.ArcsBefore)

		return st, nil
	}

	// 3) Decide what survives
	var (
		keepState func(hypergraph.StateID) bool
		keepArc   func(hypergraph.ArcID, *hypergraph.Arc[W]) bool
		err       error
	)
	if opts.SingleBest {
		keepState, keepArc, err = singleBest(hg)
		st.Threshold = math.Inf(1)
	} else {
		keepState, keepArc, st.Threshold, err = beam(hg, opts)
	}
	if err != nil {
		return nil, err
	}

	// 4) Restrict in place
	st.Remap = hg.Restrict(keepState, keepArc)
	st.StatesAfter, st.ArcsAfter = hg.NumStates(), hg.NumArcs()
	opts.Logger.Debug("prune: done",
		"singleBest", opts.SingleBest,
		"threshold", st.Threshold,
		"statesBefore", st.StatesBefore,
		"statesAfter", st.StatesAfter,
		"arcsBefore", st.ArcsBefore,
		"arcsAfter", st.ArcsAfter,
	)

	return st, nil
}

func validate(o Options) error {
	if o.Beam < 0 || math.IsNaN(o.Beam) {
		return fmt.Errorf("%w: %v", ErrBadBeam, o.Beam)
	}
	if o.ExtraStates < 0 {
		return fmt.Errorf("%w: %d", ErrBadExtraStates, o.ExtraStates)
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) {
		return fmt.Errorf("%w: %v", ErrBadEpsilon, o.Epsilon)
	}

	return nil
}

// singlePath reports whether no state has more than one incoming arc.
func singlePath[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) bool {
	in := hypergraph.NewInArcs(hg)
	for s := 0; s < hg.NumStates(); s++ {
		if len(in.Arcs(hypergraph.StateID(s))) > 1 {
			return false
		}
	}

	return true
}

// singleBest flags the arcs of the best derivation and every state they touch.
func singleBest[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) (func(hypergraph.StateID) bool, func(hypergraph.ArcID, *hypergraph.Arc[W]) bool, error) {
	onPath := make([]bool, hg.ArcCapacity())
	used := make([]bool, hg.NumStates())
	p, ok, err := bestpath.Best(hg)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		arcs, err := p.Arcs()
		if err != nil {
			return nil, nil, err
		}
		for _, id := range arcs {
			onPath[id] = true
			a := hg.MustArc(id)
			used[a.Head] = true
			for _, t := range a.Tails {
				used[t] = true
			}
		}
		// A derivation with no arcs: the final state is itself an axiom.
		used[p.Final] = true
	}

	return func(s hypergraph.StateID) bool { return used[s] },
		func(id hypergraph.ArcID, _ *hypergraph.Arc[W]) bool { return onPath[id] },
		nil
}

// beam scores every state and arc by the best (or total) derivation through
// it and keeps those within the threshold.
func beam[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], o Options) (func(hypergraph.StateID) bool, func(hypergraph.ArcID, *hypergraph.Arc[W]) bool, float64, error) {
	// 1) Inside and outside scores
	inside, outside, err := scores(hg, o.Posteriors)
	if err != nil {
		return nil, nil, 0, err
	}
	final := hg.Final()
	if final == hypergraph.NoState || inside[final].IsZero() {
		none := func(hypergraph.StateID) bool { return false }
		return none, nil, math.Inf(-1), nil
	}

	// 2) Base threshold
	threshold := inside[final].Value() + o.Beam + o.Epsilon
	total := make([]float64, hg.NumStates())
	for s := range total {
		total[s] = inside[s].Times(outside[s]).Value()
	}

	// 3) Widen to admit the k cheapest states beyond the beam, ties included
	if o.ExtraStates > 0 {
		if kth, ok := kthOutside(hg, total, threshold, o.ExtraStates); ok {
			threshold = math.Max(threshold, kth+o.Epsilon)
		}
	}

	keepState := func(s hypergraph.StateID) bool { return total[s] <= threshold }
	keepArc := func(_ hypergraph.ArcID, a *hypergraph.Arc[W]) bool {
		c := outside[a.Head].Times(a.Weight)
		for _, t := range a.Tails {
			c = c.Times(inside[t])
		}
		return c.Value() <= threshold
	}

	return keepState, keepArc, threshold, nil
}

// scores returns best or accumulated inside and outside scores.
func scores[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], posteriors bool) ([]W, []W, error) {
	if posteriors {
		inside, err := bestpath.InsideSum(hg)
		if err != nil {
			return nil, nil, err
		}
		outside, err := bestpath.OutsideSum(hg, inside)
		return inside, outside, err
	}
	inside := bestpath.Inside(hg)
	outside, err := bestpath.Outside(hg, inside)

	return inside, outside, err
}

// kthOutside returns the kth smallest finite total among non-lexical states
// above threshold (or the largest, if fewer than k exist).
func kthOutside[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], total []float64, threshold float64, k int) (float64, bool) {
	h := make(maxHeap, 0, k)
	for s, c := range total {
		if c <= threshold || math.IsInf(c, 1) || hg.IsLexical(hypergraph.StateID(s)) {
			continue
		}
		if len(h) < k {
			heap.Push(&h, c)
			continue
		}
		if c < h[0] {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}
	if len(h) == 0 {
		return 0, false
	}

	return h[0], true
}

// maxHeap keeps the k smallest values seen; the root is the largest of them.
type maxHeap []float64

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(float64)) }
func (h *maxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
