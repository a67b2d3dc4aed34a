package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hyperpath/weight"
)

// step is a back-pointer chain from a reached state to Start.
type step[S comparable, W weight.Weight[W]] struct {
	prev *step[S, W]
	t    Transition[S, W]
}

// entry is either an arrival at state (next < 0) or a continuation that
// will follow transition next of state.
type entry[S comparable, W weight.Weight[W]] struct {
	state S
	cost  W
	prio  float64
	next  int
	path  *step[S, W]
	seq   int
}

// expansion caches Expand output for a settled state.
type expansion[S comparable, W weight.Weight[W]] struct {
	cost  W
	path  *step[S, W]
	trans []Transition[S, W]
}

// Search returns the cheapest path from a.Start() to a final state, or
// ok=false when no final state is reachable.
func Search[S comparable, W weight.Weight[W]](a Automaton[S, W], options ...Option[S]) (*Result[S, W], bool, error) {
	opts := DefaultOptions[S]()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Slack < 0 {
		return nil, false, fmt.Errorf("%w: slack %g", ErrBadOption, opts.Slack)
	}
	if opts.MaxPops < 0 {
		return nil, false, fmt.Errorf("%w: max pops %d", ErrBadOption, opts.MaxPops)
	}

	r := &runner[S, W]{
		a:        a,
		opts:     opts,
		settled:  make(map[S]*expansion[S, W]),
		frontier: &entryPQ[S, W]{},
	}
	res, ok, err := r.run()
	opts.Logger.Debug("search: done", "found", ok, "pops", r.pops, "settled", len(r.settled))

	return res, ok, err
}

type runner[S comparable, W weight.Weight[W]] struct {
	a        Automaton[S, W]
	opts     Options[S]
	settled  map[S]*expansion[S, W]
	frontier *entryPQ[S, W]
	pops     int
	seq      int
}

func (r *runner[S, W]) run() (*Result[S, W], bool, error) {
	start := r.a.Start()
	r.push(start, weight.One[W](), r.h(start), -1, nil)

	for r.frontier.Len() > 0 {
		if r.opts.MaxPops > 0 && r.pops >= r.opts.MaxPops {
			return nil, false, fmt.Errorf("%w: %d", ErrPopLimit, r.pops)
		}
		e := heap.Pop(r.frontier).(*entry[S, W])
		r.pops++

		// 1. Continuation: follow the deferred transition
		if e.next >= 0 {
			r.follow(e.state, e.next)
			continue
		}

		// 2. Arrival: the first one settles the state
		if _, done := r.settled[e.state]; done {
			continue
		}
		x := &expansion[S, W]{cost: e.cost, path: e.path}
		r.settled[e.state] = x
		if r.a.IsFinal(e.state) {
			return r.result(e), true, nil
		}

		// 3. Expand lazily or fully
		x.trans = r.a.Expand(e.state)
		if len(x.trans) == 0 {
			continue
		}
		if r.opts.FullyExpand {
			for i := range x.trans {
				r.arrive(x, i)
			}
			continue
		}
		r.follow(e.state, 0)
	}

	return nil, false, nil
}

// follow pushes the arrival for transition i of the settled state s and a
// continuation for transition i+1.
func (r *runner[S, W]) follow(s S, i int) {
	x := r.settled[s]
	r.arrive(x, i)
	if i+1 < len(x.trans) {
		t := x.trans[i+1]
		r.push(s, x.cost, r.bound(s, x, t)-r.opts.Slack, i+1, nil)
	}
}

// bound is a lower bound on the arrival priority of t and every later
// transition of s. Later weights are no smaller than t's, and a consistent
// heuristic gives h(s) <= w + h(to) for each of them.
func (r *runner[S, W]) bound(s S, x *expansion[S, W], t Transition[S, W]) float64 {
	next := x.cost.Times(t.Weight).Value()
	if r.opts.Heuristic == nil {
		return next
	}

	return max(next, x.cost.Value()+r.h(s))
}

func (r *runner[S, W]) arrive(x *expansion[S, W], i int) {
	t := x.trans[i]
	if _, done := r.settled[t.To]; done {
		return
	}
	cost := x.cost.Times(t.Weight)
	if cost.IsZero() {
		return
	}
	r.push(t.To, cost, cost.Value()+r.h(t.To), -1, &step[S, W]{prev: x.path, t: t})
}

func (r *runner[S, W]) push(s S, cost W, prio float64, next int, path *step[S, W]) {
	heap.Push(r.frontier, &entry[S, W]{state: s, cost: cost, prio: prio, next: next, path: path, seq: r.seq})
	r.seq++
}

func (r *runner[S, W]) h(s S) float64 {
	if r.opts.Heuristic == nil {
		return 0
	}

	return r.opts.Heuristic(s)
}

func (r *runner[S, W]) result(e *entry[S, W]) *Result[S, W] {
	var n int
	for p := e.path; p != nil; p = p.prev {
		n++
	}
	trans := make([]Transition[S, W], n)
	for p := e.path; p != nil; p = p.prev {
		n--
		trans[n] = p.t
	}

	return &Result[S, W]{Final: e.state, Cost: e.cost, Transitions: trans, Pops: r.pops}
}

// entryPQ is a min-heap by priority; ties go to the earlier push.
type entryPQ[S comparable, W weight.Weight[W]] []*entry[S, W]

func (pq entryPQ[S, W]) Len() int { return len(pq) }
func (pq entryPQ[S, W]) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}
func (pq entryPQ[S, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ[S, W]) Push(x any)   { *pq = append(*pq, x.(*entry[S, W])) }
func (pq *entryPQ[S, W]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return e
}
