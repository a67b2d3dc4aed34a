package kbest

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hyperpath/weight"
)

// edge is a binarized hyperedge into one node.
type edge[W weight.Weight[W]] struct {
	children []NodeID // at most two
	local    W
	label    any
}

// candidate is a pending derivation: an edge plus a rank into each child.
type candidate[W weight.Weight[W]] struct {
	edge  int
	ranks [2]int
	cost  W
	kids  []*Derivation[W]
}

type candKey struct {
	edge  int
	ranks [2]int
}

// node is one OR-node with its memo and pending candidates. Nodes are not
// added while a Get runs, so pointers into Forest.nodes stay valid for its
// duration.
type node[W weight.Weight[W]] struct {
	edges []edge[W]

	memo      []*Derivation[W] // ascending cost
	pq        candPQ[W]
	seen      map[candKey]struct{}
	started   bool // initial candidates pushed
	running   bool // a Get on this node is on the stack
	exhausted bool
}

// Forest is a lazily enumerated derivation forest.
type Forest[W weight.Weight[W]] struct {
	nodes []node[W]
	goal  NodeID
	opts  Options[W]
}

// NewForest returns an empty forest.
func NewForest[W weight.Weight[W]](options ...Option[W]) *Forest[W] {
	opts := DefaultOptions[W]()
	for _, opt := range options {
		opt(&opts)
	}

	return &Forest[W]{goal: NoNode, opts: opts}
}

// NumNodes returns the number of nodes.
func (f *Forest[W]) NumNodes() int { return len(f.nodes) }

// AddNode appends a node and returns its id.
func (f *Forest[W]) AddNode() NodeID {
	f.nodes = append(f.nodes, node[W]{})

	return NodeID(len(f.nodes) - 1)
}

// AddEdge adds an edge into head with up to two children, a local weight and
// an opaque label. An edge without children is a leaf: its only derivation
// costs local. Edges must be added before the first Get on head.
func (f *Forest[W]) AddEdge(head NodeID, children []NodeID, local W, label any) error {
	if err := f.check(head); err != nil {
		return err
	}
	if len(children) > 2 {
		return fmt.Errorf("%w: got %d", ErrTooManyChildren, len(children))
	}
	for _, c := range children {
		if err := f.check(c); err != nil {
			return err
		}
	}
	f.nodes[head].edges = append(f.nodes[head].edges, edge[W]{
		children: append([]NodeID(nil), children...),
		local:    local,
		label:    label,
	})

	return nil
}

// SetGoal marks the node whose derivations the filter judges.
func (f *Forest[W]) SetGoal(n NodeID) error {
	if err := f.check(n); err != nil {
		return err
	}
	f.goal = n

	return nil
}

// Goal returns the goal node, or NoNode.
func (f *Forest[W]) Goal() NodeID { return f.goal }

// Get returns the derivation of n at the given 0-based rank. ok is false
// when n has no more derivations; every later call for a higher rank also
// returns ok=false.
func (f *Forest[W]) Get(n NodeID, rank int) (*Derivation[W], bool, error) {
	if err := f.check(n); err != nil {
		return nil, false, err
	}
	if rank < 0 {
		return nil, false, nil
	}
	nd := &f.nodes[n]

	// 1. Memo hit, or known exhaustion
	if rank < len(nd.memo) {
		return nd.memo[rank], true, nil
	}
	if nd.exhausted {
		return nil, false, nil
	}

	// 2. Re-entering a running node means the forest has a cycle
	if nd.running {
		return nil, false, fmt.Errorf("%w: node %d", ErrDerivationCycle, n)
	}
	nd.running = true
	defer func() { nd.running = false }()

	// 3. Seed one candidate per edge with every child at rank 0
	if !nd.started {
		nd.seen = make(map[candKey]struct{}, len(nd.edges))
		for e := range nd.edges {
			c, ok, err := f.candidate(n, e, [2]int{})
			if err != nil {
				nd.pq = nd.pq[:0]
				return nil, false, err
			}
			if ok {
				nd.pq = append(nd.pq, c)
			}
		}
		heap.Init(&nd.pq)
		nd.started = true
	}

	// 4. Materialise candidates until the memo reaches rank
	for len(nd.memo) <= rank {
		if nd.pq.Len() == 0 {
			nd.exhausted = true
			if n == f.goal {
				f.opts.Logger.Debug("kbest: goal exhausted", "node", int(n), "derivations", len(nd.memo))
			}
			return nil, false, nil
		}
		c := heap.Pop(&nd.pq).(*candidate[W])
		d := &Derivation[W]{
			Node:     n,
			Cost:     c.cost,
			Label:    nd.edges[c.edge].label,
			Children: c.kids,
		}

		// 5. Successors: advance one child rank at a time
		for i := range nd.edges[c.edge].children {
			next := c.ranks
			next[i]++
			key := candKey{edge: c.edge, ranks: next}
			if _, dup := nd.seen[key]; dup {
				continue
			}
			nd.seen[key] = struct{}{}
			s, ok, err := f.candidate(n, c.edge, next)
			if err != nil {
				return nil, false, err
			}
			if ok {
				heap.Push(&nd.pq, s)
			}
		}

		// 6. The filter only judges the goal
		if n == f.goal && f.opts.Filter != nil && !f.opts.Filter(d) {
			continue
		}
		nd.memo = append(nd.memo, d)
	}

	return nd.memo[rank], true, nil
}

// candidate builds the candidate for edge e of n at the given child ranks.
// ok is false when some child has no derivation at its rank.
func (f *Forest[W]) candidate(n NodeID, e int, ranks [2]int) (*candidate[W], bool, error) {
	ed := f.nodes[n].edges[e]
	kids := make([]*Derivation[W], len(ed.children))
	cost := weight.One[W]()
	for i, child := range ed.children {
		d, ok, err := f.Get(child, ranks[i])
		if err != nil || !ok {
			return nil, false, err
		}
		kids[i] = d
		if i == 0 {
			cost = d.Cost
		} else {
			cost = cost.Times(d.Cost)
		}
	}
	if len(kids) == 0 {
		cost = ed.local
	} else {
		cost = cost.Times(ed.local)
	}
	if cost.IsZero() {
		return nil, false, nil
	}

	return &candidate[W]{edge: e, ranks: ranks, cost: cost, kids: kids}, true, nil
}

func (f *Forest[W]) check(n NodeID) error {
	if n < 0 || int(n) >= len(f.nodes) {
		return fmt.Errorf("%w: %d (have %d)", ErrNodeOutOfRange, n, len(f.nodes))
	}

	return nil
}

// candPQ is a min-heap of candidates by cost, then edge index, then ranks.
type candPQ[W weight.Weight[W]] []*candidate[W]

func (pq candPQ[W]) Len() int { return len(pq) }

func (pq candPQ[W]) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost.Less(b.cost) {
		return true
	}
	if b.cost.Less(a.cost) {
		return false
	}
	if a.edge != b.edge {
		return a.edge < b.edge
	}
	if a.ranks[0] != b.ranks[0] {
		return a.ranks[0] < b.ranks[0]
	}

	return a.ranks[1] < b.ranks[1]
}

func (pq candPQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candPQ[W]) Push(x any) { *pq = append(*pq, x.(*candidate[W])) }

func (pq *candPQ[W]) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return c
}
