package sortstates

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

// Sort renumbers the states of hg according to the configured Policy.
//
// In place by default; WithCopy sorts a clone. Under stable mode (default) an
// input that already satisfies the policy is returned untouched with
// AlreadySorted set and an identity permutation, even when Copy is set.
//
// Returns ErrCycleDetected (wrapping hypergraph.ErrCycle) when the topological
// traversal meets more back edges than MaxBackEdges allows; hg is not
// modified in that case.
func Sort[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], options ...Option) (*Result[W], error) {
	// 1. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	n := hg.NumStates()

	// 2. Stable mode: nothing to do if the order already holds
	if opts.Stable && IsSorted(hg, opts.Policy) {
		opts.Logger.Debug("sortstates: already sorted",
			"policy", opts.Policy.String(),
			"states", n,
		)

		return &Result[W]{Graph: hg, Permutation: identity(n), AlreadySorted: true}, nil
	}

	// 3. Compute the new id of every state
	var (
		perm []hypergraph.StateID
		back int
		err  error
	)
	switch opts.Policy {
	case Topological:
		perm, back, err = topological(hg, opts.MaxBackEdges)
		if err != nil {
			return nil, err
		}
	case LexicalFirst:
		perm = partition(hg, true)
	case LexicalLast:
		perm = partition(hg, false)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadPolicy, int(opts.Policy))
	}

	// 4. Apply, in place or on a clone
	target := hg
	if opts.Copy {
		target = hg.Clone()
	}
	if err = target.Permute(perm); err != nil {
		return nil, err
	}
	opts.Logger.Debug("sortstates: sorted",
		"policy", opts.Policy.String(),
		"states", n,
		"backEdges", back,
		"copy", opts.Copy,
	)

	return &Result[W]{Graph: target, Permutation: perm, BackEdges: back}, nil
}

// IsSorted reports whether hg already satisfies policy.
// Complexity: O(N) for the partition policies, O(1) amortised for Topological
// (cached property).
func IsSorted[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], policy Policy) bool {
	switch policy {
	case Topological:
		return hg.IsSorted()
	case LexicalFirst, LexicalLast:
		seenSecond := false
		for s := 0; s < hg.NumStates(); s++ {
			// "first group" is lexical for LexicalFirst and non-lexical for LexicalLast
			first := hg.IsLexical(hypergraph.StateID(s)) == (policy == LexicalFirst)
			if first && seenSecond {
				return false
			}
			if !first {
				seenSecond = true
			}
		}

		return true
	default:
		return false
	}
}

// topoSorter holds the traversal state of one topological sort.
type topoSorter[W weight.Weight[W]] struct {
	hg      *hypergraph.Hypergraph[W]
	in      hypergraph.Adjacency
	state   []uint8
	order   []hypergraph.StateID // post-order of non-lexical states
	back    int
	maxBack int
}

// topological returns perm[old] == new for the Topological policy.
func topological[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], maxBack int) ([]hypergraph.StateID, int, error) {
	n := hg.NumStates()
	t := &topoSorter[W]{
		hg:      hg,
		in:      hypergraph.NewInArcs(hg),
		state:   make([]uint8, n),
		order:   make([]hypergraph.StateID, 0, n),
		maxBack: maxBack,
	}

	// 1. The final state roots the main traversal
	if f := hg.Final(); f != hypergraph.NoState && !hg.IsLexical(f) {
		if err := t.visit(f); err != nil {
			return nil, 0, err
		}
	}
	// 2. States the final state does not depend on keep their relative order
	for s := 0; s < n; s++ {
		id := hypergraph.StateID(s)
		if t.state[s] == White && !hg.IsLexical(id) {
			if err := t.visit(id); err != nil {
				return nil, 0, err
			}
		}
	}

	// 3. Post-order numbers tails before heads; lexical states go last
	perm := make([]hypergraph.StateID, n)
	next := hypergraph.StateID(0)
	for _, s := range t.order {
		perm[s] = next
		next++
	}
	for s := 0; s < n; s++ {
		if hg.IsLexical(hypergraph.StateID(s)) {
			perm[s] = next
			next++
		}
	}

	return perm, t.back, nil
}

// visit explores the non-lexical antecedents of s depth first.
func (t *topoSorter[W]) visit(s hypergraph.StateID) error {
	// 1. Mark as in progress
	t.state[s] = Gray

	// 2. Every non-lexical tail of every incoming arc must finish first
	for _, id := range t.in.Arcs(s) {
		a := t.hg.MustArc(id)
		for _, tail := range a.Tails {
			if t.hg.IsLexical(tail) {
				continue
			}
			switch t.state[tail] {
			case Gray:
				// 2a. Back edge: tolerated up to maxBack, then a cycle error
				t.back++
				if t.back > t.maxBack {
					return fmt.Errorf("%w: arc %d (%d <- %d)", ErrCycleDetected, id, a.Head, tail)
				}
			case White:
				if err := t.visit(tail); err != nil {
					return err
				}
			}
		}
	}

	// 3. Fully explored; record in post-order
	t.state[s] = Black
	t.order = append(t.order, s)

	return nil
}

// partition moves lexical states to the front (lexicalFirst) or back,
// preserving relative order within each group.
func partition[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], lexicalFirst bool) []hypergraph.StateID {
	n := hg.NumStates()
	perm := make([]hypergraph.StateID, n)
	next := hypergraph.StateID(0)
	for pass := 0; pass < 2; pass++ {
		wantLexical := (pass == 0) == lexicalFirst
		for s := 0; s < n; s++ {
			if hg.IsLexical(hypergraph.StateID(s)) == wantLexical {
				perm[s] = next
				next++
			}
		}
	}

	return perm
}

func identity(n int) []hypergraph.StateID {
	perm := make([]hypergraph.StateID, n)
	for i := range perm {
		perm[i] = hypergraph.StateID(i)
	}

	return perm
}

// Order returns the non-lexical states of hg in topological order (tails
// before heads) without renumbering anything. Lexical states are omitted.
// Returns ErrCycleDetected on the first back edge.
// Complexity: O(N + total tails).
func Order[W weight.Weight[W]](hg *hypergraph.Hypergraph[W]) ([]hypergraph.StateID, error) {
	if hg.IsSorted() {
		order := make([]hypergraph.StateID, 0, hg.NumStates())
		for s := 0; s < hg.NumStates(); s++ {
			if !hg.IsLexical(hypergraph.StateID(s)) {
				order = append(order, hypergraph.StateID(s))
			}
		}

		return order, nil
	}
	perm, _, err := topological(hg, 0)
	if err != nil {
		return nil, err
	}
	order := make([]hypergraph.StateID, 0, len(perm))
	inverse := make([]hypergraph.StateID, len(perm))
	for old, nw := range perm {
		inverse[nw] = hypergraph.StateID(old)
	}
	for _, s := range inverse {
		if !hg.IsLexical(s) {
			order = append(order, s)
		}
	}

	return order, nil
}
