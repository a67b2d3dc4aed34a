package sortstates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/sortstates"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

type sid = hypergraph.StateID

// unsorted builds final=0 <- (3, word) and 3 <- 2, with the lexical state at id 1.
func unsorted(t *testing.T) *hypergraph.Hypergraph[weight.Viterbi] {
	t.Helper()
	g := hypergraph.New[weight.Viterbi]()
	g.AddState(symbol.New(symbol.Nonterminal, 0))
	g.AddLexicalState(symbol.New(symbol.Terminal, 7))
	g.AddState(symbol.New(symbol.Nonterminal, 2))
	g.AddState(symbol.New(symbol.Nonterminal, 3))
	_, err := g.AddArc(3, []sid{2}, 1)
	require.NoError(t, err)
	_, err = g.AddArc(0, []sid{3, 1}, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(2))
	require.NoError(t, g.SetFinal(0))
	require.False(t, g.IsSorted())

	return g
}

// assertTopological checks that every non-lexical tail precedes its head.
func assertTopological(t *testing.T, g *hypergraph.Hypergraph[weight.Viterbi]) {
	t.Helper()
	g.ForEachArc(func(id hypergraph.ArcID, a *hypergraph.Arc[weight.Viterbi]) bool {
		for _, tail := range a.Tails {
			if !g.IsLexical(tail) {
				assert.Less(t, tail, a.Head, "arc %d", id)
			}
		}
		return true
	})
}

func TestSort_Topological(t *testing.T) {
	g := unsorted(t)
	res, err := sortstates.Sort(g)
	require.NoError(t, err)

	assert.Same(t, g, res.Graph)
	assert.False(t, res.AlreadySorted)
	assert.Equal(t, []sid{2, 3, 0, 1}, res.Permutation)
	assert.Equal(t, sid(2), g.Final())
	assert.Equal(t, sid(0), g.Start())
	assert.True(t, g.IsSorted())
	assertTopological(t, g)
}

func TestSort_StableIsIdempotent(t *testing.T) {
	g := unsorted(t)
	_, err := sortstates.Sort(g)
	require.NoError(t, err)
	before := g.String()

	res, err := sortstates.Sort(g, sortstates.WithStable(true))
	require.NoError(t, err)
	assert.True(t, res.AlreadySorted)
	assert.Equal(t, []sid{0, 1, 2, 3}, res.Permutation)
	assert.Equal(t, before, g.String())
}

func TestSort_UnstableStillConverges(t *testing.T) {
	g := unsorted(t)
	_, err := sortstates.Sort(g)
	require.NoError(t, err)

	res, err := sortstates.Sort(g, sortstates.WithStable(false))
	require.NoError(t, err)
	assert.False(t, res.AlreadySorted)
	assert.Equal(t, []sid{0, 1, 2, 3}, res.Permutation)
}

func TestSort_Copy(t *testing.T) {
	g := unsorted(t)
	before := g.String()
	res, err := sortstates.Sort(g, sortstates.WithCopy())
	require.NoError(t, err)

	assert.NotSame(t, g, res.Graph)
	assert.Equal(t, before, g.String())
	assert.True(t, res.Graph.IsSorted())
}

func TestSort_Cycle(t *testing.T) {
	g := hypergraph.New[weight.Viterbi]()
	a := g.AddState(symbol.New(symbol.Nonterminal, 0))
	b := g.AddState(symbol.New(symbol.Nonterminal, 1))
	_, _ = g.AddArc(b, []sid{a}, 1)
	_, _ = g.AddArc(a, []sid{b}, 1)
	require.NoError(t, g.SetFinal(b))
	before := g.String()

	_, err := sortstates.Sort(g)
	assert.ErrorIs(t, err, sortstates.ErrCycleDetected)
	assert.ErrorIs(t, err, hypergraph.ErrCycle)
	assert.Equal(t, before, g.String(), "a failed sort leaves the input alone")

	res, err := sortstates.Sort(g, sortstates.WithMaxBackEdges(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.BackEdges)
}

func TestSort_SelfLoop(t *testing.T) {
	g := hypergraph.New[weight.Viterbi]()
	a := g.AddState(symbol.New(symbol.Nonterminal, 0))
	_, _ = g.AddArc(a, []sid{a}, 1)
	require.NoError(t, g.SetFinal(a))

	_, err := sortstates.Sort(g)
	assert.ErrorIs(t, err, sortstates.ErrCycleDetected)
}

func TestSort_Partition(t *testing.T) {
	build := func() *hypergraph.Hypergraph[weight.Viterbi] {
		g := hypergraph.New[weight.Viterbi]()
		g.AddState(symbol.New(symbol.Nonterminal, 0))
		g.AddState(symbol.New(symbol.Terminal, 1))
		g.AddState(symbol.New(symbol.Nonterminal, 2))
		g.AddState(symbol.New(symbol.Terminal, 3))
		return g
	}

	tests := []struct {
		name   string
		policy sortstates.Policy
		want   []sid
	}{
		{"lexical first", sortstates.LexicalFirst, []sid{2, 0, 3, 1}},
		{"lexical last", sortstates.LexicalLast, []sid{0, 2, 1, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build()
			require.False(t, sortstates.IsSorted(g, tc.policy))
			res, err := sortstates.Sort(g, sortstates.WithPolicy(tc.policy))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Permutation)
			assert.True(t, sortstates.IsSorted(g, tc.policy))

			again, err := sortstates.Sort(g, sortstates.WithPolicy(tc.policy))
			require.NoError(t, err)
			assert.True(t, again.AlreadySorted)
		})
	}
}

func TestSort_BadPolicy(t *testing.T) {
	g := unsorted(t)
	_, err := sortstates.Sort(g, sortstates.WithPolicy(sortstates.Policy(42)))
	assert.ErrorIs(t, err, sortstates.ErrBadPolicy)
	assert.Equal(t, "Policy(42)", sortstates.Policy(42).String())
}

func TestSort_NoFinalSortsEverything(t *testing.T) {
	g := unsorted(t)
	require.NoError(t, g.SetFinal(hypergraph.NoState))
	_, err := sortstates.Sort(g)
	require.NoError(t, err)
	assert.True(t, g.IsSorted())
	assertTopological(t, g)
}

func TestOrder(t *testing.T) {
	g := unsorted(t)
	before := g.String()
	order, err := sortstates.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []sid{2, 3, 0}, order)
	assert.Equal(t, before, g.String())

	_, err = sortstates.Sort(g)
	require.NoError(t, err)
	order, err = sortstates.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []sid{0, 1, 2}, order)
}
