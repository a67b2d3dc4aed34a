package kbest_test

import (
	"bytes"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/kbest"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

type (
	sid = hypergraph.StateID
	vit = weight.Viterbi
)

var (
	la = symbol.New(symbol.Terminal, 1)
	lb = symbol.New(symbol.Terminal, 2)
	lc = symbol.New(symbol.Terminal, 3)
	ld = symbol.New(symbol.Terminal, 4)
)

// diamond builds the acceptor 0 -a/1-> 1 -c/1-> 3 and 0 -b/5-> 2 -d/1-> 3.
func diamond(t *testing.T) *hypergraph.Hypergraph[vit] {
	t.Helper()
	g := hypergraph.New[vit]()
	for i := 0; i < 4; i++ {
		g.AddState(symbol.NoSymbol)
	}
	require.NoError(t, g.SetStart(0))
	require.NoError(t, g.SetFinal(3))
	for _, tr := range []struct {
		src, dst sid
		label    symbol.Symbol
		cost     vit
	}{
		{0, 1, la, 1},
		{0, 2, lb, 5},
		{1, 3, lc, 1},
		{2, 3, ld, 1},
	} {
		_, err := g.AddFSMArc(tr.src, tr.dst, tr.label, tr.cost)
		require.NoError(t, err)
	}

	return g
}

func costs(ds []*kbest.Derivation[vit]) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = float64(d.Cost)
	}

	return out
}

func TestKBest_Diamond(t *testing.T) {
	g := diamond(t)
	ds, err := kbest.KBest(g, 3)
	require.NoError(t, err)
	require.Len(t, ds, 2, "the third request finds nothing")

	assert.Equal(t, []float64{2, 6}, costs(ds))
	assert.Equal(t, []hypergraph.ArcID{2, 0}, ds[0].Arcs())
	assert.Equal(t, []hypergraph.ArcID{3, 1}, ds[1].Arcs())
	assert.Equal(t, []symbol.Symbol{la, lc}, kbest.Yield(g, ds[0]))
	assert.Equal(t, []symbol.Symbol{lb, ld}, kbest.Yield(g, ds[1]))
}

func TestKBest_NoFinalOrNoK(t *testing.T) {
	g := hypergraph.New[vit]()
	g.AddState(symbol.NoSymbol)
	ds, err := kbest.KBest(g, 5)
	assert.NoError(t, err)
	assert.Empty(t, ds)

	ds, err = kbest.KBest(diamond(t), 0)
	assert.NoError(t, err)
	assert.Empty(t, ds)
}

func TestForest_ExhaustionIsSticky(t *testing.T) {
	f := kbest.NewForest[vit]()
	leaf := f.AddNode()
	root := f.AddNode()
	require.NoError(t, f.AddEdge(leaf, nil, 1, "leaf"))
	require.NoError(t, f.AddEdge(root, []kbest.NodeID{leaf}, 2, "root"))
	require.NoError(t, f.SetGoal(root))

	d, ok, err := f.Get(root, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vit(3), d.Cost)
	assert.Equal(t, "root", d.Label)
	require.Len(t, d.Children, 1)
	assert.Equal(t, "leaf", d.Children[0].Label)

	for _, rank := range []int{1, 2, 1, 7} {
		_, ok, err = f.Get(root, rank)
		assert.NoError(t, err)
		assert.False(t, ok, "rank %d", rank)
	}
	again, ok, err := f.Get(root, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, d, again)

	_, ok, err = f.Get(root, -1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// hyper builds a small acyclic hypergraph with parallel arcs, a repeated
// tail and a three-tail arc.
func hyper(t *testing.T) *hypergraph.Hypergraph[vit] {
	t.Helper()
	g := hypergraph.New[vit]()
	for i := 0; i < 4; i++ {
		g.AddState(symbol.NoSymbol)
	}
	require.NoError(t, g.SetStart(0))
	require.NoError(t, g.SetFinal(3))
	for _, a := range []struct {
		head  sid
		tails []sid
		w     vit
	}{
		{1, []sid{0}, 1},
		{1, []sid{0}, 2},
		{2, []sid{0}, 3},
		{2, []sid{1}, 0.5},
		{3, []sid{1, 2}, 1},
		{3, []sid{2, 2}, 0},
		{3, []sid{0, 1, 2}, 2},
	} {
		_, err := g.AddArc(a.head, a.tails, a.w)
		require.NoError(t, err)
	}

	return g
}

// enumerate lists the cost of every derivation of s by brute force.
func enumerate(g *hypergraph.Hypergraph[vit], s sid) []float64 {
	if g.IsAxiom(s) {
		return []float64{0}
	}
	var out []float64
	for _, id := range g.InArcs(s) {
		a := g.MustArc(id)
		partial := []float64{float64(a.Weight)}
		for _, tail := range a.Tails {
			var next []float64
			for _, p := range partial {
				for _, c := range enumerate(g, tail) {
					next = append(next, p+c)
				}
			}
			partial = next
		}
		out = append(out, partial...)
	}

	return out
}

func TestKBest_MatchesBruteForce(t *testing.T) {
	g := hyper(t)
	want := enumerate(g, 3)
	sort.Float64s(want)
	require.Len(t, want, 21)

	ds, err := kbest.KBest(g, 100)
	require.NoError(t, err)
	got := costs(ds)
	require.Len(t, got, len(want))
	assert.True(t, sort.Float64sAreSorted(got))
	assert.InDeltaSlice(t, want, got, 1e-12)

	// every derivation is distinct
	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		key := fmtArcs(d.Arcs())
		assert.False(t, seen[key], "duplicate derivation %s", key)
		seen[key] = true
	}
}

// fmtArcs renders a pre-order arc list; it identifies a derivation since
// every arc fixes its tails.
func fmtArcs(ids []hypergraph.ArcID) string {
	var b bytes.Buffer
	for _, id := range ids {
		b.WriteByte(byte('a' + id))
	}

	return b.String()
}

func TestKBest_ThreeTailArcIsBinarized(t *testing.T) {
	g := hypergraph.New[vit]()
	start := g.AddState(symbol.NoSymbol)
	x := g.AddState(symbol.NoSymbol)
	a, b, c := g.AddLexicalState(la), g.AddLexicalState(lb), g.AddLexicalState(lc)
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.SetFinal(x))
	_, err := g.AddArc(x, []sid{a, b, c}, 2)
	require.NoError(t, err)
	_, err = g.AddArc(x, []sid{start}, 5)
	require.NoError(t, err)

	f, err := kbest.FromHypergraph(g)
	require.NoError(t, err)
	assert.Equal(t, g.NumStates()+1, f.NumNodes())
	assert.Equal(t, kbest.NodeID(x), f.Goal())

	ds, err := kbest.KBest(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, costs(ds))
	assert.Equal(t, []hypergraph.ArcID{0}, ds[0].Arcs())
	assert.Equal(t, []symbol.Symbol{la, lb, lc}, kbest.Yield(g, ds[0]))
	assert.Empty(t, kbest.Yield(g, ds[1]))
}

func TestKBest_CycleIsReported(t *testing.T) {
	g := hypergraph.New[vit]()
	g.AddState(symbol.NoSymbol)
	g.AddState(symbol.NoSymbol)
	require.NoError(t, g.SetStart(0))
	require.NoError(t, g.SetFinal(1))
	_, err := g.AddArc(1, []sid{0}, 1)
	require.NoError(t, err)
	_, err = g.AddArc(1, []sid{1}, 1)
	require.NoError(t, err)

	_, err = kbest.KBest(g, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, kbest.ErrDerivationCycle)
	assert.ErrorIs(t, err, hypergraph.ErrCycle)
}

func TestKBest_FilterJudgesGoalOnly(t *testing.T) {
	g := diamond(t)
	var judged int
	cheap := func(d *kbest.Derivation[vit]) bool {
		judged++
		assert.Equal(t, kbest.NodeID(3), d.Node)
		return d.Cost < 5
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ds, err := kbest.KBest(g, 3, kbest.WithFilter(cheap), kbest.WithLogger[vit](logger))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, costs(ds))
	assert.Equal(t, 2, judged)
	assert.Contains(t, buf.String(), "kbest: goal exhausted")
	assert.Contains(t, buf.String(), "found=1")
}

func TestForest_AddEdgeErrors(t *testing.T) {
	f := kbest.NewForest[vit]()
	a := f.AddNode()
	b := f.AddNode()

	err := f.AddEdge(a, []kbest.NodeID{b, b, b}, 0, nil)
	assert.ErrorIs(t, err, kbest.ErrTooManyChildren)
	assert.ErrorIs(t, f.AddEdge(5, nil, 0, nil), kbest.ErrNodeOutOfRange)
	assert.ErrorIs(t, f.AddEdge(a, []kbest.NodeID{9}, 0, nil), kbest.ErrNodeOutOfRange)
	assert.ErrorIs(t, f.SetGoal(kbest.NoNode), kbest.ErrNodeOutOfRange)
	_, _, err = f.Get(2, 0)
	assert.ErrorIs(t, err, kbest.ErrNodeOutOfRange)
}

func TestForest_ZeroCostEdgesAreDropped(t *testing.T) {
	f := kbest.NewForest[vit]()
	n := f.AddNode()
	require.NoError(t, f.AddEdge(n, nil, weight.Zero[vit](), "never"))
	require.NoError(t, f.AddEdge(n, nil, 4, "leaf"))

	d, ok, err := f.Get(n, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "leaf", d.Label)
	_, ok, err = f.Get(n, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}
