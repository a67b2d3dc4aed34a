package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/distance"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

type sid = hypergraph.StateID

const (
	A sid = iota
	B
	C
)

func states[W weight.Weight[W]](n int) *hypergraph.Hypergraph[W] {
	g := hypergraph.New[W]()
	for i := 0; i < n; i++ {
		g.AddState(symbol.New(symbol.Nonterminal, uint32(i)))
	}

	return g
}

// chain is A -1-> B -2-> C.
func chain(t *testing.T) *hypergraph.Hypergraph[weight.Viterbi] {
	t.Helper()
	g := states[weight.Viterbi](3)
	_, err := g.AddArc(B, []sid{A}, 1)
	require.NoError(t, err)
	_, err = g.AddArc(C, []sid{B}, 2)
	require.NoError(t, err)

	return g
}

func TestChain_BothVariants(t *testing.T) {
	run := map[string]func(*hypergraph.Hypergraph[weight.Viterbi], *distance.Matrix[weight.Viterbi]) error{
		"cubic": distance.AllPairs[weight.Viterbi],
		"dag": func(g *hypergraph.Hypergraph[weight.Viterbi], m *distance.Matrix[weight.Viterbi]) error {
			return distance.AllPairsDAG(g, m, nil)
		},
	}
	for name, fn := range run {
		t.Run(name, func(t *testing.T) {
			g := chain(t)
			dist := distance.NewMatrix[weight.Viterbi](3)
			require.NoError(t, fn(g, dist))

			assert.Equal(t, weight.Viterbi(3), dist.At(A, C))
			assert.Equal(t, weight.Viterbi(1), dist.At(A, B))
			assert.True(t, dist.At(A, A).IsOne())
			assert.True(t, dist.At(B, A).IsZero())
			assert.True(t, math.IsInf(dist.At(C, A).Value(), 1))
			assert.Equal(t, "0 1 3\ninf 0 2\ninf inf 0\n", dist.String())
		})
	}
}

func TestAllPairs_KeepsCheaperParallelArc(t *testing.T) {
	g := chain(t)
	_, _ = g.AddArc(C, []sid{A}, 10)
	_, _ = g.AddArc(B, []sid{A}, 0.5)
	dist := distance.NewMatrix[weight.Viterbi](3)
	require.NoError(t, distance.AllPairs(g, dist))

	assert.Equal(t, weight.Viterbi(0.5), dist.At(A, B))
	assert.Equal(t, weight.Viterbi(2.5), dist.At(A, C))
}

func TestAllPairs_CyclicViterbi(t *testing.T) {
	g := chain(t)
	_, _ = g.AddArc(A, []sid{C}, 4)
	dist := distance.NewMatrix[weight.Viterbi](3)
	require.NoError(t, distance.AllPairs(g, dist))

	assert.Equal(t, weight.Viterbi(4), dist.At(C, A))
	assert.Equal(t, weight.Viterbi(5), dist.At(C, B))
	assert.Equal(t, weight.Viterbi(6), dist.At(B, A))
	assert.True(t, dist.At(B, B).IsOne())
}

// TestAllPairs_LogCountsEachPathOnce sums two paths A->C: direct (3) and via B (1+2).
func TestAllPairs_LogCountsEachPathOnce(t *testing.T) {
	g := states[weight.Log](3)
	_, _ = g.AddArc(B, []sid{A}, 1)
	_, _ = g.AddArc(C, []sid{B}, 2)
	_, _ = g.AddArc(C, []sid{A}, 3)

	want := weight.Log(3 - math.Ln2)
	for name, fn := range map[string]func(*distance.Matrix[weight.Log]) error{
		"cubic": func(m *distance.Matrix[weight.Log]) error { return distance.AllPairs(g, m) },
		"dag":   func(m *distance.Matrix[weight.Log]) error { return distance.AllPairsDAG(g, m, nil) },
	} {
		dist := distance.NewMatrix[weight.Log](3)
		require.NoError(t, fn(dist), name)
		assert.True(t, want.Equal(dist.At(A, C)), "%s: got %v", name, dist.At(A, C))
		assert.True(t, dist.At(A, B).Equal(1), name)
		assert.True(t, dist.At(A, A).IsOne(), name)
	}
}

func TestAllPairs_Bool(t *testing.T) {
	g := states[weight.Bool](3)
	_, _ = g.AddArc(B, []sid{A}, true)
	_, _ = g.AddArc(C, []sid{B}, true)
	dist := distance.NewMatrix[weight.Bool](3)
	require.NoError(t, distance.AllPairs(g, dist))

	assert.Equal(t, weight.Bool(true), dist.At(A, C))
	assert.Equal(t, weight.Bool(false), dist.At(C, A))
}

func TestAllPairs_FSMLabelsAreIgnored(t *testing.T) {
	g := states[weight.Viterbi](2)
	_, err := g.AddFSMArc(0, 1, symbol.New(symbol.Terminal, 5), 1.5)
	require.NoError(t, err)
	require.True(t, g.IsFSM())

	dist := distance.NewMatrix[weight.Viterbi](g.NumStates())
	require.NoError(t, distance.AllPairs(g, dist))
	assert.Equal(t, weight.Viterbi(1.5), dist.At(0, 1))
	assert.True(t, dist.At(0, 2).IsZero(), "the label leaf is not a destination")
}

func TestErrors(t *testing.T) {
	t.Run("shape", func(t *testing.T) {
		g := chain(t)
		err := distance.AllPairs(g, distance.NewMatrix[weight.Viterbi](2))
		assert.ErrorIs(t, err, distance.ErrMatrixShape)
		assert.ErrorIs(t, err, hypergraph.ErrBounds)
		assert.ErrorIs(t, distance.AllPairsDAG(g, nil, nil), distance.ErrMatrixShape)
	})

	t.Run("not a graph", func(t *testing.T) {
		g := states[weight.Viterbi](3)
		_, _ = g.AddArc(C, []sid{A, B}, 1)
		dist := distance.NewMatrix[weight.Viterbi](3)
		assert.ErrorIs(t, distance.AllPairs(g, dist), distance.ErrNotGraph)
		assert.ErrorIs(t, distance.AllPairsDAG(g, dist, nil), hypergraph.ErrNotGraph)
	})
}

func TestAllPairsDAG_SelfLoop(t *testing.T) {
	g := states[weight.Viterbi](2)
	_, _ = g.AddArc(B, []sid{A}, 1)
	_, _ = g.AddArc(B, []sid{B}, 1)
	dist := distance.NewMatrix[weight.Viterbi](2)
	before := dist.String()

	err := distance.AllPairsDAG(g, dist, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, distance.ErrCycleDetected)
	assert.ErrorIs(t, err, hypergraph.ErrCycle)
	assert.Contains(t, err.Error(), "arc 1")
	assert.Equal(t, before, dist.String())
}

func TestAllPairsDAG_BackwardArc(t *testing.T) {
	g := chain(t)
	_, _ = g.AddArc(A, []sid{C}, 1)
	err := distance.AllPairsDAG(g, distance.NewMatrix[weight.Viterbi](3), nil)
	assert.ErrorIs(t, err, distance.ErrCycleDetected)
}

func TestAllPairsDAG_Keep(t *testing.T) {
	tests := []struct {
		name   string
		v      distance.Verdict
		wantAB weight.Viterbi
		wantAC weight.Viterbi
	}{
		{"keep", distance.Keep, 1, 3},
		{"stop", distance.Stop, 1, weight.Zero[weight.Viterbi]()},
		{"stop zero", distance.StopZero, weight.Zero[weight.Viterbi](), weight.Zero[weight.Viterbi]()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := chain(t)
			dist := distance.NewMatrix[weight.Viterbi](3)
			calls := 0
			keep := func(src, via sid, w weight.Viterbi) distance.Verdict {
				calls++
				if src == A && via == B {
					return tc.v
				}
				return distance.Keep
			}
			require.NoError(t, distance.AllPairsDAG(g, dist, keep))
			assert.Equal(t, tc.wantAB, dist.At(A, B))
			assert.Equal(t, tc.wantAC, dist.At(A, C))
			assert.Equal(t, weight.Viterbi(2), dist.At(B, C))
			assert.Positive(t, calls)
		})
	}
}

func TestVariantsAgreeOnLayeredDAG(t *testing.T) {
	const n = 12
	g := states[weight.Viterbi](n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n && j <= i+3; j++ {
			_, err := g.AddArc(sid(j), []sid{sid(i)}, weight.Viterbi((i*7+j*3)%5+1))
			require.NoError(t, err)
		}
	}
	cubic := distance.NewMatrix[weight.Viterbi](n)
	dag := distance.NewMatrix[weight.Viterbi](n)
	require.NoError(t, distance.AllPairs(g, cubic))
	require.NoError(t, distance.AllPairsDAG(g, dag, nil))
	assert.Equal(t, cubic.String(), dag.String())
}
