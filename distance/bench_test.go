package distance_test

import (
	"testing"

	"github.com/katalvlaran/hyperpath/distance"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

func layered(n int) *hypergraph.Hypergraph[weight.Viterbi] {
	g := states[weight.Viterbi](n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n && j <= i+4; j++ {
			_, _ = g.AddArc(sid(j), []sid{sid(i)}, weight.Viterbi(j-i))
		}
	}

	return g
}

func BenchmarkAllPairs(b *testing.B) {
	g := layered(128)
	dist := distance.NewMatrix[weight.Viterbi](g.NumStates())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = distance.AllPairs(g, dist)
	}
}

func BenchmarkAllPairsDAG(b *testing.B) {
	g := layered(128)
	dist := distance.NewMatrix[weight.Viterbi](g.NumStates())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = distance.AllPairsDAG(g, dist, nil)
	}
}
