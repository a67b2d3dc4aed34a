package bestpath_test

import (
	"testing"

	"github.com/katalvlaran/hyperpath/bestpath"
	"github.com/katalvlaran/hyperpath/builder"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

func randomDAG[W weight.Weight[W]](b *testing.B, lift func(float64) W) *hypergraph.Hypergraph[W] {
	b.Helper()
	g, err := builder.Build(lift, []builder.Option{builder.WithSeed(42), builder.WithCostFn(builder.UniformCost(0.5, 4))},
		builder.RandomDAG(400, 0.02, 3))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkBest(b *testing.B) {
	g := randomDAG(b, viterbi)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bestpath.Best(g)
	}
}

func BenchmarkInsideSum(b *testing.B) {
	g := randomDAG(b, logw)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestpath.InsideSum(g)
	}
}
