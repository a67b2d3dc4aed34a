package prune_test

import (
	"testing"

	"github.com/katalvlaran/hyperpath/builder"
	"github.com/katalvlaran/hyperpath/prune"
	"github.com/katalvlaran/hyperpath/weight"
)

func BenchmarkPrune_Beam(b *testing.B) {
	lift := func(c float64) weight.Viterbi { return weight.Viterbi(c) }
	opts := []builder.Option{builder.WithSeed(3), builder.WithCostFn(builder.UniformCost(0, 4))}
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := builder.Build(lift, opts, builder.Chart(10))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if _, err := prune.Prune(g, prune.WithBeam(2)); err != nil {
			b.Fatal(err)
		}
	}
}
