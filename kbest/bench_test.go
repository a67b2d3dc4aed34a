package kbest_test

import (
	"testing"

	"github.com/katalvlaran/hyperpath/builder"
	"github.com/katalvlaran/hyperpath/kbest"
	"github.com/katalvlaran/hyperpath/weight"
)

func BenchmarkKBest_Chart(b *testing.B) {
	lift := func(c float64) weight.Viterbi { return weight.Viterbi(c) }
	g, err := builder.Build(lift, []builder.Option{builder.WithSeed(1), builder.WithCostFn(builder.UniformCost(0, 5))},
		builder.Chart(12))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kbest.KBest(g, 100)
	}
}
