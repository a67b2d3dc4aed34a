package train_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/train"
	"github.com/katalvlaran/hyperpath/weight"
)

// ExampleGradient scores a reference that takes the cheaper of two arcs.
func ExampleGradient() {
	build := func(clamped bool) *hypergraph.Hypergraph[weight.Expectation] {
		g := hypergraph.New[weight.Expectation]()
		g.AddState(symbol.NoSymbol)
		g.AddState(symbol.NoSymbol)
		_ = g.SetStart(0)
		_ = g.SetFinal(1)
		_, _ = g.AddArc(1, []hypergraph.StateID{0}, weight.NewExpectation(1, map[weight.FeatureID]float64{1: 1}))
		if !clamped {
			_, _ = g.AddArc(1, []hypergraph.StateID{0}, weight.NewExpectation(2, map[weight.FeatureID]float64{2: 1}))
		}
		return g
	}

	res, err := train.Gradient(context.Background(), []train.Pair{
		{Clamped: build(true), Unclamped: build(false)},
	}, train.WithWorkers(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("loss=%.4f grad[1]=%.4f grad[2]=%.4f\n", res.Loss, res.Grad[1], res.Grad[2])
	// Output:
	// loss=0.3133 grad[1]=0.2689 grad[2]=-0.2689
}
