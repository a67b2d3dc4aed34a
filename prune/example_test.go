package prune_test

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/prune"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// ExamplePrune keeps the alternatives within a beam of 2 of the best route.
func ExamplePrune() {
	g := hypergraph.New[weight.Viterbi]()
	start := g.AddState(symbol.NoSymbol)
	final := g.AddState(symbol.NoSymbol)
	_ = g.SetStart(start)
	_ = g.SetFinal(final)
	for _, c := range []weight.Viterbi{1, 2, 4} {
		_, _ = g.AddArc(final, []hypergraph.StateID{start}, c)
	}

	st, err := prune.Prune(g, prune.WithBeam(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(st.ArcsBefore, "->", st.ArcsAfter)
	// Output:
	// 3 -> 2
}
