// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_chart.go - Chart(n): a binary parse chart over n words.
//
// Shape:
//   - One state per span [i,j), 0 <= i < j <= n, recorded by increasing
//     width; then one lexical state per word.
//   - span[i,i+1] <- word i, and span[i,j] <- (span[i,k], span[k,j]) for
//     every split i < k < j.
//   - The final state is span[0,n]; there is no start state.
//
// Contract:
//   - n >= 1 (else ErrTooFewStates).
//   - Derivations of the final state: Catalan(n-1).
//   - The chart is sorted and acyclic.

package builder

import "github.com/katalvlaran/hyperpath/hypergraph"

const (
	methodChart   = "Chart"
	minChartWords = 1
)

// Chart returns a Constructor for an all-binary-bracketings chart.
func Chart(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < minChartWords {
			return builderErrorf(methodChart, ErrTooFewStates, "n=%d < min=%d", n, minChartWords)
		}

		// 1. Span states by width, then words
		span := make([][]hypergraph.StateID, n+1)
		for i := range span {
			span[i] = make([]hypergraph.StateID, n+1)
		}
		for w := 1; w <= n; w++ {
			for i := 0; i+w <= n; i++ {
				span[i][i+w] = p.AddState()
			}
		}
		words := make([]hypergraph.StateID, n)
		for i := range words {
			words[i] = p.AddLexicalState(cfg.word(i))
		}

		// 2. Arcs, narrow spans first
		index := 0
		for i := 0; i < n; i++ {
			p.AddArc(span[i][i+1], []hypergraph.StateID{words[i]}, cfg.cost(index))
			index++
		}
		for w := 2; w <= n; w++ {
			for i := 0; i+w <= n; i++ {
				j := i + w
				for k := i + 1; k < j; k++ {
					p.AddArc(span[i][j], []hypergraph.StateID{span[i][k], span[k][j]}, cfg.cost(index))
					index++
				}
			}
		}
		p.SetFinal(span[0][n])

		return nil
	}
}
