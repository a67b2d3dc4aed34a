// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_chain.go - Chain(n): states 0..n-1 with arcs i <- i-1.
//
// Contract:
//   - n >= 2 (else ErrTooFewStates).
//   - Arc i-1 is i <- i-1 with cost cfg.cost(i-1); emitted in increasing i.
//   - Start is the first state, final the last.

package builder

import "github.com/katalvlaran/hyperpath/hypergraph"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor for an n-state path.
func Chain(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < minChainNodes {
			return builderErrorf(methodChain, ErrTooFewStates, "n=%d < min=%d", n, minChainNodes)
		}
		first := p.AddState()
		prev := first
		for i := 1; i < n; i++ {
			s := p.AddState()
			p.AddArc(s, []hypergraph.StateID{prev}, cfg.cost(i-1))
			prev = s
		}
		p.SetStart(first)
		p.SetFinal(prev)

		return nil
	}
}
