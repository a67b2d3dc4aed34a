// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_random_dag.go - RandomDAG(n, p, arity): a random acyclic hypergraph.
//
// Canonical model:
//   - States 0..n-1; start 0, final n-1.
//   - A backbone arc j <- j-1 for every j keeps the final state derivable.
//   - For every pair i < j an extra arc j <- (i, extra...) is added with
//     probability p, where extra holds 0..arity-1 further tails drawn
//     uniformly from [0, j).
//
// Contract:
//   - n >= 2 and arity >= 1 (else ErrTooFewStates).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - An RNG is required unless p is 0 or 1 and arity is 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run for j ascending, then i ascending; costs are drawn after
//     the tails of each arc.

package builder

import "github.com/katalvlaran/hyperpath/hypergraph"

const methodRandomDAG = "RandomDAG"

// RandomDAG returns a Constructor that samples an acyclic hypergraph.
func RandomDAG(n int, prob float64, arity int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		// 1. Validate
		if n < 2 || arity < 1 {
			return builderErrorf(methodRandomDAG, ErrTooFewStates, "n=%d arity=%d", n, arity)
		}
		if prob < 0 || prob > 1 {
			return builderErrorf(methodRandomDAG, ErrInvalidProbability, "p=%.6f not in [0,1]", prob)
		}
		stochastic := (prob > 0 && prob < 1) || arity > 1
		if cfg.rng == nil && stochastic {
			return builderErrorf(methodRandomDAG, ErrNeedRandSource, "rng is required")
		}

		// 2. States and backbone
		ids := make([]hypergraph.StateID, n)
		for i := range ids {
			ids[i] = p.AddState()
		}
		index := 0
		for j := 1; j < n; j++ {
			p.AddArc(ids[j], []hypergraph.StateID{ids[j-1]}, cfg.cost(index))
			index++
		}

		// 3. Extra arcs
		rng := cfg.rng
		for j := 1; j < n; j++ {
			for i := 0; i < j; i++ {
				if prob == 0 || (prob < 1 && rng.Float64() >= prob) {
					continue
				}
				tails := []hypergraph.StateID{ids[i]}
				if arity > 1 {
					for extra := rng.Intn(arity); extra > 0; extra-- {
						tails = append(tails, ids[rng.Intn(j)])
					}
				}
				p.AddArc(ids[j], tails, cfg.cost(index))
				index++
			}
		}
		p.SetStart(ids[0])
		p.SetFinal(ids[n-1])

		return nil
	}
}
