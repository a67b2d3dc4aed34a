// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_lattice.go - Lattice(length, width): a word lattice acceptor.
//
// Shape:
//   - Position 0 holds the start state, position length the final state,
//     and every position in between holds width states.
//   - Every state at position t links to every state at position t+1 with
//     an FSM arc labelled by the destination's word (t*width + column).
//
// Contract:
//   - length >= 1 and width >= 1 (else ErrTooFewStates).
//   - Paths from start to final: width^(length-1).
//   - States are recorded position by position, so the lattice is sorted
//     once lexical states come last; lexical states are recorded lazily.

package builder

import "github.com/katalvlaran/hyperpath/hypergraph"

const methodLattice = "Lattice"

// Lattice returns a Constructor for a fully connected word lattice.
func Lattice(length, width int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if length < 1 || width < 1 {
			return builderErrorf(methodLattice, ErrTooFewStates, "length=%d width=%d, both must be >= 1", length, width)
		}

		// 1. States, position by position
		layers := make([][]hypergraph.StateID, length+1)
		for t := range layers {
			size := width
			if t == 0 || t == length {
				size = 1
			}
			layers[t] = make([]hypergraph.StateID, size)
			for j := range layers[t] {
				layers[t][j] = p.AddState()
			}
		}

		// 2. Arcs between consecutive positions
		index := 0
		for t := 0; t < length; t++ {
			for _, src := range layers[t] {
				for j, dst := range layers[t+1] {
					p.AddFSMArc(src, dst, cfg.word(t*width+j), cfg.cost(index))
					index++
				}
			}
		}
		p.SetStart(layers[0][0])
		p.SetFinal(layers[length][0])

		return nil
	}
}
