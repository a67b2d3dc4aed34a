// SPDX-License-Identifier: MIT
// Package: distance
//
// Purpose:
//   - Dense N×N weight matrix indexed by state id, row-major.
//
// Contract:
//   - NewMatrix fills every cell with Zero; algorithms reseed before use.

package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrMatrixShape indicates a matrix whose order differs from the state count.
	ErrMatrixShape = fmt.Errorf("distance: matrix shape: %w", hypergraph.ErrBounds)

	// ErrNotGraph indicates input with true hyperarcs.
	ErrNotGraph = fmt.Errorf("distance: %w", hypergraph.ErrNotGraph)

	// ErrCycleDetected indicates a backward or self arc in AllPairsDAG input.
	ErrCycleDetected = fmt.Errorf("distance: %w", hypergraph.ErrCycle)
)

// Matrix is a dense square matrix of weights.
type Matrix[W weight.Weight[W]] struct {
	n    int
	data []W
}

// NewMatrix returns an n×n matrix filled with Zero. Negative n is treated as 0.
func NewMatrix[W weight.Weight[W]](n int) *Matrix[W] {
	if n < 0 {
		n = 0
	}
	m := &Matrix[W]{n: n, data: make([]W, n*n)}
	m.fill()

	return m
}

// N returns the matrix order.
func (m *Matrix[W]) N() int { return m.n }

// At returns dist[i][j].
func (m *Matrix[W]) At(i, j hypergraph.StateID) W { return m.data[int(i)*m.n+int(j)] }

// Set stores dist[i][j].
func (m *Matrix[W]) Set(i, j hypergraph.StateID, w W) { m.data[int(i)*m.n+int(j)] = w }

// Row returns row i. The slice aliases the matrix.
func (m *Matrix[W]) Row(i hypergraph.StateID) []W {
	base := int(i) * m.n
	return m.data[base : base+m.n : base+m.n]
}

// String renders one row per line, cells separated by spaces.
func (m *Matrix[W]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// fill sets every cell to Zero.
func (m *Matrix[W]) fill() {
	zero := weight.Zero[W]()
	for i := range m.data {
		m.data[i] = zero
	}
}

// seed resets m to the identity convention: One on the diagonal, Zero elsewhere.
func (m *Matrix[W]) seed() {
	m.fill()
	one := weight.One[W]()
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = one
	}
}

// checkShape validates m against hg.
func checkShape[W weight.Weight[W]](hg *hypergraph.Hypergraph[W], m *Matrix[W]) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix for %d states", ErrMatrixShape, hg.NumStates())
	}
	if m.n != hg.NumStates() {
		return fmt.Errorf("%w: %dx%d for %d states", ErrMatrixShape, m.n, m.n, hg.NumStates())
	}

	return nil
}
