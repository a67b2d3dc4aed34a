// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng         = nil (pure unless seeded)
//   - costFn      = ConstantCost(DefaultCost)
//   - labelOffset = 1 (terminal labels start at T:1)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// builderConfig aggregates every knob a constructor reads. It is passed by
// value, so constructors cannot leak changes into each other.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Cost generator for arcs, called once per arc in emission order.
	costFn CostFn
	// First terminal index handed out by Plan.Word.
	labelOffset uint32
	// Options forwarded to hypergraph.New by Build.
	hgOpts []hypergraph.Option
}

const defaultLabelOffset = 1

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		costFn:      ConstantCost(DefaultCost),
		labelOffset: defaultLabelOffset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws the next arc cost. index is the arc's position within the
// emitting constructor.
func (c builderConfig) cost(index int) float64 {
	return c.costFn(c.rng, index)
}
