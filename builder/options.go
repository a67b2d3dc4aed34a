// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors panic on nil arguments; constructors never panic.
//   - Seeding is explicit through WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hyperpath/hypergraph"
)

// Option customises the resolved builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, for reproducible random fixtures.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-arc cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}

// WithLabelOffset sets the first terminal index used for words.
func WithLabelOffset(first uint32) Option {
	return func(c *builderConfig) { c.labelOffset = first }
}

// WithHypergraphOptions forwards opts to hypergraph.New, e.g. to request
// native in-arc storage.
func WithHypergraphOptions(opts ...hypergraph.Option) Option {
	return func(c *builderConfig) { c.hgOpts = append(c.hgOpts, opts...) }
}
