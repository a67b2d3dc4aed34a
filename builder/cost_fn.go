// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// cost_fn.go - per-arc cost generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultCost is the arc cost used when no CostFn is configured.
const DefaultCost float64 = 1

// CostFn produces the cost of the index-th arc a constructor emits. rng is
// nil unless the builder was seeded.
type CostFn func(rng *rand.Rand, index int) float64

// ConstantCost always yields value. Panics if value is negative.
func ConstantCost(value float64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCost: value must be >= 0, got %g", value))
	}

	return func(*rand.Rand, int) float64 { return value }
}

// UniformCost samples uniformly from [min, max). Without an RNG it yields
// min, keeping unseeded builds deterministic. Negative bounds give signed
// costs, as log-linear models produce. Panics unless min <= max.
func UniformCost(min, max float64) CostFn {
	if max < min {
		panic(fmt.Sprintf("UniformCost: require min <= max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand, _ int) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// IndexCost yields base + step*index, which makes every arc of a fixture
// distinguishable by cost.
func IndexCost(base, step float64) CostFn {
	return func(_ *rand.Rand, index int) float64 { return base + step*float64(index) }
}
