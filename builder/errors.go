// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach method context with %w (see builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewStates indicates a size parameter below the constructor's minimum.
var ErrTooFewStates = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a plan the hypergraph
// rejected while materialising.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped sentinel with the constructor name:
// "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
