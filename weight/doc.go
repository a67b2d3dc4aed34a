// Package weight implements the semiring values that annotate hyperarcs.
//
// Every graph algorithm in this module (shortest distance, best path, inside
// and outside scores, k-best) is written once against the Weight contract and
// reused unmodified for every kind below.
//
// What:
//
//   - Viterbi:     min-plus cost (tropical semiring).
//   - Log:         log-plus cost (negated log probabilities).
//   - Bool:        OR/AND reachability.
//   - Feature:     scalar cost plus a sparse feature-id -> value map, "take-min" plus.
//   - Expectation: log-space probability plus expected feature values
//     (probability-expectation semiring). Divide is unsupported.
//   - Tuple1/2/3:  component-wise products of independent sub-weights.
//   - Token/Ngram: sets of symbol strings with per-string costs. Times is
//     concatenation (not commutative) capped by a maximum length.
//
// Contract (for all kinds):
//
//   - Zero() and One() are pure functions of the type; they never depend on
//     package initialisation order and are valid on the Go zero value.
//   - Plus is associative and commutative, Times is associative, Zero is
//     absorbing for Times and neutral for Plus, One is neutral for Times, and
//     Times distributes over Plus.
//   - Less orders by cost (lower is better) and is used only for comparison.
//   - Value returns the real-valued cost used by shortest-path search.
//
// Errors:
//
//   - ErrUnsupported     operation intentionally not available for a kind.
//   - ErrDivideByZero    division by the semiring zero.
package weight
