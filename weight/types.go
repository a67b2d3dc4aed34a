package weight

import (
	"errors"
	"math"
)

// Sentinel errors for weight operations.
var (
	// ErrUnsupported signals a semiring operation that a weight kind does not
	// provide (for example Divide on Expectation weights).
	ErrUnsupported = errors.New("weight: operation not supported")

	// ErrDivideByZero signals division by the semiring zero.
	ErrDivideByZero = errors.New("weight: division by zero")
)

// Weight is the semiring contract. W is the concrete weight type itself, so
// algorithms are written as func F[W Weight[W]](...).
type Weight[W any] interface {
	// Zero returns the additive identity (absorbing for Times).
	Zero() W
	// One returns the multiplicative identity.
	One() W
	// IsZero reports whether the receiver equals Zero().
	IsZero() bool
	// IsOne reports whether the receiver equals One().
	IsOne() bool
	// Plus combines alternatives.
	Plus(W) W
	// Times combines sequential parts; it need not be commutative.
	Times(W) W
	// Less reports whether the receiver is strictly better (cheaper) than the argument.
	Less(W) bool
	// Value returns the scalar cost of the weight.
	Value() float64
	// Equal reports semantic equality.
	Equal(W) bool
	// String renders the weight for diagnostics.
	String() string
}

// Divider is implemented by kinds that support left division.
type Divider[W any] interface {
	Divide(W) (W, error)
}

// Accumulator is implemented by pointer receivers that can fold a weight in
// place. PlusBy/TimesBy never mutate storage another value can see, so a
// plain copy of the receiver keeps its value.
type Accumulator[W any] interface {
	PlusBy(W)
	TimesBy(W)
}

// Zero returns the additive identity of W.
func Zero[W Weight[W]]() W {
	var w W
	return w.Zero()
}

// One returns the multiplicative identity of W.
func One[W Weight[W]]() W {
	var w W
	return w.One()
}

// Sum folds ws with Plus, returning Zero for an empty list.
func Sum[W Weight[W]](ws ...W) W {
	acc := Zero[W]()
	for _, w := range ws {
		acc = acc.Plus(w)
	}

	return acc
}

// Product folds ws with Times from left to right, returning One for an empty list.
func Product[W Weight[W]](ws ...W) W {
	acc := One[W]()
	for _, w := range ws {
		acc = acc.Times(w)
	}

	return acc
}

// Min returns the better of a and b; ties favor a.
func Min[W Weight[W]](a, b W) W {
	if b.Less(a) {
		return b
	}

	return a
}

// ApproxEqual compares scalar values within delta. Infinite values are equal
// only to themselves.
func ApproxEqual[W Weight[W]](a, b W, delta float64) bool {
	x, y := a.Value(), b.Value()
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= delta
}

// logPlus adds two costs in negated-log space: -log(exp(-a) + exp(-b)).
func logPlus(a, b float64) float64 {
	if math.IsInf(a, 1) {
		return b
	}
	if math.IsInf(b, 1) {
		return a
	}
	if a > b {
		a, b = b, a
	}

	return a - math.Log1p(math.Exp(a-b))
}

// formatCost renders a scalar cost compactly, using "inf" for +Inf.
func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}
	if math.IsInf(c, -1) {
		return "-inf"
	}

	return trimFloat(c)
}
