package weight

import (
	"math"
	"strconv"
)

// logEqualTolerance bounds rounding drift when comparing log-plus sums.
const logEqualTolerance = 1e-9

// Viterbi is a min-plus cost: Plus keeps the cheaper alternative, Times adds.
type Viterbi float64

// Zero returns +Inf (no path).
func (Viterbi) Zero() Viterbi { return Viterbi(math.Inf(1)) }

// One returns cost 0.
func (Viterbi) One() Viterbi { return 0 }

// IsZero reports whether w is +Inf.
func (w Viterbi) IsZero() bool { return math.IsInf(float64(w), 1) }

// IsOne reports whether w is 0.
func (w Viterbi) IsOne() bool { return w == 0 }

// Plus returns the minimum.
func (w Viterbi) Plus(o Viterbi) Viterbi {
	if o < w {
		return o
	}

	return w
}

// Times returns the sum; Zero stays absorbing.
func (w Viterbi) Times(o Viterbi) Viterbi {
	if w.IsZero() || o.IsZero() {
		return w.Zero()
	}

	return w + o
}

// Less orders by cost.
func (w Viterbi) Less(o Viterbi) bool { return w < o }

// Value returns the cost.
func (w Viterbi) Value() float64 { return float64(w) }

// Equal compares exactly.
func (w Viterbi) Equal(o Viterbi) bool { return w == o }

// Divide subtracts o's cost.
func (w Viterbi) Divide(o Viterbi) (Viterbi, error) {
	if o.IsZero() {
		return w.Zero(), ErrDivideByZero
	}
	if w.IsZero() {
		return w, nil
	}

	return w - o, nil
}

// PlusBy folds o into w with Plus.
func (w *Viterbi) PlusBy(o Viterbi) { *w = w.Plus(o) }

// TimesBy folds o into w with Times.
func (w *Viterbi) TimesBy(o Viterbi) { *w = w.Times(o) }

// String renders the cost.
func (w Viterbi) String() string { return formatCost(float64(w)) }

// Log is a negated-log-probability cost: Plus adds probabilities, Times adds costs.
type Log float64

// Zero returns +Inf (probability 0).
func (Log) Zero() Log { return Log(math.Inf(1)) }

// One returns cost 0 (probability 1).
func (Log) One() Log { return 0 }

// IsZero reports whether w is +Inf.
func (w Log) IsZero() bool { return math.IsInf(float64(w), 1) }

// IsOne reports whether w is 0.
func (w Log) IsOne() bool { return w == 0 }

// Plus returns -log(exp(-w) + exp(-o)).
func (w Log) Plus(o Log) Log { return Log(logPlus(float64(w), float64(o))) }

// Times adds costs; Zero stays absorbing.
func (w Log) Times(o Log) Log {
	if w.IsZero() || o.IsZero() {
		return w.Zero()
	}

	return w + o
}

// Less orders by cost.
func (w Log) Less(o Log) bool { return w < o }

// Value returns the cost.
func (w Log) Value() float64 { return float64(w) }

// Equal compares within a small tolerance so re-associated sums match.
func (w Log) Equal(o Log) bool {
	if w.IsZero() || o.IsZero() {
		return w.IsZero() == o.IsZero()
	}

	return math.Abs(float64(w-o)) <= logEqualTolerance*math.Max(1, math.Abs(float64(w)))
}

// Divide subtracts o's cost.
func (w Log) Divide(o Log) (Log, error) {
	if o.IsZero() {
		return w.Zero(), ErrDivideByZero
	}
	if w.IsZero() {
		return w, nil
	}

	return w - o, nil
}

// PlusBy folds o into w with Plus.
func (w *Log) PlusBy(o Log) { *w = w.Plus(o) }

// TimesBy folds o into w with Times.
func (w *Log) TimesBy(o Log) { *w = w.Times(o) }

// Probability returns exp(-w).
func (w Log) Probability() float64 { return math.Exp(-float64(w)) }

// String renders the cost.
func (w Log) String() string { return formatCost(float64(w)) }

// Bool is the reachability semiring: Plus is OR, Times is AND.
type Bool bool

// Zero returns false.
func (Bool) Zero() Bool { return false }

// One returns true.
func (Bool) One() Bool { return true }

// IsZero reports !w.
func (w Bool) IsZero() bool { return !bool(w) }

// IsOne reports w.
func (w Bool) IsOne() bool { return bool(w) }

// Plus is logical OR.
func (w Bool) Plus(o Bool) Bool { return w || o }

// Times is logical AND.
func (w Bool) Times(o Bool) Bool { return w && o }

// Less reports true < false (reachable is better).
func (w Bool) Less(o Bool) bool { return bool(w) && !bool(o) }

// Value is 0 for true and +Inf for false, matching the cost reading.
func (w Bool) Value() float64 {
	if w {
		return 0
	}

	return math.Inf(1)
}

// Equal compares truth values.
func (w Bool) Equal(o Bool) bool { return w == o }

// PlusBy folds o into w with OR.
func (w *Bool) PlusBy(o Bool) { *w = *w || o }

// TimesBy folds o into w with AND.
func (w *Bool) TimesBy(o Bool) { *w = *w && o }

// String renders "true"/"false".
func (w Bool) String() string { return strconv.FormatBool(bool(w)) }

// trimFloat formats f with the shortest round-trip representation.
func trimFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
