package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperpath/weight"
)

func TestExpectation_DivideUnsupported(t *testing.T) {
	_, err := weight.NewExpectation(1, nil).Divide(weight.NewExpectation(1, nil))
	assert.ErrorIs(t, err, weight.ErrUnsupported)
}

// TestExpectation_TwoPaths computes expectations over two alternative
// single-arc paths with probabilities 0.25 and 0.75.
func TestExpectation_TwoPaths(t *testing.T) {
	p1 := weight.NewExpectation(-math.Log(0.25), map[weight.FeatureID]float64{1: 1})
	p2 := weight.NewExpectation(-math.Log(0.75), map[weight.FeatureID]float64{2: 1})

	z := p1.Plus(p2)
	assert.InDelta(t, 1.0, z.Probability(), 1e-12)

	exp := z.Expectations()
	assert.InDelta(t, 0.25, exp[1], 1e-12)
	assert.InDelta(t, 0.75, exp[2], 1e-12)
}

// TestExpectation_ChainProductRule checks <p1,r1>*<p2,r2> = <p1p2, p1r2+p2r1>.
func TestExpectation_ChainProductRule(t *testing.T) {
	a := weight.NewExpectation(-math.Log(0.5), map[weight.FeatureID]float64{1: 1})
	b := weight.NewExpectation(-math.Log(0.5), map[weight.FeatureID]float64{1: 2})

	ab := a.Times(b)
	assert.InDelta(t, 0.25, ab.Probability(), 1e-12)
	// r = 0.5*(0.5*2) + 0.5*(0.5*1) = 0.75; E = 0.75/0.25 = 3
	assert.InDelta(t, 0.75, ab.Raw(1), 1e-12)
	assert.InDelta(t, 3.0, ab.Expectations()[1], 1e-12)
}

func TestExpectation_AccumulatorMatchesPureOps(t *testing.T) {
	a := weight.NewExpectation(0.3, map[weight.FeatureID]float64{1: 1})
	b := weight.NewExpectation(0.7, map[weight.FeatureID]float64{2: 2})
	c := weight.NewExpectation(1.1, map[weight.FeatureID]float64{1: 3})

	acc := weight.Zero[weight.Expectation]()
	acc.PlusBy(a)
	acc.PlusBy(b)
	acc.TimesBy(c)

	want := a.Plus(b).Times(c)
	assert.True(t, acc.Equal(want), "got %v want %v", acc, want)

	// a and b keep their original values after accumulation.
	assert.InDelta(t, math.Exp(-0.3), a.Raw(1), 1e-12)
	assert.Equal(t, 0.0, a.Raw(2))
}

func TestExpectation_AccumulatorLeavesCopiesAlone(t *testing.T) {
	a := weight.NewExpectation(1, map[weight.FeatureID]float64{1: 1, 2: 1})
	before := math.Exp(-1)

	// copy of a freshly built weight
	x := weight.NewExpectation(1, map[weight.FeatureID]float64{1: 1})
	y := x
	y.PlusBy(x)
	assert.InDelta(t, before, x.Raw(1), 1e-12)
	assert.InDelta(t, 2*before, y.Raw(1), 1e-12)

	// copy of a product
	p := a.Times(a)
	want := p.Raw(2)
	q := p
	q.TimesBy(a)
	assert.InDelta(t, want, p.Raw(2), 1e-12)

	// the accumulated value is copied, then the original keeps going
	acc := weight.Zero[weight.Expectation]()
	acc.PlusBy(a)
	acc.PlusBy(a)
	snap := acc
	acc.PlusBy(a)
	acc.TimesBy(a)
	assert.InDelta(t, 2*before, snap.Raw(1), 1e-12)
	assert.InDelta(t, before, a.Raw(1), 1e-12)
}

func TestExpectation_ZeroAbsorbs(t *testing.T) {
	acc := weight.NewExpectation(1, map[weight.FeatureID]float64{1: 1})
	acc.TimesBy(weight.Zero[weight.Expectation]())
	assert.True(t, acc.IsZero())
	acc.TimesBy(weight.NewExpectation(1, nil))
	assert.True(t, acc.IsZero())
}
