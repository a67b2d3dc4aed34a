package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/weight"
)

func TestViterbi_Basics(t *testing.T) {
	inf := weight.Viterbi(math.Inf(1))
	assert.True(t, inf.IsZero())
	assert.Equal(t, weight.Viterbi(2), weight.Viterbi(2).Plus(3))
	assert.Equal(t, weight.Viterbi(5), weight.Viterbi(2).Times(3))
	assert.True(t, weight.Viterbi(2).Times(inf).IsZero())
	assert.True(t, weight.Viterbi(1).Less(2))
	assert.Equal(t, "2.5", weight.Viterbi(2.5).String())
	assert.Equal(t, "inf", inf.String())

	q, err := weight.Viterbi(5).Divide(2)
	require.NoError(t, err)
	assert.Equal(t, weight.Viterbi(3), q)
	_, err = weight.Viterbi(5).Divide(inf)
	assert.ErrorIs(t, err, weight.ErrDivideByZero)
}

func TestViterbi_Accumulator(t *testing.T) {
	w := weight.Zero[weight.Viterbi]()
	var acc weight.Accumulator[weight.Viterbi] = &w
	acc.PlusBy(4)
	acc.PlusBy(2)
	acc.TimesBy(1)
	assert.Equal(t, weight.Viterbi(3), w)
}

func TestLog_Plus(t *testing.T) {
	// -log(0.5 + 0.5) = 0
	half := weight.Log(math.Log(2))
	assert.InDelta(t, 0.0, half.Plus(half).Value(), 1e-12)
	assert.InDelta(t, 0.5, half.Probability(), 1e-12)
	assert.True(t, weight.Log(math.Inf(1)).Plus(half).Equal(half))

	var w weight.Log = weight.Zero[weight.Log]()
	w.PlusBy(half)
	w.PlusBy(half)
	assert.InDelta(t, 0.0, w.Value(), 1e-12)
}

func TestBool_Semantics(t *testing.T) {
	assert.Equal(t, weight.Bool(true), weight.Bool(false).Plus(true))
	assert.Equal(t, weight.Bool(false), weight.Bool(true).Times(false))
	assert.True(t, weight.Bool(true).Less(false))
	assert.False(t, weight.Bool(false).Less(true))
	assert.Equal(t, 0.0, weight.Bool(true).Value())
	assert.True(t, math.IsInf(weight.Bool(false).Value(), 1))
}
