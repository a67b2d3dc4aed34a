package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/weight"
)

// TestFeature_TakeMinKeepsWinnerMap checks Plus returns the cheaper side's
// features unmerged when the feature ids are disjoint.
func TestFeature_TakeMinKeepsWinnerMap(t *testing.T) {
	w1 := weight.NewFeature(2, map[weight.FeatureID]float64{1: 1.5})
	w2 := weight.NewFeature(1, map[weight.FeatureID]float64{7: -2})

	got := w1.Plus(w2)
	assert.Equal(t, 1.0, got.Cost())
	assert.Equal(t, map[weight.FeatureID]float64{7: -2}, got.Features())
	assert.Equal(t, 0.0, got.Get(1), "loser's features must not be merged")

	// Symmetric call picks the same winner.
	assert.True(t, w2.Plus(w1).Equal(got))
}

func TestFeature_TieFavorsLeft(t *testing.T) {
	l := weight.NewFeature(1, map[weight.FeatureID]float64{1: 1})
	r := weight.NewFeature(1, map[weight.FeatureID]float64{2: 1})
	assert.True(t, l.Plus(r).Equal(l))
	assert.True(t, r.Plus(l).Equal(r))
}

func TestFeature_TimesSumsFeatures(t *testing.T) {
	a := weight.NewFeature(1, map[weight.FeatureID]float64{1: 1, 2: 2})
	b := weight.NewFeature(3, map[weight.FeatureID]float64{2: 3, 4: 4})

	got := a.Times(b)
	assert.Equal(t, 4.0, got.Cost())
	assert.Equal(t, map[weight.FeatureID]float64{1: 1, 2: 5, 4: 4}, got.Features())

	// Operands are untouched.
	assert.Equal(t, 2.0, a.Get(2))
	assert.Equal(t, 3.0, b.Get(2))
	assert.Equal(t, "4[1=1,2=5,4=4]", got.String())
}

func TestFeature_CopyIsolation(t *testing.T) {
	src := map[weight.FeatureID]float64{1: 1}
	w := weight.NewFeature(1, src)
	src[1] = 99
	out := w.Features()
	out[1] = 42
	assert.Equal(t, 1.0, w.Get(1))
}

func TestFeature_ZeroOne(t *testing.T) {
	zero, one := weight.Zero[weight.Feature](), weight.One[weight.Feature]()
	require.True(t, zero.IsZero())
	require.True(t, one.IsOne())
	// The Go zero value is the semiring one.
	assert.True(t, weight.Feature{}.IsOne())
	assert.Equal(t, "inf", zero.String())
}
