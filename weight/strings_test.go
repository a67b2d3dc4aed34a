package weight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// TestToken_TimesNotCommutative checks concatenation order is significant.
func TestToken_TimesNotCommutative(t *testing.T) {
	t1, t2 := sym(1), sym(2)
	w1 := weight.NewToken(0, []symbol.Symbol{t1}, 1)
	w2 := weight.NewToken(0, []symbol.Symbol{t2}, 2)

	ab := w1.Times(w2)
	ba := w2.Times(w1)
	assert.False(t, ab.Equal(ba))

	c, ok := ab.Cost([]symbol.Symbol{t1, t2})
	require.True(t, ok)
	assert.Equal(t, 3.0, c)
	_, ok = ab.Cost([]symbol.Symbol{t2, t1})
	assert.False(t, ok)
}

func TestToken_LengthCapDiscards(t *testing.T) {
	a := weight.NewToken(2, []symbol.Symbol{sym(1), sym(2)}, 1)
	b := weight.NewToken(2, []symbol.Symbol{sym(3)}, 1)

	// Every concatenation exceeds the cap: the product is Zero.
	assert.True(t, a.Times(b).IsZero())

	// Mixed sets keep only the short results.
	short := b.Plus(weight.NewToken(2, nil, 0.5))
	got := short.Times(b)
	assert.Equal(t, 2, got.Len())
	c, ok := got.Cost([]symbol.Symbol{sym(3)})
	require.True(t, ok)
	assert.Equal(t, 1.5, c)

	// Oversized constructor input is Zero as well.
	assert.True(t, weight.NewToken(1, []symbol.Symbol{sym(1), sym(2)}, 0).IsZero())
}

func TestToken_PlusKeepsMin(t *testing.T) {
	a := weight.NewToken(0, []symbol.Symbol{sym(1)}, 3)
	b := weight.NewToken(0, []symbol.Symbol{sym(1)}, 2)
	c, _ := a.Plus(b).Cost([]symbol.Symbol{sym(1)})
	assert.Equal(t, 2.0, c)
	assert.Equal(t, 2.0, a.Plus(b).Value())
	assert.Equal(t, "{T:1:2}", a.Plus(b).String())
}

func TestNgram_PlusAccumulates(t *testing.T) {
	// Two derivations of the same bigram with probability 0.5 each sum to 1.
	half := 0.6931471805599453
	a := weight.NewNgram(2, []symbol.Symbol{sym(1), sym(2)}, half)
	got := a.Plus(a)
	c, ok := got.Cost([]symbol.Symbol{sym(1), sym(2)})
	require.True(t, ok)
	assert.InDelta(t, 0.0, c, 1e-12)
	assert.Equal(t, 2, got.Order())

	members := got.Strings()
	require.Len(t, members, 1)
	assert.Equal(t, []symbol.Symbol{sym(1), sym(2)}, members[0].Symbols)
}

func TestNgram_TimesRespectsOrder(t *testing.T) {
	a := weight.NewNgram(2, []symbol.Symbol{sym(1)}, 1)
	b := weight.NewNgram(2, []symbol.Symbol{sym(2)}, 1)
	ab := a.Times(b)
	assert.Equal(t, 1, ab.Len())
	assert.True(t, ab.Times(b).IsZero())
	assert.False(t, ab.Equal(b.Times(a)))
}
