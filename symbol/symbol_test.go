package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperpath/symbol"
)

// mapVocab is a minimal in-test Vocabulary.
type mapVocab struct {
	byStr map[string]symbol.Symbol
	bySym map[symbol.Symbol]string
	next  [4]uint32
}

func newMapVocab() *mapVocab {
	return &mapVocab{byStr: map[string]symbol.Symbol{}, bySym: map[symbol.Symbol]string{}}
}

func (v *mapVocab) Add(str string, kind symbol.Kind) symbol.Symbol {
	if s, ok := v.byStr[kind.String()+str]; ok {
		return s
	}
	s := symbol.New(kind, v.next[kind]+8)
	v.next[kind]++
	v.byStr[kind.String()+str] = s
	v.bySym[s] = str

	return s
}

func (v *mapVocab) Str(s symbol.Symbol) string { return v.bySym[s] }

func (v *mapVocab) Sym(str string, kind symbol.Kind) symbol.Symbol {
	if s, ok := v.byStr[kind.String()+str]; ok {
		return s
	}

	return symbol.NoSymbol
}

func TestSymbol_KindAndIndex(t *testing.T) {
	cases := []struct {
		kind  symbol.Kind
		index uint32
	}{
		{symbol.Terminal, 0},
		{symbol.Nonterminal, 17},
		{symbol.Special, 3},
		{symbol.Variable, symbol.MaxIndex},
	}
	for _, c := range cases {
		s := symbol.New(c.kind, c.index)
		assert.Equal(t, c.kind, s.Kind())
		assert.Equal(t, c.index, s.Index())
		assert.False(t, s.IsNone())
	}
}

func TestSymbol_Predicates(t *testing.T) {
	assert.True(t, symbol.New(symbol.Terminal, 1).IsTerminal())
	assert.True(t, symbol.New(symbol.Nonterminal, 1).IsNonterminal())
	assert.True(t, symbol.Epsilon.IsSpecial())
	assert.True(t, symbol.Epsilon.IsEpsilon())
	assert.True(t, symbol.New(symbol.Variable, 1).IsVariable())

	// The sentinel is none of the kinds.
	none := symbol.NoSymbol
	assert.True(t, none.IsNone())
	assert.False(t, none.IsTerminal())
	assert.False(t, none.IsVariable())
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "<none>", symbol.NoSymbol.String())
	assert.Equal(t, "<eps>", symbol.Epsilon.String())
	assert.Equal(t, "T:5", symbol.New(symbol.Terminal, 5).String())
	assert.Equal(t, "NT:2", symbol.New(symbol.Nonterminal, 2).String())
}

func TestRender_UsesVocabulary(t *testing.T) {
	voc := newMapVocab()
	hello := voc.Add("hello", symbol.Terminal)

	assert.Equal(t, "hello", symbol.Render(voc, hello))
	assert.Equal(t, hello, voc.Sym("hello", symbol.Terminal))
	assert.Equal(t, symbol.NoSymbol, voc.Sym("hello", symbol.Nonterminal))
	// Unknown symbols and nil vocabularies fall back to the bare rendering.
	assert.Equal(t, "T:99", symbol.Render(voc, symbol.New(symbol.Terminal, 99)))
	assert.Equal(t, "T:99", symbol.Render(nil, symbol.New(symbol.Terminal, 99)))
}
