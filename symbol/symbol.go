package symbol

import (
	"fmt"
	"math"
)

// Kind classifies a Symbol. It occupies the two high bits of the encoding.
type Kind uint32

const (
	// Terminal symbols label lexical (axiom) states: words, characters, tokens.
	Terminal Kind = iota
	// Nonterminal symbols label internal states (categories, spans).
	Nonterminal
	// Special symbols are reserved markers such as Epsilon.
	Special
	// Variable symbols stand for rule variables in synchronous grammars.
	Variable
)

const (
	kindShift = 30
	indexMask = 1<<kindShift - 1
)

// MaxIndex is the largest index a Symbol of any kind can carry.
const MaxIndex = indexMask - 1

// Symbol is a compact, comparable label value.
type Symbol uint32

// NoSymbol marks an absent label (e.g. a state without an output label).
const NoSymbol Symbol = math.MaxUint32

// Reserved special symbols.
var (
	Epsilon = New(Special, 0)
	Sigma   = New(Special, 1)
	Phi     = New(Special, 2)
	Rho     = New(Special, 3)
)

// New packs kind and index into a Symbol. Indices above MaxIndex are masked.
func New(kind Kind, index uint32) Symbol {
	return Symbol(uint32(kind)<<kindShift | index&indexMask)
}

// Kind returns the symbol's kind. NoSymbol reports Variable; use IsNone first.
func (s Symbol) Kind() Kind { return Kind(uint32(s) >> kindShift) }

// Index returns the vocabulary index within the symbol's kind.
func (s Symbol) Index() uint32 { return uint32(s) & indexMask }

// IsNone reports whether s is the NoSymbol sentinel.
func (s Symbol) IsNone() bool { return s == NoSymbol }

// IsTerminal reports whether s is a (non-sentinel) terminal.
func (s Symbol) IsTerminal() bool { return s != NoSymbol && s.Kind() == Terminal }

// IsNonterminal reports whether s is a nonterminal.
func (s Symbol) IsNonterminal() bool { return s != NoSymbol && s.Kind() == Nonterminal }

// IsSpecial reports whether s is a special symbol.
func (s Symbol) IsSpecial() bool { return s != NoSymbol && s.Kind() == Special }

// IsVariable reports whether s is a variable.
func (s Symbol) IsVariable() bool { return s != NoSymbol && s.Kind() == Variable }

// IsEpsilon reports whether s is the reserved Epsilon symbol.
func (s Symbol) IsEpsilon() bool { return s == Epsilon }

// String renders the symbol without a vocabulary, e.g. "T:12", "NT:3", "<eps>".
func (s Symbol) String() string {
	switch s {
	case NoSymbol:
		return "<none>"
	case Epsilon:
		return "<eps>"
	case Sigma:
		return "<sigma>"
	case Phi:
		return "<phi>"
	case Rho:
		return "<rho>"
	}

	return fmt.Sprintf("%s:%d", s.Kind(), s.Index())
}

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case Terminal:
		return "T"
	case Nonterminal:
		return "NT"
	case Special:
		return "S"
	case Variable:
		return "V"
	default:
		return "?"
	}
}

// Vocabulary is the external interning capability. Implementations live
// outside this module; the core only calls these methods.
type Vocabulary interface {
	// Add interns str with the given kind and returns its symbol.
	Add(str string, kind Kind) Symbol

	// Str returns the string for sym, or "" if unknown.
	Str(sym Symbol) string

	// Sym looks str up without interning it, returning NoSymbol if absent.
	Sym(str string, kind Kind) Symbol
}

// Render formats s through voc when one is available.
func Render(voc Vocabulary, s Symbol) string {
	if voc == nil || s == NoSymbol {
		return s.String()
	}
	if str := voc.Str(s); str != "" {
		return str
	}

	return s.String()
}
