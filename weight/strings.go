package weight

import (
	"encoding/binary"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/hyperpath/symbol"
)

// seqEntry is one partial string with its cost.
type seqEntry struct {
	seq  []symbol.Symbol
	cost float64
}

// seqSet maps an encoded symbol sequence to its entry. Sets are never mutated
// after they are returned from an operation.
type seqSet map[string]seqEntry

// seqKey encodes seq as 4 bytes per symbol.
func seqKey(seq []symbol.Symbol) string {
	buf := make([]byte, 4*len(seq))
	for i, s := range seq {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(s))
	}

	return string(buf)
}

// combineCap merges two length caps; 0 means unbounded.
func combineCap(a, b int) int {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// collide folds cost c into an existing entry cost.
func collide(existing, c float64, accumulate bool) float64 {
	if accumulate {
		return logPlus(existing, c)
	}

	return math.Min(existing, c)
}

// union returns a ∪ b, folding costs of shared strings.
func union(a, b seqSet, accumulate bool) seqSet {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	out := make(seqSet, len(a)+len(b))
	for k, e := range a {
		out[k] = e
	}
	for k, e := range b {
		if prev, ok := out[k]; ok {
			prev.cost = collide(prev.cost, e.cost, accumulate)
			out[k] = prev
			continue
		}
		out[k] = e
	}

	return out
}

// concat returns {x·y : x∈a, y∈b, |xy| <= maxLen}, costs added. Order of the
// operands is significant.
func concat(a, b seqSet, maxLen int, accumulate bool) seqSet {
	out := make(seqSet, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			n := len(x.seq) + len(y.seq)
			if maxLen > 0 && n > maxLen {
				continue
			}
			seq := make([]symbol.Symbol, 0, n)
			seq = append(seq, x.seq...)
			seq = append(seq, y.seq...)
			k := seqKey(seq)
			c := x.cost + y.cost
			if prev, ok := out[k]; ok {
				c = collide(prev.cost, c, accumulate)
			}
			out[k] = seqEntry{seq: seq, cost: c}
		}
	}

	return out
}

// bestCost returns the minimum cost, +Inf for an empty set.
func (s seqSet) bestCost() float64 {
	best := posInf
	for _, e := range s {
		if e.cost < best {
			best = e.cost
		}
	}

	return best
}

// equalSets compares key sets and costs within tol.
func equalSets(a, b seqSet, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, e := range a {
		o, ok := b[k]
		if !ok || math.Abs(e.cost-o.cost) > tol {
			return false
		}
	}

	return true
}

// sortedEntries returns entries ordered by cost, then lexicographically.
func (s seqSet) sortedEntries() []seqEntry {
	out := make([]seqEntry, 0, len(s))
	for _, e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].cost != out[j].cost {
			return out[i].cost < out[j].cost
		}

		return seqKey(out[i].seq) < seqKey(out[j].seq)
	})

	return out
}

// render writes "{a b:1,c:2}".
func (s seqSet) render() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.sortedEntries() {
		if i > 0 {
			sb.WriteByte(',')
		}
		for j, sym := range e.seq {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(sym.String())
		}
		sb.WriteByte(':')
		sb.WriteString(formatCost(e.cost))
	}
	sb.WriteByte('}')

	return sb.String()
}

// StringCost is an exported view of one set member.
type StringCost struct {
	Symbols []symbol.Symbol
	Cost    float64
}

func (s seqSet) members() []StringCost {
	entries := s.sortedEntries()
	out := make([]StringCost, len(entries))
	for i, e := range entries {
		out[i] = StringCost{Symbols: append([]symbol.Symbol(nil), e.seq...), Cost: e.cost}
	}

	return out
}

// Token is a set of symbol strings with per-string costs. Plus is set union
// keeping the cheaper cost on collision; Times concatenates every pair in
// operand order and drops results longer than the length cap. The empty set
// is Zero and {ε:0} is One.
type Token struct {
	set    seqSet
	maxLen int
}

// NewToken returns the singleton {seq:cost}. maxLen caps string length in
// Times (0 means unbounded); a seq already longer than maxLen yields Zero.
func NewToken(maxLen int, seq []symbol.Symbol, cost float64) Token {
	if maxLen > 0 && len(seq) > maxLen {
		return Token{maxLen: maxLen}
	}
	cp := append([]symbol.Symbol(nil), seq...)

	return Token{set: seqSet{seqKey(cp): {seq: cp, cost: cost}}, maxLen: maxLen}
}

// Zero returns the empty set.
func (t Token) Zero() Token { return Token{maxLen: t.maxLen} }

// One returns {ε:0}.
func (t Token) One() Token { return NewToken(t.maxLen, nil, 0) }

// IsZero reports an empty set.
func (t Token) IsZero() bool { return len(t.set) == 0 }

// IsOne reports {ε:0}.
func (t Token) IsOne() bool {
	e, ok := t.set[""]

	return ok && len(t.set) == 1 && e.cost == 0
}

// Plus is union with min cost on collision.
func (t Token) Plus(o Token) Token {
	return Token{set: union(t.set, o.set, false), maxLen: combineCap(t.maxLen, o.maxLen)}
}

// Times concatenates t's strings before o's strings.
func (t Token) Times(o Token) Token {
	capLen := combineCap(t.maxLen, o.maxLen)

	return Token{set: concat(t.set, o.set, capLen, false), maxLen: capLen}
}

// Less compares best costs.
func (t Token) Less(o Token) bool { return t.set.bestCost() < o.set.bestCost() }

// Value returns the best string cost, +Inf when empty.
func (t Token) Value() float64 { return t.set.bestCost() }

// Len returns the number of strings.
func (t Token) Len() int { return len(t.set) }

// MaxLen returns the length cap (0 means unbounded).
func (t Token) MaxLen() int { return t.maxLen }

// Cost returns the cost of seq and whether it is a member.
func (t Token) Cost(seq []symbol.Symbol) (float64, bool) {
	e, ok := t.set[seqKey(seq)]

	return e.cost, ok
}

// Strings lists members ordered by cost.
func (t Token) Strings() []StringCost { return t.set.members() }

// Equal compares members and costs exactly.
func (t Token) Equal(o Token) bool { return equalSets(t.set, o.set, 0) }

// String renders the set ordered by cost.
func (t Token) String() string { return t.set.render() }

// Ngram is a set of n-gram strings (length at most the order) whose costs
// accumulate in log space when the same n-gram is produced twice, so the set
// carries total probability mass per n-gram rather than the best derivation.
type Ngram struct {
	set   seqSet
	order int
}

// NewNgram returns the singleton {seq:cost} for an n-gram model of the given
// order (0 means unbounded).
func NewNgram(order int, seq []symbol.Symbol, cost float64) Ngram {
	if order > 0 && len(seq) > order {
		return Ngram{order: order}
	}
	cp := append([]symbol.Symbol(nil), seq...)

	return Ngram{set: seqSet{seqKey(cp): {seq: cp, cost: cost}}, order: order}
}

// Zero returns the empty set.
func (n Ngram) Zero() Ngram { return Ngram{order: n.order} }

// One returns {ε:0}.
func (n Ngram) One() Ngram { return NewNgram(n.order, nil, 0) }

// IsZero reports an empty set.
func (n Ngram) IsZero() bool { return len(n.set) == 0 }

// IsOne reports {ε:0}.
func (n Ngram) IsOne() bool {
	e, ok := n.set[""]

	return ok && len(n.set) == 1 && e.cost == 0
}

// Plus is union with log-plus accumulation on collision.
func (n Ngram) Plus(o Ngram) Ngram {
	return Ngram{set: union(n.set, o.set, true), order: combineCap(n.order, o.order)}
}

// Times concatenates n's strings before o's, dropping strings longer than the order.
func (n Ngram) Times(o Ngram) Ngram {
	capLen := combineCap(n.order, o.order)

	return Ngram{set: concat(n.set, o.set, capLen, true), order: capLen}
}

// Less compares best costs.
func (n Ngram) Less(o Ngram) bool { return n.set.bestCost() < o.set.bestCost() }

// Value returns the best n-gram cost, +Inf when empty.
func (n Ngram) Value() float64 { return n.set.bestCost() }

// Len returns the number of n-grams.
func (n Ngram) Len() int { return len(n.set) }

// Order returns the maximum n-gram length (0 means unbounded).
func (n Ngram) Order() int { return n.order }

// Cost returns the accumulated cost of seq and whether it is a member.
func (n Ngram) Cost(seq []symbol.Symbol) (float64, bool) {
	e, ok := n.set[seqKey(seq)]

	return e.cost, ok
}

// Strings lists members ordered by cost.
func (n Ngram) Strings() []StringCost { return n.set.members() }

// Equal compares members and costs within the log tolerance.
func (n Ngram) Equal(o Ngram) bool { return equalSets(n.set, o.set, logEqualTolerance) }

// String renders the set ordered by cost.
func (n Ngram) String() string { return n.set.render() }
