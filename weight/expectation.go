package weight

import (
	"math"
	"strings"
)

// expectationTolerance bounds floating drift when comparing expectation vectors.
const expectationTolerance = 1e-9

var posInf = math.Inf(1)

// Expectation is the probability-expectation semiring element <p, r>, where
// p is stored as a negated log probability and r holds p-weighted feature
// values:
//
//	<p1,r1> + <p2,r2> = <p1+p2, r1+r2>
//	<p1,r1> * <p2,r2> = <p1*p2, p1*r2 + p2*r1>
//
// The inside score of a hypergraph in this semiring yields the partition
// function and the unnormalised feature expectations in one pass.
type Expectation struct {
	cost  float64
	feats featureVec
}

// NewExpectation builds an arc weight with probability exp(-cost) whose
// features fire with the given values; r is set to p*feats.
func NewExpectation(cost float64, feats map[FeatureID]float64) Expectation {
	p := math.Exp(-cost)
	out := Expectation{cost: cost}
	if len(feats) > 0 {
		out.feats = make(featureVec, len(feats))
		for id, v := range feats {
			out.feats[id] = p * v
		}
	}

	return out
}

// Zero returns probability 0.
func (Expectation) Zero() Expectation { return Expectation{cost: posInf} }

// One returns probability 1 with no expectations.
func (Expectation) One() Expectation { return Expectation{} }

// IsZero reports probability 0.
func (e Expectation) IsZero() bool { return e.cost == posInf }

// IsOne reports probability 1 with an empty r.
func (e Expectation) IsOne() bool { return e.cost == 0 && len(e.feats) == 0 }

// Plus adds probabilities and expectation vectors.
func (e Expectation) Plus(o Expectation) Expectation {
	switch {
	case e.IsZero():
		return o
	case o.IsZero():
		return e
	}
	return Expectation{
		cost:  logPlus(e.cost, o.cost),
		feats: addFeatures(e.feats, o.feats),
	}
}

// Times multiplies probabilities and applies the product rule to r.
func (e Expectation) Times(o Expectation) Expectation {
	if e.IsZero() || o.IsZero() {
		return e.Zero()
	}

	return Expectation{
		cost:  e.cost + o.cost,
		feats: scaledSum(e.feats, o.Probability(), o.feats, e.Probability()),
	}
}

// PlusBy accumulates o into e. The expectation vector is rebuilt rather than
// edited, since a plain copy of e shares its map.
func (e *Expectation) PlusBy(o Expectation) {
	if o.IsZero() {
		return
	}
	if e.IsZero() {
		*e = o
		return
	}
	e.cost = logPlus(e.cost, o.cost)
	e.feats = addFeatures(e.feats, o.feats)
}

// TimesBy multiplies o into e under the same rule as PlusBy.
func (e *Expectation) TimesBy(o Expectation) {
	if e.IsZero() {
		return
	}
	if o.IsZero() {
		*e = e.Zero()
		return
	}
	e.feats = scaledSum(e.feats, o.Probability(), o.feats, e.Probability())
	e.cost += o.cost
}

// Divide is not defined for the expectation semiring.
func (e Expectation) Divide(Expectation) (Expectation, error) {
	return e.Zero(), ErrUnsupported
}

// Less orders by probability (higher probability, lower cost, is better).
func (e Expectation) Less(o Expectation) bool { return e.cost < o.cost }

// Value returns the negated log probability.
func (e Expectation) Value() float64 { return e.cost }

// Probability returns p.
func (e Expectation) Probability() float64 { return math.Exp(-e.cost) }

// Raw returns r[id], the p-weighted (unnormalised) expectation.
func (e Expectation) Raw(id FeatureID) float64 { return e.feats[id] }

// Expectations returns r/p: the normalised feature expectations.
func (e Expectation) Expectations() map[FeatureID]float64 {
	out := make(map[FeatureID]float64, len(e.feats))
	if e.IsZero() {
		return out
	}
	p := e.Probability()
	for id, v := range e.feats {
		out[id] = v / p
	}

	return out
}

// Equal compares probabilities and expectation vectors within a tolerance.
func (e Expectation) Equal(o Expectation) bool {
	if e.IsZero() || o.IsZero() {
		return e.IsZero() == o.IsZero()
	}
	if math.Abs(e.cost-o.cost) > expectationTolerance*math.Max(1, math.Abs(e.cost)) {
		return false
	}

	return equalFeatures(e.feats, o.feats, expectationTolerance)
}

// String renders "cost[id=r,...]".
func (e Expectation) String() string {
	var sb strings.Builder
	sb.WriteString(formatCost(e.cost))
	e.feats.render(&sb)

	return sb.String()
}
