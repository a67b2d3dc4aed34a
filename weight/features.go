package weight

import (
	"sort"
	"strconv"
	"strings"
)

// FeatureID names one sparse feature dimension.
type FeatureID uint32

// featureVec is an immutable-once-published sparse vector. A nil vec is empty.
// Operations that leave a map unchanged share it; only a result that differs
// from both operands gets a fresh map.
type featureVec map[FeatureID]float64

// copyFeatures returns a private copy of src (nil for an empty input).
func copyFeatures(src map[FeatureID]float64) featureVec {
	if len(src) == 0 {
		return nil
	}
	out := make(featureVec, len(src))
	for id, v := range src {
		out[id] = v
	}

	return out
}

// addFeatures returns a+b, sharing an operand when the other is empty.
func addFeatures(a, b featureVec) featureVec {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	out := make(featureVec, len(a)+len(b))
	for id, v := range a {
		out[id] = v
	}
	for id, v := range b {
		out[id] += v
	}

	return out
}

// scaledSum returns sa*a + sb*b as a fresh map.
func scaledSum(a featureVec, sa float64, b featureVec, sb float64) featureVec {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(featureVec, len(a)+len(b))
	for id, v := range a {
		out[id] = sa * v
	}
	for id, v := range b {
		out[id] += sb * v
	}

	return out
}

// equalFeatures compares two sparse vectors exactly; missing ids read as 0.
func equalFeatures(a, b featureVec, tol float64) bool {
	for id, v := range a {
		if d := v - b[id]; d > tol || d < -tol {
			return false
		}
	}
	for id, v := range b {
		if _, ok := a[id]; !ok && (v > tol || v < -tol) {
			return false
		}
	}

	return true
}

// sortedIDs lists ids in ascending order for deterministic rendering.
func (f featureVec) sortedIDs() []FeatureID {
	ids := make([]FeatureID, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// render writes "[id=v,...]" in id order, or "" when empty.
func (f featureVec) render(sb *strings.Builder) {
	if len(f) == 0 {
		return
	}
	sb.WriteByte('[')
	for i, id := range f.sortedIDs() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
		sb.WriteByte('=')
		sb.WriteString(trimFloat(f[id]))
	}
	sb.WriteByte(']')
}

// Feature is a scalar cost with a sparse feature map.
//
// Plus is "take-min": the cheaper operand is returned verbatim, its feature
// map unmerged, and ties favor the receiver. Times adds costs and feature
// values. Feature maps are shared between values and never mutated after
// publication.
type Feature struct {
	cost  float64
	feats featureVec
}

// NewFeature builds a Feature with a private copy of feats.
func NewFeature(cost float64, feats map[FeatureID]float64) Feature {
	return Feature{cost: cost, feats: copyFeatures(feats)}
}

// Zero returns the +Inf-cost weight with no features.
func (Feature) Zero() Feature { return Feature{cost: posInf} }

// One returns the zero-cost weight with no features.
func (Feature) One() Feature { return Feature{} }

// IsZero reports an infinite cost.
func (f Feature) IsZero() bool { return f.cost == posInf }

// IsOne reports zero cost and no features.
func (f Feature) IsOne() bool { return f.cost == 0 && len(f.feats) == 0 }

// Plus returns the cheaper operand; ties favor f.
func (f Feature) Plus(o Feature) Feature {
	if o.cost < f.cost {
		return o
	}

	return f
}

// Times adds costs and unions feature maps, summing shared ids.
func (f Feature) Times(o Feature) Feature {
	if f.IsZero() || o.IsZero() {
		return f.Zero()
	}

	return Feature{cost: f.cost + o.cost, feats: addFeatures(f.feats, o.feats)}
}

// Less orders by scalar cost.
func (f Feature) Less(o Feature) bool { return f.cost < o.cost }

// Value returns the scalar cost.
func (f Feature) Value() float64 { return f.cost }

// Cost returns the scalar cost.
func (f Feature) Cost() float64 { return f.cost }

// Get returns the value of feature id (0 when absent).
func (f Feature) Get(id FeatureID) float64 { return f.feats[id] }

// Len returns the number of stored features.
func (f Feature) Len() int { return len(f.feats) }

// Features returns a copy of the feature map.
func (f Feature) Features() map[FeatureID]float64 { return copyFeatures(f.feats) }

// Equal compares cost and feature values.
func (f Feature) Equal(o Feature) bool {
	return f.cost == o.cost && equalFeatures(f.feats, o.feats, 0)
}

// String renders "cost[id=v,...]".
func (f Feature) String() string {
	var sb strings.Builder
	sb.WriteString(formatCost(f.cost))
	f.feats.render(&sb)

	return sb.String()
}
