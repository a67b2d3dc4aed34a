package weight

// Tuple1 wraps a single sub-weight. It exists so tuple-shaped configurations
// with one component use the same code paths as Tuple2 and Tuple3.
type Tuple1[A Weight[A]] struct {
	First A
}

// Zero returns (0).
func (Tuple1[A]) Zero() Tuple1[A] { return Tuple1[A]{First: Zero[A]()} }

// One returns (1).
func (Tuple1[A]) One() Tuple1[A] { return Tuple1[A]{First: One[A]()} }

// IsZero reports whether the component is zero.
func (t Tuple1[A]) IsZero() bool { return t.First.IsZero() }

// IsOne reports whether the component is one.
func (t Tuple1[A]) IsOne() bool { return t.First.IsOne() }

// Plus is component-wise.
func (t Tuple1[A]) Plus(o Tuple1[A]) Tuple1[A] { return Tuple1[A]{First: t.First.Plus(o.First)} }

// Times is component-wise.
func (t Tuple1[A]) Times(o Tuple1[A]) Tuple1[A] { return Tuple1[A]{First: t.First.Times(o.First)} }

// Less defers to the component.
func (t Tuple1[A]) Less(o Tuple1[A]) bool { return t.First.Less(o.First) }

// Value is the component's value.
func (t Tuple1[A]) Value() float64 { return t.First.Value() }

// Equal defers to the component.
func (t Tuple1[A]) Equal(o Tuple1[A]) bool { return t.First.Equal(o.First) }

// String renders "<a>".
func (t Tuple1[A]) String() string { return "<" + t.First.String() + ">" }

// Tuple2 combines two independent sub-weights component-wise. Ordering is
// lexicographic and Value reads the first component.
type Tuple2[A Weight[A], B Weight[B]] struct {
	First  A
	Second B
}

// Zero returns (0,0).
func (Tuple2[A, B]) Zero() Tuple2[A, B] {
	return Tuple2[A, B]{First: Zero[A](), Second: Zero[B]()}
}

// One returns (1,1).
func (Tuple2[A, B]) One() Tuple2[A, B] {
	return Tuple2[A, B]{First: One[A](), Second: One[B]()}
}

// IsZero reports whether both components are zero.
func (t Tuple2[A, B]) IsZero() bool { return t.First.IsZero() && t.Second.IsZero() }

// IsOne reports whether both components are one.
func (t Tuple2[A, B]) IsOne() bool { return t.First.IsOne() && t.Second.IsOne() }

// Plus is component-wise.
func (t Tuple2[A, B]) Plus(o Tuple2[A, B]) Tuple2[A, B] {
	return Tuple2[A, B]{First: t.First.Plus(o.First), Second: t.Second.Plus(o.Second)}
}

// Times is component-wise.
func (t Tuple2[A, B]) Times(o Tuple2[A, B]) Tuple2[A, B] {
	return Tuple2[A, B]{First: t.First.Times(o.First), Second: t.Second.Times(o.Second)}
}

// Less is lexicographic.
func (t Tuple2[A, B]) Less(o Tuple2[A, B]) bool {
	if t.First.Less(o.First) {
		return true
	}
	if o.First.Less(t.First) {
		return false
	}

	return t.Second.Less(o.Second)
}

// Value is the first component's value.
func (t Tuple2[A, B]) Value() float64 { return t.First.Value() }

// Equal compares both components.
func (t Tuple2[A, B]) Equal(o Tuple2[A, B]) bool {
	return t.First.Equal(o.First) && t.Second.Equal(o.Second)
}

// String renders "<a,b>".
func (t Tuple2[A, B]) String() string {
	return "<" + t.First.String() + "," + t.Second.String() + ">"
}

// Tuple3 combines three independent sub-weights component-wise.
type Tuple3[A Weight[A], B Weight[B], C Weight[C]] struct {
	First  A
	Second B
	Third  C
}

// Zero returns (0,0,0).
func (Tuple3[A, B, C]) Zero() Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: Zero[A](), Second: Zero[B](), Third: Zero[C]()}
}

// One returns (1,1,1).
func (Tuple3[A, B, C]) One() Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: One[A](), Second: One[B](), Third: One[C]()}
}

// IsZero reports whether every component is zero.
func (t Tuple3[A, B, C]) IsZero() bool {
	return t.First.IsZero() && t.Second.IsZero() && t.Third.IsZero()
}

// IsOne reports whether every component is one.
func (t Tuple3[A, B, C]) IsOne() bool {
	return t.First.IsOne() && t.Second.IsOne() && t.Third.IsOne()
}

// Plus is component-wise.
func (t Tuple3[A, B, C]) Plus(o Tuple3[A, B, C]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		First:  t.First.Plus(o.First),
		Second: t.Second.Plus(o.Second),
		Third:  t.Third.Plus(o.Third),
	}
}

// Times is component-wise.
func (t Tuple3[A, B, C]) Times(o Tuple3[A, B, C]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		First:  t.First.Times(o.First),
		Second: t.Second.Times(o.Second),
		Third:  t.Third.Times(o.Third),
	}
}

// Less is lexicographic.
func (t Tuple3[A, B, C]) Less(o Tuple3[A, B, C]) bool {
	switch {
	case t.First.Less(o.First):
		return true
	case o.First.Less(t.First):
		return false
	case t.Second.Less(o.Second):
		return true
	case o.Second.Less(t.Second):
		return false
	}

	return t.Third.Less(o.Third)
}

// Value is the first component's value.
func (t Tuple3[A, B, C]) Value() float64 { return t.First.Value() }

// Equal compares every component.
func (t Tuple3[A, B, C]) Equal(o Tuple3[A, B, C]) bool {
	return t.First.Equal(o.First) && t.Second.Equal(o.Second) && t.Third.Equal(o.Third)
}

// String renders "<a,b,c>".
func (t Tuple3[A, B, C]) String() string {
	return "<" + t.First.String() + "," + t.Second.String() + "," + t.Third.String() + ">"
}
