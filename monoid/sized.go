package monoid

// Sized is a sum of elements together with the number of elements.
type Sized[T Number] struct {
	Sum T
	Len int
}

// One wraps a single element.
func One[T Number](v T) Sized[T] {
	return Sized[T]{Sum: v, Len: 1}
}

// Ones wraps every element of vs.
func Ones[T Number](vs ...T) []Sized[T] {
	out := make([]Sized[T], len(vs))
	for i, v := range vs {
		out[i] = One(v)
	}
	return out
}

// SizedSum aggregates Sized values.
type SizedSum[T Number] struct{}

// Zero returns the empty sum.
func (SizedSum[T]) Zero() Sized[T] { return Sized[T]{} }

// Add combines two sums.
func (SizedSum[T]) Add(left, right Sized[T]) Sized[T] {
	return Sized[T]{Sum: left.Sum + right.Sum, Len: left.Len + right.Len}
}

// Add adds a constant to every element of a range.
type Add[T Number] struct{}

// Identity returns 0.
func (Add[T]) Identity() T { return 0 }

// Apply adds f to every element summarized by s.
func (Add[T]) Apply(f T, s Sized[T]) Sized[T] {
	return Sized[T]{Sum: s.Sum + f*T(s.Len), Len: s.Len}
}

// Compose adds both constants.
func (Add[T]) Compose(outer, inner T) T { return outer + inner }

// Affine is the map x -> A*x + B.
type Affine[T Number] struct {
	A, B T
}

// Identity returns the identity map.
func Identity[T Number]() Affine[T] {
	return Affine[T]{A: 1}
}

// Eval applies the map to x.
func (f Affine[T]) Eval(x T) T {
	return f.A*x + f.B
}

// Then returns the map applying f first and g afterwards.
func (f Affine[T]) Then(g Affine[T]) Affine[T] {
	return Affine[T]{A: g.A * f.A, B: g.A*f.B + g.B}
}

// AffineAction maps every element of a range through an affine map.
type AffineAction[T Number] struct{}

// Identity returns x -> x.
func (AffineAction[T]) Identity() Affine[T] { return Identity[T]() }

// Apply maps every element summarized by s.
func (AffineAction[T]) Apply(f Affine[T], s Sized[T]) Sized[T] {
	return Sized[T]{Sum: f.A*s.Sum + f.B*T(s.Len), Len: s.Len}
}

// Compose returns the map applying inner first.
func (AffineAction[T]) Compose(outer, inner Affine[T]) Affine[T] {
	return inner.Then(outer)
}
