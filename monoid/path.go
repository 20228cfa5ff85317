package monoid

// Path is the composition of the affine maps along a range, read in both
// directions. Fwd applies the maps from first to last, Bwd from last to
// first.
type Path[T Number] struct {
	Fwd, Bwd Affine[T]
}

// Step wraps a single map.
func Step[T Number](f Affine[T]) Path[T] {
	return Path[T]{Fwd: f, Bwd: f}
}

// Eval applies the forward composition to x.
func (p Path[T]) Eval(x T) T {
	return p.Fwd.Eval(x)
}

// Chain composes paths. As composition order matters, Chain implements
// Reverse.
type Chain[T Number] struct{}

// Zero returns the empty path.
func (Chain[T]) Zero() Path[T] {
	return Path[T]{Fwd: Identity[T](), Bwd: Identity[T]()}
}

// Add returns the path walking left first, then right.
func (Chain[T]) Add(left, right Path[T]) Path[T] {
	return Path[T]{
		Fwd: left.Fwd.Then(right.Fwd),
		Bwd: right.Bwd.Then(left.Bwd),
	}
}

// Reverse returns the path walked backwards.
func (Chain[T]) Reverse(p Path[T]) Path[T] {
	return Path[T]{Fwd: p.Bwd, Bwd: p.Fwd}
}
