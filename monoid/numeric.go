package monoid

import "golang.org/x/exp/constraints"

// Sum adds numbers.
type Sum[T Number] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// Add returns left + right.
func (Sum[T]) Add(left, right T) T { return left + right }

// Min selects the smaller element. Top is the neutral element, usually the
// largest value of T or +Inf.
type Min[T constraints.Ordered] struct {
	Top T
}

// Zero returns Top.
func (m Min[T]) Zero() T { return m.Top }

// Add returns the minimum of left and right.
func (Min[T]) Add(left, right T) T { return min(left, right) }

// Max selects the larger element. Bottom is the neutral element, usually
// the smallest value of T or -Inf.
type Max[T constraints.Ordered] struct {
	Bottom T
}

// Zero returns Bottom.
func (m Max[T]) Zero() T { return m.Bottom }

// Add returns the maximum of left and right.
func (Max[T]) Add(left, right T) T { return max(left, right) }

// Offset shifts numbers by a constant. It distributes over Min and Max.
//
// Aggregates of non-empty ranges never equal the neutral element, so the
// neutral element is never shifted inside a tree.
type Offset[T Number] struct{}

// Identity returns 0.
func (Offset[T]) Identity() T { return 0 }

// Apply returns s + f.
func (Offset[T]) Apply(f T, s T) T { return s + f }

// Compose adds both shifts.
func (Offset[T]) Compose(outer, inner T) T { return outer + inner }
