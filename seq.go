package lazyseq

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/lazyseq/splay"
)

// Seq is a mutable sequence of values of type S, updatable by actions of
// type F.
//
// Sequences have to be created by New or split off from another sequence.
// Methods taking positions use zero-based indices and half-open ranges
// [i,j).
type Seq[S, F any] struct {
	tree *splay.Tree[S, F]
}

// New creates a sequence holding values, with the algebra given by cfg.
func New[S, F any](cfg splay.Config[S, F], values ...S) (*Seq[S, F], error) {
	arena, err := splay.New(cfg, splay.WithCapacity(len(values)))
	if err != nil {
		return nil, err
	}
	T().Debugf("lazyseq: new sequence of %d values", len(values))
	return &Seq[S, F]{tree: arena.Build(values...)}, nil
}

// Len returns the number of values.
func (s *Seq[S, F]) Len() int {
	return s.tree.Len()
}

// IsVoid reports whether the sequence has no values.
func (s *Seq[S, F]) IsVoid() bool {
	return s.tree.IsEmpty()
}

// AllProd returns the monoid sum of all values in O(1).
func (s *Seq[S, F]) AllProd() S {
	return s.tree.AllProd()
}

// Values returns all values in order. This is an O(n) operation.
func (s *Seq[S, F]) Values() []S {
	return s.tree.Values()
}

// All returns an iterator over all values in order.
//
// The sequence must not be modified during iteration.
func (s *Seq[S, F]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		s.tree.ForEach(yield)
	}
}

// Backward returns an iterator over all values in reverse order.
func (s *Seq[S, F]) Backward() iter.Seq[S] {
	return func(yield func(S) bool) {
		s.tree.ForEachBackward(yield)
	}
}

// Each visits all values in order, together with their position. Iteration
// stops at the first callback error and returns that error to the caller.
func (s *Seq[S, F]) Each(f func(S, int) error) error {
	var err error
	i := 0
	s.tree.ForEach(func(v S) bool {
		err = f(v, i)
		i++
		return err == nil
	})
	return err
}

// String returns the values formatted like a slice. This may be an
// expensive operation.
func (s *Seq[S, F]) String() string {
	return fmt.Sprint(s.Values())
}

// checkRange validates a half-open range [i,j).
func (s *Seq[S, F]) checkRange(i, j int) error {
	if i > j {
		return ErrIllegalArguments
	}
	if i < 0 || j > s.Len() {
		return ErrIndexOutOfBounds
	}
	return nil
}

func (s *Seq[S, F]) checkIndex(i int) error {
	if i < 0 || i >= s.Len() {
		return ErrIndexOutOfBounds
	}
	return nil
}
