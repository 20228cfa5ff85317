package lazyseq

// At returns the value at position i.
func (s *Seq[S, F]) At(i int) (S, error) {
	if err := s.checkIndex(i); err != nil {
		var zero S
		return zero, err
	}
	return s.tree.Get(i), nil
}

// Set replaces the value at position i.
func (s *Seq[S, F]) Set(i int, v S) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.tree.Set(i, v)
	return nil
}

// Insert inserts values before position i. If i is greater than the length
// of the sequence, an out-of-bounds error is returned.
func (s *Seq[S, F]) Insert(i int, values ...S) error {
	if i < 0 || i > s.Len() {
		return ErrIndexOutOfBounds
	}
	switch len(values) {
	case 0:
	case 1:
		s.tree.Insert(i, values[0])
	default:
		s.tree.InsertTree(i, s.tree.Arena().Build(values...))
	}
	return nil
}

// Erase removes the value at position i and returns it.
func (s *Seq[S, F]) Erase(i int) (S, error) {
	if err := s.checkIndex(i); err != nil {
		var zero S
		return zero, err
	}
	return s.tree.Erase(i), nil
}

// Cut cuts out the values [i,j). It returns the cut segment as a new
// sequence, sharing storage with s.
func (s *Seq[S, F]) Cut(i, j int) (*Seq[S, F], error) {
	if err := s.checkRange(i, j); err != nil {
		return nil, err
	}
	return &Seq[S, F]{tree: s.tree.Cut(i, j)}, nil
}

// Split splits a sequence right before position i. s keeps the values
// [0,i), the values [i,n) are returned as a new sequence sharing storage
// with s.
func (s *Seq[S, F]) Split(i int) (*Seq[S, F], error) {
	if i < 0 || i > s.Len() {
		return nil, ErrIndexOutOfBounds
	}
	left, right := s.tree.Split(i)
	s.tree = left
	T().Debugf("lazyseq: split at %d into %d + %d", i, left.Len(), right.Len())
	return &Seq[S, F]{tree: right}, nil
}

// Concat appends others to s, in order. Every sequence appended is left
// empty. All sequences have to share storage with s, i.e. have to be split
// off from a common ancestor.
func (s *Seq[S, F]) Concat(others ...*Seq[S, F]) error {
	arena := s.tree.Arena()
	for _, o := range others {
		if o == nil || o == s {
			return ErrIllegalArguments
		}
		if o.tree.Arena() != arena {
			return ErrForeignSequence
		}
	}
	for _, o := range others {
		s.tree = arena.Merge(s.tree, o.tree)
		o.tree = arena.Empty()
	}
	return nil
}

// Prod returns the monoid sum of the values [i,j).
func (s *Seq[S, F]) Prod(i, j int) (S, error) {
	if err := s.checkRange(i, j); err != nil {
		var zero S
		return zero, err
	}
	return s.tree.Prod(i, j), nil
}

// Apply applies f to every value in [i,j).
func (s *Seq[S, F]) Apply(i, j int, f F) error {
	if err := s.checkRange(i, j); err != nil {
		return err
	}
	s.tree.Apply(i, j, f)
	return nil
}

// AllApply applies f to every value in O(1).
func (s *Seq[S, F]) AllApply(f F) {
	s.tree.AllApply(f)
}

// Reverse reverses the order of the values [i,j).
func (s *Seq[S, F]) Reverse(i, j int) error {
	if err := s.checkRange(i, j); err != nil {
		return err
	}
	s.tree.Reverse(i, j)
	return nil
}

// ReverseAll reverses the whole sequence in O(1).
func (s *Seq[S, F]) ReverseAll() {
	s.tree.ReverseAll()
}

// MaxRight returns the largest r such that pred holds for the sum of
// [0,r). pred has to hold for the neutral element and must be monotone.
func (s *Seq[S, F]) MaxRight(pred func(S) bool) int {
	return s.tree.MaxRight(pred)
}

// MinLeft returns the smallest l such that pred holds for the sum of
// [l,n). pred has to hold for the neutral element and must be monotone.
func (s *Seq[S, F]) MinLeft(pred func(S) bool) int {
	return s.tree.MinLeft(pred)
}
