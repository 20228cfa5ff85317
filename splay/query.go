package splay

// AllProd returns the sum of all values, or Zero() for an empty tree. O(1).
func (t *Tree[S, F]) AllProd() S {
	return t.live().sum(t.root)
}

// Prod returns the sum of the values [l,r), 0 <= l <= r <= t.Len().
func (t *Tree[S, F]) Prod(l, r int) S {
	a := t.live()
	assert(0 <= l && l <= r && r <= a.size(t.root), msgOutOfBounds)
	if l == r {
		return a.cfg.Monoid.Zero()
	}
	left, mid, right := a.split3(t.ref, l, r)
	s := a.sum(mid.root)
	t.ref = a.merge3(left, mid, right)
	return s
}

// AllApply applies f to every value. O(1).
func (t *Tree[S, F]) AllApply(f F) {
	a := t.live()
	if t.root != nilHandle {
		a.applyTo(t.root, f)
	}
}

// Apply applies f to the values [l,r).
func (t *Tree[S, F]) Apply(l, r int, f F) {
	a := t.live()
	assert(0 <= l && l <= r && r <= a.size(t.root), msgOutOfBounds)
	if l == r {
		return
	}
	left, mid, right := a.split3(t.ref, l, r)
	a.applyTo(mid.root, f)
	t.ref = a.merge3(left, mid, right)
}

// ReverseAll reverses the order of all values. O(1).
func (t *Tree[S, F]) ReverseAll() {
	a := t.live()
	if t.root != nilHandle {
		a.toggle(t.root)
	}
}

// Reverse reverses the order of the values [l,r).
func (t *Tree[S, F]) Reverse(l, r int) {
	a := t.live()
	assert(0 <= l && l <= r && r <= a.size(t.root), msgOutOfBounds)
	if r-l < 2 {
		return
	}
	left, mid, right := a.split3(t.ref, l, r)
	a.toggle(mid.root)
	t.ref = a.merge3(left, mid, right)
}

// MaxRight returns the largest r such that pred holds for the sum of the
// values [0,r).
//
// pred must hold for Zero() and must be monotone: once it fails for a
// prefix, it fails for every longer prefix. Violations are not detected
// and yield arbitrary results.
func (t *Tree[S, F]) MaxRight(pred func(S) bool) int {
	a := t.live()
	m := a.cfg.Monoid
	assert(pred(m.Zero()), "splay: MaxRight predicate fails for Zero()")
	n := a.size(t.root)
	if n == 0 || pred(a.sum(t.root)) {
		return n
	}
	if t.root.isLeaf() {
		return 0
	}
	// Invariant: pred fails for acc + sum of the current subtree.
	acc, pos := m.Zero(), 0
	t.root = a.splay(t.root, func(left, right handle) step {
		next := m.Add(acc, a.sum(left))
		if !pred(next) {
			if left.isLeaf() {
				return stepStop
			}
			return stepLeft
		}
		acc, pos = next, pos+a.size(left)
		if right.isLeaf() {
			return stepStop
		}
		return stepRight
	})
	return pos
}

// MinLeft returns the smallest l such that pred holds for the sum of the
// values [l,n). It mirrors MaxRight and has the same contract.
func (t *Tree[S, F]) MinLeft(pred func(S) bool) int {
	a := t.live()
	m := a.cfg.Monoid
	assert(pred(m.Zero()), "splay: MinLeft predicate fails for Zero()")
	n := a.size(t.root)
	if n == 0 || pred(a.sum(t.root)) {
		return 0
	}
	if t.root.isLeaf() {
		return 1
	}
	// Invariant: pred fails for sum of the current subtree + acc.
	acc, cnt := m.Zero(), 0
	t.root = a.splay(t.root, func(left, right handle) step {
		next := m.Add(a.sum(right), acc)
		if !pred(next) {
			if right.isLeaf() {
				return stepStop
			}
			return stepRight
		}
		acc, cnt = next, cnt+a.size(right)
		if left.isLeaf() {
			return stepStop
		}
		return stepLeft
	})
	return n - cnt
}
