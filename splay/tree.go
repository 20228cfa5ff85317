package splay

// ref is the bare tree handle: a root and the one spare internal node the
// tree carries. An empty tree has neither.
type ref struct {
	root  handle
	spare handle
}

// Tree is a sequence of values stored in an Arena.
//
// The zero value is not usable; trees are created by an arena's Empty, Leaf
// and Build methods. Merge and Split consume their operands: afterwards the
// operands are invalid and any further use panics.
type Tree[S, F any] struct {
	arena *Arena[S, F]
	ref
}

func (a *Arena[S, F]) wrap(r ref) *Tree[S, F] {
	return &Tree[S, F]{arena: a, ref: r}
}

// live returns the tree's arena, panicking if t has been consumed.
func (t *Tree[S, F]) live() *Arena[S, F] {
	assert(t != nil && t.arena != nil, msgConsumed)
	return t.arena
}

// consume invalidates t and returns its handle.
func (t *Tree[S, F]) consume(a *Arena[S, F]) ref {
	assert(t.live() == a, msgForeignTree)
	r := t.ref
	t.arena, t.ref = nil, ref{}
	return r
}

// Arena returns the arena t lives in.
func (t *Tree[S, F]) Arena() *Arena[S, F] {
	return t.live()
}

// IsConsumed reports whether t has been consumed by Merge or Split.
func (t *Tree[S, F]) IsConsumed() bool {
	return t == nil || t.arena == nil
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[S, F]) IsEmpty() bool {
	t.live()
	return t.root == nilHandle
}

// Len returns the number of values in the tree.
func (t *Tree[S, F]) Len() int {
	return t.live().size(t.root)
}

// --- Construction ----------------------------------------------------------

// Empty returns a new empty tree.
func (a *Arena[S, F]) Empty() *Tree[S, F] {
	return a.wrap(ref{})
}

// Leaf returns a new tree holding the single value v.
func (a *Arena[S, F]) Leaf(v S) *Tree[S, F] {
	return a.wrap(a.leaf(v))
}

// Build returns a new tree holding values in order. The tree is balanced
// by construction; building takes O(n).
func (a *Arena[S, F]) Build(values ...S) *Tree[S, F] {
	r := a.build(values, 0, len(values))
	if len(values) > 1 {
		tracer().Debugf("splay: built tree of %d values", len(values))
	}
	return a.wrap(r)
}

func (a *Arena[S, F]) leaf(v S) ref {
	i := a.alloc(v)
	return ref{root: leafHandle(i), spare: innerHandle(i)}
}

// build bisects values[lo:hi] and merges the halves.
func (a *Arena[S, F]) build(values []S, lo, hi int) ref {
	switch hi - lo {
	case 0:
		return ref{}
	case 1:
		return a.leaf(values[lo])
	}
	mid := lo + (hi-lo)/2
	return a.merge(a.build(values, lo, mid), a.build(values, mid, hi))
}

// --- Merge and split -------------------------------------------------------

// Merge concatenates l and r and returns the combined tree. Both operands are
// consumed. Merge takes O(1) and does not allocate nodes.
func (a *Arena[S, F]) Merge(l, r *Tree[S, F]) *Tree[S, F] {
	assert(l != r, "splay: cannot merge a tree with itself")
	lr, rr := l.consume(a), r.consume(a)
	return a.wrap(a.merge(lr, rr))
}

// merge materializes l's spare as the new root above both trees. The
// result carries r's spare.
func (a *Arena[S, F]) merge(l, r ref) ref {
	if l.root == nilHandle {
		return r
	}
	if r.root == nilHandle {
		return l
	}
	h := l.spare
	n := a.node(h)
	n.left, n.right = l.root, r.root
	n.rev, n.pending = false, false
	n.lazy = a.cfg.Action.Identity()
	a.update(h)
	return ref{root: h, spare: r.spare}
}

func (a *Arena[S, F]) merge3(l, m, r ref) ref {
	return a.merge(a.merge(l, m), r)
}

// Split divides t into the first k values and the rest. t is consumed.
// It panics unless 0 <= k <= t.Len().
func (t *Tree[S, F]) Split(k int) (*Tree[S, F], *Tree[S, F]) {
	a := t.live()
	assert(k >= 0 && k <= a.size(t.root), msgOutOfBounds)
	l, r := a.split(t.consume(a), k)
	return a.wrap(l), a.wrap(r)
}

// split splays the node separating k values to the root and detaches its
// children. The vacated root becomes the spare of the left part.
func (a *Arena[S, F]) split(t ref, k int) (ref, ref) {
	switch k {
	case 0:
		return ref{}, t
	case a.size(t.root):
		return t, ref{}
	}
	root := a.splay(t.root, a.indexStep(k))
	n := a.node(root)
	return ref{root: n.left, spare: root}, ref{root: n.right, spare: t.spare}
}

// split3 cuts t into [0,l), [l,r) and [r,n).
func (a *Arena[S, F]) split3(t ref, l, r int) (ref, ref, ref) {
	left, rest := a.split(t, l)
	mid, right := a.split(rest, r-l)
	return left, mid, right
}

// --- Editing ---------------------------------------------------------------

// Insert inserts v before position k, 0 <= k <= t.Len().
func (t *Tree[S, F]) Insert(k int, v S) {
	a := t.live()
	assert(k >= 0 && k <= a.size(t.root), msgOutOfBounds)
	l, r := a.split(t.ref, k)
	t.ref = a.merge3(l, a.leaf(v), r)
}

// InsertTree moves all values of other into t before position k. other is
// consumed.
func (t *Tree[S, F]) InsertTree(k int, other *Tree[S, F]) {
	a := t.live()
	assert(t != other, "splay: cannot insert a tree into itself")
	assert(k >= 0 && k <= a.size(t.root), msgOutOfBounds)
	m := other.consume(a)
	l, r := a.split(t.ref, k)
	t.ref = a.merge3(l, m, r)
}

// Erase removes the value at position k and returns it. The storage of the
// erased value is not reclaimed.
func (t *Tree[S, F]) Erase(k int) S {
	a := t.live()
	assert(k >= 0 && k < a.size(t.root), msgOutOfBounds)
	l, m, r := a.split3(t.ref, k, k+1)
	v := a.slots[m.root.slot()].value
	t.ref = a.merge(l, r)
	return v
}

// Cut removes the values [l,r) from t and returns them as a new tree.
func (t *Tree[S, F]) Cut(l, r int) *Tree[S, F] {
	a := t.live()
	assert(0 <= l && l <= r && r <= a.size(t.root), msgOutOfBounds)
	left, mid, right := a.split3(t.ref, l, r)
	t.ref = a.merge(left, right)
	return a.wrap(mid)
}
