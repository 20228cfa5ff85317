package splay

// Get returns the value at position k, 0 <= k < t.Len().
//
// The path to the leaf is splayed, stopping at the leaf's parent: leaves
// are never rotated.
func (t *Tree[S, F]) Get(k int) S {
	a := t.live()
	assert(k >= 0 && k < a.size(t.root), msgOutOfBounds)
	if t.root.isLeaf() {
		return a.slots[t.root.slot()].value
	}
	var v S
	t.root = a.splay(t.root, a.leafStep(k, func(leaf handle) {
		v = a.slots[leaf.slot()].value
	}))
	return v
}

// Set replaces the value at position k, 0 <= k < t.Len().
func (t *Tree[S, F]) Set(k int, v S) {
	a := t.live()
	assert(k >= 0 && k < a.size(t.root), msgOutOfBounds)
	if t.root.isLeaf() {
		a.slots[t.root.slot()].value = v
		return
	}
	// the leaf is written before splay re-assembles the path, so every
	// ancestor is recomputed on the way out
	t.root = a.splay(t.root, a.leafStep(k, func(leaf handle) {
		a.slots[leaf.slot()].value = v
	}))
}
