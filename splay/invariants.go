package splay

import "fmt"

// Check validates the structural invariants of a tree.
//
// A tree of n leaves must consist of exactly n-1 internal nodes, every
// internal node must have two children and a correct cached size, no node
// may be reachable twice, and the spare must not be part of the tree.
// Sums are not checked, as values need not be comparable.
//
// This checker is meant for tests.
func (t *Tree[S, F]) Check() error {
	if t == nil || t.arena == nil {
		return ErrConsumed
	}
	a := t.arena
	if t.root == nilHandle {
		if t.spare != nilHandle {
			return fmt.Errorf("%w: empty tree carries a spare", ErrCorrupted)
		}
		return nil
	}
	if t.spare == nilHandle || t.spare.isLeaf() {
		return fmt.Errorf("%w: non-empty tree must carry an internal spare, has %d", ErrCorrupted, t.spare)
	}
	seen := make(map[handle]bool)
	leaves, inner, err := a.checkNode(t.root, seen)
	if err != nil {
		return err
	}
	if inner != leaves-1 {
		return fmt.Errorf("%w: %d internal nodes over %d leaves", ErrCorrupted, inner, leaves)
	}
	if seen[t.spare] {
		return fmt.Errorf("%w: spare %d is in use", ErrCorrupted, t.spare)
	}
	if t.spare.slot() >= len(a.slots) {
		return fmt.Errorf("%w: spare %d outside of arena", ErrCorrupted, t.spare)
	}
	return nil
}

func (a *Arena[S, F]) checkNode(h handle, seen map[handle]bool) (leaves, inner int, err error) {
	if h == nilHandle {
		return 0, 0, fmt.Errorf("%w: nil child", ErrCorrupted)
	}
	if h.slot() >= len(a.slots) {
		return 0, 0, fmt.Errorf("%w: handle %d outside of arena", ErrCorrupted, h)
	}
	if seen[h] {
		return 0, 0, fmt.Errorf("%w: node %d reachable twice", ErrCorrupted, h)
	}
	seen[h] = true
	if h.isLeaf() {
		return 1, 0, nil
	}
	n := a.node(h)
	ll, li, err := a.checkNode(n.left, seen)
	if err != nil {
		return 0, 0, err
	}
	rl, ri, err := a.checkNode(n.right, seen)
	if err != nil {
		return 0, 0, err
	}
	if n.size != ll+rl {
		return 0, 0, fmt.Errorf("%w: node %d caches size %d, has %d leaves", ErrCorrupted, h, n.size, ll+rl)
	}
	return ll + rl, li + ri + 1, nil
}
