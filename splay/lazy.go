package splay

// update recomputes size and sum of an internal node from its children.
func (a *Arena[S, F]) update(h handle) {
	n := a.node(h)
	n.size = a.size(n.left) + a.size(n.right)
	n.sum = a.cfg.Monoid.Add(a.sum(n.left), a.sum(n.right))
}

// applyTo applies f to the whole subtree at h. Leaves are transformed
// immediately, internal nodes transform their sum and defer f for their
// children.
func (a *Arena[S, F]) applyTo(h handle, f F) {
	if h.isLeaf() {
		s := &a.slots[h.slot()]
		s.value = a.cfg.Action.Apply(f, s.value)
		return
	}
	n := a.node(h)
	n.sum = a.cfg.Action.Apply(f, n.sum)
	if n.pending {
		n.lazy = a.cfg.Action.Compose(f, n.lazy)
	} else {
		n.lazy = f
		n.pending = true
	}
}

// toggle reverses the subtree at h. The children are swapped right away,
// reversing them is deferred. A single leaf is its own reversal.
func (a *Arena[S, F]) toggle(h handle) {
	if h.isLeaf() {
		return
	}
	n := a.node(h)
	n.left, n.right = n.right, n.left
	n.rev = !n.rev
	if a.rev != nil {
		n.sum = a.rev.Reverse(n.sum)
	}
}

// push hands the pending state of an internal node down to its children.
func (a *Arena[S, F]) push(h handle) {
	n := a.node(h)
	if n.rev {
		a.toggle(n.left)
		a.toggle(n.right)
		n.rev = false
	}
	if n.pending {
		a.applyTo(n.left, n.lazy)
		a.applyTo(n.right, n.lazy)
		n.lazy = a.cfg.Action.Identity()
		n.pending = false
	}
}
