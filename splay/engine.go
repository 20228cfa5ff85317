package splay

// step tells splay where to continue from the current node.
type step uint8

const (
	stepStop step = iota
	stepLeft
	stepRight
)

// stepFunc inspects the (already pushed) children of the current node.
// It may only return stepLeft or stepRight if the respective child is an
// internal node.
type stepFunc func(left, right handle) step

// splay restructures the subtree at h with a single top-down pass, moving
// the internal node where f stops to the top. It returns the new subtree
// root; re-attaching it to a former parent is up to the caller.
//
// Nodes left of the search path collect on lstack, waiting for a right
// child; nodes right of it collect on rstack, waiting for a left child.
// Two consecutive steps in the same direction rotate the upper node down
// before linking (zig-zig), which is what gives the amortized bound.
func (a *Arena[S, F]) splay(h handle, f stepFunc) handle {
	assert(h != nilHandle && !h.isLeaf(), "splay called on leaf or empty tree")
	a.stats.Splays++
	ls, rs := a.lstack[:0], a.rstack[:0]
	prev := stepStop // direction of an unpaired previous step, if any
	for {
		a.stats.Steps++
		a.push(h)
		n := a.node(h)
		switch f(n.left, n.right) {
		case stepLeft:
			child := n.left
			assert(!child.isLeaf(), "splay step descends into a leaf")
			if prev == stepLeft {
				p := rs[len(rs)-1]
				rs = rs[:len(rs)-1]
				a.node(p).left = n.right
				a.update(p)
				n.right = p
				prev = stepStop
			} else {
				prev = stepLeft
			}
			rs = append(rs, h)
			h = child
		case stepRight:
			child := n.right
			assert(!child.isLeaf(), "splay step descends into a leaf")
			if prev == stepRight {
				p := ls[len(ls)-1]
				ls = ls[:len(ls)-1]
				a.node(p).right = n.left
				a.update(p)
				n.left = p
				prev = stepStop
			} else {
				prev = stepRight
			}
			ls = append(ls, h)
			h = child
		default:
			l, r := n.left, n.right
			for i := len(ls) - 1; i >= 0; i-- {
				a.node(ls[i]).right = l
				a.update(ls[i])
				l = ls[i]
			}
			for i := len(rs) - 1; i >= 0; i-- {
				a.node(rs[i]).left = r
				a.update(rs[i])
				r = rs[i]
			}
			n.left, n.right = l, r
			a.update(h)
			a.lstack, a.rstack = ls[:0], rs[:0]
			return h
		}
	}
}

// indexStep routes to the internal node whose left subtree holds exactly
// k leaves. It requires 0 < k < size of the subtree being splayed.
func (a *Arena[S, F]) indexStep(k int) stepFunc {
	return func(left, _ handle) step {
		ls := a.size(left)
		switch {
		case k == ls:
			return stepStop
		case k < ls:
			return stepLeft
		}
		k -= ls
		return stepRight
	}
}

// leafStep routes to the parent of leaf k and stops there, calling visit
// with the leaf before the path is re-assembled. The leaf is up to date
// when visited and may be modified by visit.
func (a *Arena[S, F]) leafStep(k int, visit func(leaf handle)) stepFunc {
	return func(left, right handle) step {
		ls := a.size(left)
		if k < ls {
			if left.isLeaf() {
				visit(left)
				return stepStop
			}
			return stepLeft
		}
		k -= ls
		if right.isLeaf() {
			visit(right)
			return stepStop
		}
		return stepRight
	}
}
