package splay

// ForEach walks the values in order, pushing pending state on the way.
//
// Iteration stops early if fn returns false. fn must not modify t.
func (t *Tree[S, F]) ForEach(fn func(v S) bool) {
	t.walk(fn, false)
}

// ForEachBackward walks the values in reverse order.
func (t *Tree[S, F]) ForEachBackward(fn func(v S) bool) {
	t.walk(fn, true)
}

func (t *Tree[S, F]) walk(fn func(v S) bool, backward bool) {
	a := t.live()
	if t.root == nilHandle || fn == nil {
		return
	}
	stack := []handle{t.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if h.isLeaf() {
			if !fn(a.slots[h.slot()].value) {
				return
			}
			continue
		}
		a.push(h)
		n := a.node(h)
		if backward {
			stack = append(stack, n.left, n.right)
		} else {
			stack = append(stack, n.right, n.left)
		}
	}
}

// Values returns all values in order.
func (t *Tree[S, F]) Values() []S {
	out := make([]S, 0, t.Len())
	t.ForEach(func(v S) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Node describes one node of a tree to structural visitors.
//
// IDs are unique within an arena. A leaf's Sum is its value. Pending state
// is reported as stored, i.e. not yet pushed to the children.
type Node[S any] struct {
	ID          int
	Leaf        bool
	Left, Right int // child IDs; 0 for leaves
	Depth       int
	Size        int
	Sum         S
	Reversed    bool // children still to be reversed
	Pending     bool // an action is still to be applied to the children
}

// Walk visits the nodes of t in pre-order without pushing pending state.
// It is meant for debugging output. Walking stops at the first error fn
// returns, and that error is returned.
func (t *Tree[S, F]) Walk(fn func(Node[S]) error) error {
	a := t.live()
	if t.root == nilHandle {
		return nil
	}
	type item struct {
		h     handle
		depth int
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := Node[S]{
			ID:    int(it.h),
			Leaf:  it.h.isLeaf(),
			Depth: it.depth,
			Size:  a.size(it.h),
			Sum:   a.sum(it.h),
		}
		if !node.Leaf {
			n := a.node(it.h)
			node.Left, node.Right = int(n.left), int(n.right)
			node.Reversed, node.Pending = n.rev, n.pending
			stack = append(stack, item{n.right, it.depth + 1}, item{n.left, it.depth + 1})
		}
		if err := fn(node); err != nil {
			return err
		}
	}
	return nil
}
