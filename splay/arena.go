package splay

import "math"

// handle addresses a node inside an arena. The lowest bit tags leaves, the
// remaining bits hold the slot index. Slot 0 is reserved, making the zero
// handle the nil handle.
type handle uint32

const nilHandle handle = 0

const maxSlots = math.MaxUint32 >> 1

func leafHandle(slot int) handle  { return handle(slot)<<1 | 1 }
func innerHandle(slot int) handle { return handle(slot) << 1 }

func (h handle) isLeaf() bool { return h&1 == 1 }
func (h handle) slot() int    { return int(h >> 1) }

type innerNode[S, F any] struct {
	left, right handle
	size        int
	// rev is set if the children still have to be reversed. The children
	// of n are already swapped when rev is set.
	rev bool
	// pending is set if lazy has to be applied to the children.
	pending bool
	// sum is valid for this node, including its own pending state.
	sum  S
	lazy F
}

// slot holds a leaf value and the capacity for one internal node.
type slot[S, F any] struct {
	value S
	inner innerNode[S, F]
}

// Stats counts splay work, for testing the amortized bounds.
type Stats struct {
	Splays int // number of splay passes
	Steps  int // number of nodes visited by splay passes
}

// Arena is the backing store for a family of trees sharing one algebra.
//
// Trees of the same arena may be merged with each other. The arena grows by
// one slot per leaf ever created and never shrinks.
type Arena[S, F any] struct {
	cfg   Config[S, F]
	rev   Reverser[S] // nil for order-only reversal
	slots []slot[S, F]
	// scratch stacks for splay, re-used to keep splaying allocation-free
	lstack []handle
	rstack []handle
	stats  Stats
}

// New creates an empty arena with validated configuration.
func New[S, F any](cfg Config[S, F], opts ...Option) (*Arena[S, F], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	a := &Arena[S, F]{
		cfg:   cfg,
		slots: make([]slot[S, F], 1, o.capacity+1),
	}
	if r, ok := cfg.Monoid.(Reverser[S]); ok {
		a.rev = r
	}
	return a, nil
}

// Config returns a copy of the effective configuration.
func (a *Arena[S, F]) Config() Config[S, F] {
	return a.cfg
}

// Len returns the number of leaves ever created in this arena.
func (a *Arena[S, F]) Len() int {
	return len(a.slots) - 1
}

// Stats returns the accumulated splay statistics.
func (a *Arena[S, F]) Stats() Stats {
	return a.stats
}

// ResetStats clears the splay statistics.
func (a *Arena[S, F]) ResetStats() {
	a.stats = Stats{}
}

// alloc appends a fresh slot holding v and returns its index.
func (a *Arena[S, F]) alloc(v S) int {
	assert(len(a.slots) < maxSlots, "splay: arena exhausted")
	oldcap := cap(a.slots)
	a.slots = append(a.slots, slot[S, F]{value: v})
	if cap(a.slots) != oldcap && cap(a.slots) >= 1<<16 {
		tracer().Debugf("splay arena grown to capacity %d", cap(a.slots))
	}
	return len(a.slots) - 1
}

func (a *Arena[S, F]) node(h handle) *innerNode[S, F] {
	return &a.slots[h.slot()].inner
}

func (a *Arena[S, F]) size(h handle) int {
	switch {
	case h == nilHandle:
		return 0
	case h.isLeaf():
		return 1
	}
	return a.node(h).size
}

func (a *Arena[S, F]) sum(h handle) S {
	switch {
	case h == nilHandle:
		return a.cfg.Monoid.Zero()
	case h.isLeaf():
		return a.slots[h.slot()].value
	}
	return a.node(h).sum
}
