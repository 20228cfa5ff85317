/*
Package ordmap implements an ordered map with order statistics.

Entries are kept sorted by key in a splay tree. Every subtree caches the
number of its entries and its largest key, which lets the map answer rank
queries ("how many keys are smaller than k?") and selection queries ("which
is the i-th key?") in logarithmic amortized time.

Maps are not safe for concurrent use.
*/
package ordmap

import (
	"errors"
	"iter"

	"github.com/npillmayer/lazyseq/splay"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrIndexOutOfBounds is returned by Kth for a rank outside the map.
var ErrIndexOutOfBounds = errors.New("ordmap: index out of bounds")

// cell is both an entry and the summary of a run of entries. For a run,
// max is the largest key and value is meaningless.
type cell[K constraints.Ordered, V any] struct {
	max   K
	count int
	value V
}

type cells[K constraints.Ordered, V any] struct{}

func (cells[K, V]) Zero() cell[K, V] { return cell[K, V]{} }

// Add relies on runs being sorted: the right operand holds the larger keys.
func (cells[K, V]) Add(left, right cell[K, V]) cell[K, V] {
	switch {
	case left.count == 0:
		return right
	case right.count == 0:
		return left
	}
	return cell[K, V]{max: right.max, count: left.count + right.count}
}

// Map is an ordered map from keys K to values V.
type Map[K constraints.Ordered, V any] struct {
	tree *splay.Tree[cell[K, V], splay.NoAction]
}

// New creates an empty map.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	arena, err := splay.New(splay.Config[cell[K, V], splay.NoAction]{
		Monoid: cells[K, V]{},
	})
	if err != nil {
		panic(err)
	}
	return &Map[K, V]{tree: arena.Empty()}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Rank returns the number of keys smaller than k. This is the position k
// has or would have in the sorted sequence of keys.
func (m *Map[K, V]) Rank(k K) int {
	return m.tree.MaxRight(func(c cell[K, V]) bool {
		return c.count == 0 || c.max < k
	})
}

// find returns the position of k and whether k is present.
func (m *Map[K, V]) find(k K) (int, bool) {
	i := m.Rank(k)
	if i == m.tree.Len() {
		return i, false
	}
	return i, m.tree.Get(i).max == k
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	i, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.tree.Get(i).value, true
}

// Put stores v for k, replacing a previous value. It reports whether k has
// been newly added.
func (m *Map[K, V]) Put(k K, v V) bool {
	i, ok := m.find(k)
	c := cell[K, V]{max: k, count: 1, value: v}
	if ok {
		m.tree.Set(i, c)
		return false
	}
	m.tree.Insert(i, c)
	return true
}

// Delete removes k and returns the value it was mapped to.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	i, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.tree.Erase(i).value, true
}

// Kth returns the entry with rank i, i.e. the i-th smallest key.
func (m *Map[K, V]) Kth(i int) (K, V, error) {
	if i < 0 || i >= m.tree.Len() {
		var k K
		var v V
		return k, v, ErrIndexOutOfBounds
	}
	c := m.tree.Get(i)
	return c.max, c.value, nil
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.ForEach(func(c cell[K, V]) bool {
		keys = append(keys, c.max)
		return true
	})
	return keys
}

// All returns an iterator over all entries in ascending key order.
//
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.ForEach(func(c cell[K, V]) bool {
			return yield(c.max, c.value)
		})
	}
}

// Range returns an iterator over the entries with from <= key < to, in
// ascending key order.
//
// The range is cut out of the map for the duration of the iteration; the
// map must not be used until the iteration has finished.
func (m *Map[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if to <= from {
			return
		}
		lo, hi := m.Rank(from), m.Rank(to)
		if lo == hi {
			return
		}
		tracer().Debugf("ordmap: range of %d entries", hi-lo)
		segment := m.tree.Cut(lo, hi)
		defer m.tree.InsertTree(lo, segment)
		segment.ForEach(func(c cell[K, V]) bool {
			return yield(c.max, c.value)
		})
	}
}
