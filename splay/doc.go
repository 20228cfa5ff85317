/*
Package splay provides an arena-backed, leaf-oriented splay tree over a
client-supplied monoid with lazily applied actions.

The tree stores a sequence of values in its leaves. Internal nodes cache the
monoid sum and the size of their subtree, together with a pending action and
a pending reversal flag which are pushed down to the children only when a
path is visited. All restructuring is done by a single top-down splay pass,
which gives logarithmic amortized cost for every positional operation.

Storage model:
  - all nodes of all trees of one Arena live in one append-only slice,
  - every slot holds one leaf and the capacity for one internal node,
  - nodes are addressed by integer handles, with the lowest bit tagging leaves,
  - a tree of n leaves uses n-1 internal nodes and carries exactly one spare,
    so Merge never allocates,
  - leaves are never reclaimed; erased elements keep their slot.

Algebra model:
  - `S` is the value type, aggregated with a `Monoid[S]`.
  - `F` is the action type, applied and composed by an `Action[S,F]`.
    Structures without range updates use `NoAction` and `NoOp[S]`.
  - If the monoid additionally implements `Reverser[S]`, reversal also
    transforms aggregates; otherwise reversal only swaps operand order.

Ownership: Merge and Split consume their operands. A consumed *Tree must not
be used again; doing so panics. Trees of different arenas must never be mixed.
An Arena and its trees are not safe for concurrent use.

Contract violations (out-of-range indices, l > r, consumed trees) panic.
Callers who need error values should check bounds before calling, as the
lazyseq package does.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package splay

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
