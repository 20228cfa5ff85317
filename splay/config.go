package splay

import "fmt"

// Monoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add must be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Neither property is checked at runtime.
type Monoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Action describes how actions of type F transform values of type S.
//
// Apply must distribute over the monoid:
//
//	Apply(f, Add(s, t)) == Add(Apply(f, s), Apply(f, t))
//
// Compose(outer, inner) yields the action which applies inner first and
// outer afterwards. Identity must leave every value unchanged.
type Action[S, F any] interface {
	Identity() F
	Apply(f F, s S) S
	Compose(outer, inner F) F
}

// Reverser is an optional capability of a Monoid. Values of monoids which
// encode the direction of composition (for example, composed maps along a
// path) must be transformed when a range is reversed. Reverse receives the
// aggregate of a whole range and returns the aggregate of the reversed range.
//
// Reverse is never called for a single value, as a leaf is its own
// reversal. It must therefore be the identity on single values.
//
// Monoids which are commutative with respect to order reversal (sums, minima)
// should not implement Reverser.
type Reverser[S any] interface {
	Reverse(s S) S
}

// NoAction is the action type for trees without range updates.
type NoAction struct{}

// NoOp is the trivial action of NoAction on any value type.
type NoOp[S any] struct{}

// Identity returns the only action.
func (NoOp[S]) Identity() NoAction { return NoAction{} }

// Apply leaves s unchanged.
func (NoOp[S]) Apply(_ NoAction, s S) S { return s }

// Compose returns the only action.
func (NoOp[S]) Compose(_, _ NoAction) NoAction { return NoAction{} }

// Config configures the algebra of all trees of an Arena.
type Config[S, F any] struct {
	// Monoid aggregates values up the tree. It may implement Reverser[S].
	Monoid Monoid[S]
	// Action applies pending range updates. It may be omitted if F is NoAction.
	Action Action[S, F]
}

func (cfg Config[S, F]) normalized() Config[S, F] {
	if cfg.Action == nil {
		if noop, ok := any(NoOp[S]{}).(Action[S, F]); ok {
			cfg.Action = noop
		}
	}
	return cfg
}

func (cfg Config[S, F]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Action == nil {
		return fmt.Errorf("%w: action is required for action type %T", ErrInvalidConfig, *new(F))
	}
	return nil
}

// Option configures an Arena.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-sizes the arena for n leaves.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
