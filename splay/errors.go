package splay

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("splay: invalid configuration")
	// ErrConsumed signals use of a tree which has been consumed by Merge or Split.
	ErrConsumed = errors.New("splay: tree has been consumed")
	// ErrCorrupted signals a violated structural invariant, found by Check.
	ErrCorrupted = errors.New("splay: tree structure corrupted")
)

const (
	msgConsumed    = "splay: use of consumed tree"
	msgForeignTree = "splay: tree belongs to a different arena"
	msgOutOfBounds = "splay: index out of bounds"
)
