/*
Package monoid provides ready-made algebras for splay trees: monoids to
aggregate values and actions to update ranges of values lazily.

Monoids:
  - Sum[T], Min[T], Max[T] on plain numbers,
  - SizedSum[T] on Sized[T] values, which carry their element count so that
    actions can scale with the length of a range,
  - Chain[T] on Path[T] values, composing affine maps along a sequence. Chain
    implements Reverse, because reversing a path changes the composed map.

Actions:
  - Add[T] shifts every element of a Sized[T] range,
  - Offset[T] shifts plain numbers (for use with Min or Max),
  - AffineAction[T] maps every element x of a Sized[T] range to a*x+b.

All types are stateless apart from identity elements which cannot be
derived generically, like the top element of Min.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package monoid

import "golang.org/x/exp/constraints"

// Number is the set of element types the numeric algebras work on.
type Number interface {
	constraints.Integer | constraints.Float
}
