package splay

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/lazyseq/monoid"
)

func BenchmarkGet(b *testing.B) {
	a := newAffineArena(b)
	tree := a.Build(monoid.Ones(make([]int, 1<<16)...)...)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Get(r.Intn(1 << 16))
	}
}

func BenchmarkApplyProd(b *testing.B) {
	a := newAffineArena(b)
	tree := a.Build(monoid.Ones(make([]int, 1<<16)...)...)
	r := rand.New(rand.NewSource(1))
	f := monoid.Affine[int]{A: 1, B: 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, h := randomRange(r, 1<<16)
		tree.Apply(l, h, f)
		_ = tree.Prod(l, h)
	}
}

func BenchmarkInsertErase(b *testing.B) {
	a := newAffineArena(b)
	tree := a.Build(monoid.Ones(make([]int, 1<<12)...)...)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := r.Intn(tree.Len())
		tree.Insert(k, monoid.One(i))
		_ = tree.Erase(r.Intn(tree.Len()))
	}
}
