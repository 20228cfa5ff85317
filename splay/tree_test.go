package splay

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/lazyseq/monoid"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// redirectTracing sends core tracing to t for the duration of the test.
func redirectTracing(t *testing.T) {
	t.Helper()
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	t.Cleanup(func() {
		gtrace.CoreTracer = saved
	})
}

type sumTree = Tree[monoid.Sized[int], int]

func newSumArena(t *testing.T) *Arena[monoid.Sized[int], int] {
	t.Helper()
	a, err := New(Config[monoid.Sized[int], int]{
		Monoid: monoid.SizedSum[int]{},
		Action: monoid.Add[int]{},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func ints(tree *sumTree) []int {
	var out []int
	tree.ForEach(func(v monoid.Sized[int]) bool {
		out = append(out, v.Sum)
		return true
	})
	return out
}

func checked(t *testing.T, tree *sumTree) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
	_, err = New(Config[int, int]{Monoid: monoid.Sum[int]{}})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing action, got %v", err)
	}
}

func TestNewDefaultsNoAction(t *testing.T) {
	a, err := New(Config[int, NoAction]{Monoid: monoid.Sum[int]{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Config().Action == nil {
		t.Fatalf("expected NoOp action to be set in normalized config")
	}
	tree := a.Build(1, 2, 3)
	tree.AllApply(NoAction{})
	if tree.AllProd() != 6 {
		t.Fatalf("sum = %d, want 6", tree.AllProd())
	}
}

func TestTracingOutlivesRedirectedTest(t *testing.T) {
	a := newSumArena(t)
	values := monoid.Ones(make([]int, 17)...)
	t.Run("redirected", func(t *testing.T) {
		redirectTracing(t)
		a.Build(values...)
	})
	// logs again after the redirected test has completed
	tree := a.Build(values...)
	if tree.Len() != 17 {
		t.Fatalf("len = %d, want 17", tree.Len())
	}
}

func TestBuildRoundTrip(t *testing.T) {
	redirectTracing(t)
	//
	a := newSumArena(t)
	for n := 0; n < 40; n++ {
		want := make([]int, n)
		for i := range want {
			want[i] = i * 7
		}
		tree := a.Build(monoid.Ones(want...)...)
		checked(t, tree)
		if got := ints(tree); !slices.Equal(got, want) {
			t.Fatalf("n=%d: got %v, want %v", n, got, want)
		}
		if tree.Len() != n {
			t.Fatalf("n=%d: Len = %d", n, tree.Len())
		}
	}
}

func TestScenarioSplitMerge(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3, 4, 5)...)
	if got := tree.AllProd().Sum; got != 15 {
		t.Fatalf("all_prod = %d, want 15", got)
	}
	left, right := tree.Split(2)
	checked(t, left)
	checked(t, right)
	if got := ints(left); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("left = %v", got)
	}
	if got := ints(right); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("right = %v", got)
	}
	if !tree.IsConsumed() {
		t.Fatalf("split operand should be consumed")
	}
	merged := a.Merge(left, right)
	checked(t, merged)
	if got := ints(merged); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("merged = %v", got)
	}
	if !left.IsConsumed() || !right.IsConsumed() {
		t.Fatalf("merge operands should be consumed")
	}
}

func TestScenarioRangeAdd(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3, 4, 5)...)
	tree.Apply(1, 4, 10)
	checked(t, tree)
	if got := ints(tree); !slices.Equal(got, []int{1, 12, 13, 14, 5}) {
		t.Fatalf("after apply = %v", got)
	}
	if got := tree.Prod(1, 3).Sum; got != 25 {
		t.Fatalf("prod(1,3) = %d, want 25", got)
	}
}

func TestScenarioMaxWithOffset(t *testing.T) {
	a, err := New(Config[int, int]{
		Monoid: monoid.Max[int]{Bottom: math.MinInt},
		Action: monoid.Offset[int]{},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree := a.Build(4, -2, 9, 3)
	before := tree.AllProd()
	tree.Apply(0, tree.Len(), 10)
	if got := tree.AllProd(); got != before+10 {
		t.Fatalf("max after +10 = %d, want %d", got, before+10)
	}
	tree.AllApply(-3)
	if got := tree.Prod(1, 2); got != 5 {
		t.Fatalf("prod(1,2) = %d, want 5", got)
	}
}

func TestSplitBoundaries(t *testing.T) {
	a := newSumArena(t)
	want := []int{5, 6, 7, 8, 9, 10, 11}
	for k := 0; k <= len(want); k++ {
		tree := a.Build(monoid.Ones(want...)...)
		l, r := tree.Split(k)
		checked(t, l)
		checked(t, r)
		if l.Len() != k || r.Len() != len(want)-k {
			t.Fatalf("k=%d: sizes %d/%d", k, l.Len(), r.Len())
		}
		m := a.Merge(l, r)
		checked(t, m)
		if got := ints(m); !slices.Equal(got, want) {
			t.Fatalf("k=%d: merge(split) = %v", k, got)
		}
	}
}

func TestInsertEraseGetSet(t *testing.T) {
	a := newSumArena(t)
	tree := a.Empty()
	for i := 0; i < 10; i++ {
		tree.Insert(tree.Len(), monoid.One(i))
	}
	tree.Insert(0, monoid.One(-1))
	tree.Insert(5, monoid.One(100))
	checked(t, tree)
	want := []int{-1, 0, 1, 2, 3, 100, 4, 5, 6, 7, 8, 9}
	if got := ints(tree); !slices.Equal(got, want) {
		t.Fatalf("after inserts = %v", got)
	}
	for i, w := range want {
		if got := tree.Get(i).Sum; got != w {
			t.Fatalf("Get(%d) = %d, want %d", i, got, w)
		}
	}
	tree.Set(5, monoid.One(50))
	if got := tree.AllProd().Sum; got != 44+50 {
		t.Fatalf("sum after set = %d, want %d", got, 44+50)
	}
	if v := tree.Erase(5); v.Sum != 50 {
		t.Fatalf("erased %d, want 50", v.Sum)
	}
	checked(t, tree)
	if got := tree.AllProd().Sum; got != 44 {
		t.Fatalf("sum after erase = %d, want 44", got)
	}
}

func TestSingleLeafTree(t *testing.T) {
	a := newSumArena(t)
	tree := a.Leaf(monoid.One(3))
	checked(t, tree)
	tree.Set(0, monoid.One(4))
	tree.AllApply(1)
	tree.ReverseAll()
	if got := tree.Get(0).Sum; got != 5 {
		t.Fatalf("Get(0) = %d, want 5", got)
	}
	if got := tree.MaxRight(func(s monoid.Sized[int]) bool { return s.Sum < 5 }); got != 0 {
		t.Fatalf("MaxRight = %d, want 0", got)
	}
	if got := tree.Erase(0).Sum; got != 5 || !tree.IsEmpty() {
		t.Fatalf("Erase(0) = %d, empty=%v", got, tree.IsEmpty())
	}
	checked(t, tree)
}

func TestReverse(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(0, 1, 2, 3, 4, 5, 6, 7, 8)...)
	tree.ReverseAll()
	if got := ints(tree); !slices.Equal(got, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}) {
		t.Fatalf("reversed = %v", got)
	}
	tree.ReverseAll()
	tree.Reverse(2, 6)
	checked(t, tree)
	if got := ints(tree); !slices.Equal(got, []int{0, 1, 5, 4, 3, 2, 6, 7, 8}) {
		t.Fatalf("range reversed = %v", got)
	}
	tree.Apply(0, 3, 100)
	tree.Reverse(0, 9)
	if got := ints(tree); !slices.Equal(got, []int{8, 7, 6, 2, 3, 4, 105, 101, 100}) {
		t.Fatalf("reverse after apply = %v", got)
	}
}

func TestExplicitReversal(t *testing.T) {
	a, err := New(Config[monoid.Path[int], NoAction]{Monoid: monoid.Chain[int]{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree := a.Build(
		monoid.Step(monoid.Affine[int]{A: 2, B: 0}),
		monoid.Step(monoid.Affine[int]{A: 1, B: 3}),
		monoid.Step(monoid.Affine[int]{A: -1, B: 1}),
	)
	if got := tree.AllProd().Eval(1); got != -4 { // ((1*2)+3)*-1+1
		t.Fatalf("forward = %d, want -4", got)
	}
	tree.ReverseAll()
	if got := tree.AllProd().Eval(1); got != 6 { // ((-1+1)+3)*2
		t.Fatalf("reversed = %d, want 6", got)
	}
	if got := tree.Prod(0, 2).Eval(1); got != 3 { // (-1+1)=0, 0+3=3
		t.Fatalf("prod of reversed prefix = %d, want 3", got)
	}
	tree.Reverse(1, 3)
	// order now: [-x+1], [2x], [x+3]
	if got := tree.AllProd().Eval(1); got != 3 {
		t.Fatalf("after range reverse = %d, want 3", got)
	}
}

func TestReverseLeavesSingleValues(t *testing.T) {
	a, err := New(Config[monoid.Path[int], NoAction]{Monoid: monoid.Chain[int]{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	step := monoid.Step(monoid.Affine[int]{A: 2, B: 5})
	single := a.Leaf(step)
	single.ReverseAll()
	if got := single.Get(0); got != step {
		t.Fatalf("reversed single value = %+v, want %+v", got, step)
	}
	tree := a.Build(step, monoid.Step(monoid.Affine[int]{A: 3, B: 0}))
	tree.Reverse(0, 1)
	if got := tree.Get(0); got != step {
		t.Fatalf("value after reversing [0,1) = %+v, want %+v", got, step)
	}
	if got := tree.AllProd().Eval(1); got != 21 { // (1*2+5)*3
		t.Fatalf("sum after reversing [0,1) = %d, want 21", got)
	}
}

func TestMaxRightMinLeft(t *testing.T) {
	a := newSumArena(t)
	vals := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	tree := a.Build(monoid.Ones(vals...)...)
	for limit := 0; limit <= 45; limit++ {
		want, acc := 0, 0
		for want < len(vals) && acc+vals[want] <= limit {
			acc += vals[want]
			want++
		}
		got := tree.MaxRight(func(s monoid.Sized[int]) bool { return s.Sum <= limit })
		if got != want {
			t.Fatalf("MaxRight(sum<=%d) = %d, want %d", limit, got, want)
		}
		want, acc = len(vals), 0
		for want > 0 && acc+vals[want-1] <= limit {
			acc += vals[want-1]
			want--
		}
		got = tree.MinLeft(func(s monoid.Sized[int]) bool { return s.Sum <= limit })
		if got != want {
			t.Fatalf("MinLeft(sum<=%d) = %d, want %d", limit, got, want)
		}
		checked(t, tree)
	}
	if got := ints(tree); !slices.Equal(got, vals) {
		t.Fatalf("searches changed the sequence: %v", got)
	}
}

func TestCutAndInsertTree(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(0, 1, 2, 3, 4, 5)...)
	mid := tree.Cut(1, 4)
	checked(t, tree)
	checked(t, mid)
	if got := ints(mid); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("cut = %v", got)
	}
	if got := ints(tree); !slices.Equal(got, []int{0, 4, 5}) {
		t.Fatalf("rest = %v", got)
	}
	tree.InsertTree(3, mid)
	if !mid.IsConsumed() {
		t.Fatalf("inserted tree should be consumed")
	}
	if got := ints(tree); !slices.Equal(got, []int{0, 4, 5, 1, 2, 3}) {
		t.Fatalf("after InsertTree = %v", got)
	}
}

func TestConsumedTreePanics(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3)...)
	l, r := tree.Split(1)
	_ = a.Merge(l, r)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use of consumed tree")
		}
	}()
	_ = l.Len()
}

func TestForeignTreePanics(t *testing.T) {
	a, b := newSumArena(t), newSumArena(t)
	x, y := a.Build(monoid.Ones(1)...), b.Build(monoid.Ones(2)...)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on merge across arenas")
		}
	}()
	_ = a.Merge(x, y)
}

func TestOutOfBoundsPanics(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3)...)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-bounds index")
		}
	}()
	tree.Get(3)
}

func TestSpareAccounting(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3, 4)...)
	slots := a.Len()
	l, r := tree.Split(2)
	tree = a.Merge(r, l)
	tree.Apply(0, 4, 1)
	_ = tree.Prod(1, 3)
	if a.Len() != slots {
		t.Fatalf("split/merge/apply allocated slots: %d -> %d", slots, a.Len())
	}
	tree.Insert(2, monoid.One(0))
	_ = tree.Erase(2)
	if a.Len() != slots+1 {
		t.Fatalf("insert should allocate exactly one slot, have %d", a.Len()-slots)
	}
	checked(t, tree)
}

func TestWalkReportsPendingState(t *testing.T) {
	a := newSumArena(t)
	tree := a.Build(monoid.Ones(1, 2, 3, 4)...)
	tree.AllApply(1)
	tree.ReverseAll()
	var nodes []Node[monoid.Sized[int]]
	if err := tree.Walk(func(n Node[monoid.Sized[int]]) error {
		nodes = append(nodes, n)
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(nodes) != 7 {
		t.Fatalf("expected 7 nodes, got %d", len(nodes))
	}
	root := nodes[0]
	if root.Leaf || !root.Reversed || !root.Pending || root.Sum.Sum != 14 || root.Depth != 0 {
		t.Fatalf("unexpected root %+v", root)
	}
}
