/*
Package grid implements a two-dimensional table with rectangle updates and
rectangle queries.

A grid has a fixed set of row coordinates, given at creation time, and a
number of columns which may change by inserting or erasing whole columns.
Row coordinates are arbitrary integers; they are compressed to row indices
internally. Every row is a sequence in one shared splay arena, so that a
rectangle operation touching h rows costs O(h log n) amortized.

Grids are not safe for concurrent use.
*/
package grid

import (
	"errors"
	"slices"

	"github.com/npillmayer/lazyseq/splay"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrUnknownRow is returned for a row coordinate the grid has not been
	// created with.
	ErrUnknownRow = errors.New("grid: unknown row coordinate")
	// ErrColumnOutOfBounds is returned for column indices outside the grid.
	ErrColumnOutOfBounds = errors.New("grid: column out of bounds")
	// ErrIllegalRectangle is returned for rectangles with negative extent.
	ErrIllegalRectangle = errors.New("grid: illegal rectangle")
)

// Grid is a table of values of type S, updatable by actions of type F.
type Grid[S, F any] struct {
	arena  *splay.Arena[S, F]
	coords []int              // sorted, unique row coordinates
	rows   []*splay.Tree[S, F] // rows[i] holds row coords[i]
	cols   int
}

// New creates a grid with one row per distinct coordinate in rows and cols
// columns, every cell set to init.
func New[S, F any](cfg splay.Config[S, F], rows []int, cols int, init S) (*Grid[S, F], error) {
	if cols < 0 {
		return nil, ErrColumnOutOfBounds
	}
	coords := slices.Clone(rows)
	slices.Sort(coords)
	coords = slices.Compact(coords)
	arena, err := splay.New(cfg, splay.WithCapacity(len(coords)*cols))
	if err != nil {
		return nil, err
	}
	g := &Grid[S, F]{
		arena:  arena,
		coords: coords,
		rows:   make([]*splay.Tree[S, F], len(coords)),
		cols:   cols,
	}
	line := make([]S, cols)
	for i := range line {
		line[i] = init
	}
	for i := range g.rows {
		g.rows[i] = arena.Build(line...)
	}
	tracer().Debugf("grid: created %d×%d grid", len(coords), cols)
	return g, nil
}

// Rows returns the row coordinates in ascending order.
func (g *Grid[S, F]) Rows() []int {
	return slices.Clone(g.coords)
}

// Cols returns the number of columns.
func (g *Grid[S, F]) Cols() int {
	return g.cols
}

func (g *Grid[S, F]) row(r int) (*splay.Tree[S, F], error) {
	i, ok := slices.BinarySearch(g.coords, r)
	if !ok {
		return nil, ErrUnknownRow
	}
	return g.rows[i], nil
}

// span maps the coordinate range [r1,r2) to row indices.
func (g *Grid[S, F]) span(r1, r2 int) (int, int) {
	lo, _ := slices.BinarySearch(g.coords, r1)
	hi, _ := slices.BinarySearch(g.coords, r2)
	return lo, hi
}

func (g *Grid[S, F]) checkCols(c1, c2 int) error {
	if c1 > c2 {
		return ErrIllegalRectangle
	}
	if c1 < 0 || c2 > g.cols {
		return ErrColumnOutOfBounds
	}
	return nil
}

// Get returns the value at row coordinate r, column c.
func (g *Grid[S, F]) Get(r, c int) (S, error) {
	var zero S
	t, err := g.row(r)
	if err != nil {
		return zero, err
	}
	if c < 0 || c >= g.cols {
		return zero, ErrColumnOutOfBounds
	}
	return t.Get(c), nil
}

// Set replaces the value at row coordinate r, column c.
func (g *Grid[S, F]) Set(r, c int, v S) error {
	t, err := g.row(r)
	if err != nil {
		return err
	}
	if c < 0 || c >= g.cols {
		return ErrColumnOutOfBounds
	}
	t.Set(c, v)
	return nil
}

// Apply applies f to every cell of the rows with coordinates in [r1,r2)
// and columns [c1,c2).
func (g *Grid[S, F]) Apply(r1, r2, c1, c2 int, f F) error {
	if r1 > r2 {
		return ErrIllegalRectangle
	}
	if err := g.checkCols(c1, c2); err != nil {
		return err
	}
	lo, hi := g.span(r1, r2)
	for _, t := range g.rows[lo:hi] {
		t.Apply(c1, c2, f)
	}
	return nil
}

// Prod folds the cells of the rows with coordinates in [r1,r2) and columns
// [c1,c2), row by row in ascending row order.
func (g *Grid[S, F]) Prod(r1, r2, c1, c2 int) (S, error) {
	m := g.arena.Config().Monoid
	if r1 > r2 {
		return m.Zero(), ErrIllegalRectangle
	}
	if err := g.checkCols(c1, c2); err != nil {
		return m.Zero(), err
	}
	lo, hi := g.span(r1, r2)
	acc := m.Zero()
	for _, t := range g.rows[lo:hi] {
		acc = m.Add(acc, t.Prod(c1, c2))
	}
	return acc, nil
}

// InsertColumn inserts a column of values v before column c.
func (g *Grid[S, F]) InsertColumn(c int, v S) error {
	if c < 0 || c > g.cols {
		return ErrColumnOutOfBounds
	}
	for _, t := range g.rows {
		t.Insert(c, v)
	}
	g.cols++
	return nil
}

// EraseColumn removes column c from every row.
func (g *Grid[S, F]) EraseColumn(c int) error {
	if c < 0 || c >= g.cols {
		return ErrColumnOutOfBounds
	}
	for _, t := range g.rows {
		t.Erase(c)
	}
	g.cols--
	return nil
}

// ReverseRow reverses the columns [c1,c2) of the row with coordinate r.
func (g *Grid[S, F]) ReverseRow(r, c1, c2 int) error {
	t, err := g.row(r)
	if err != nil {
		return err
	}
	if err = g.checkCols(c1, c2); err != nil {
		return err
	}
	t.Reverse(c1, c2)
	return nil
}

// Row returns the values of the row with coordinate r.
func (g *Grid[S, F]) Row(r int) ([]S, error) {
	t, err := g.row(r)
	if err != nil {
		return nil, err
	}
	return t.Values(), nil
}
