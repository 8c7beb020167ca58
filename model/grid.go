package model

import "sort"

// Cell is a rectangular region of a table grid. Row and Col are the top-left
// logical position; RowSpan and ColSpan record how many band positions the
// cell covers (1 for plain cells, >1 for merged cells).
type Cell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	BBox    BBox
}

// Covers reports whether the cell covers the logical position (row, col),
// either directly or via its span.
func (c Cell) Covers(row, col int) bool {
	return row >= c.Row && row < c.Row+c.RowSpan &&
		col >= c.Col && col < c.Col+c.ColSpan
}

// Grid is the full 2-D cell layout for one detected table. RowBounds and
// ColBounds hold the boundary coordinates (len rows+1 and cols+1); Owners
// maps each (row, col) position to an index into Cells, so every position
// resolves to exactly one cell even across spans. Relations are index-based
// to keep Cell, Band, and Fragment free of reference cycles.
type Grid struct {
	PageID    string
	RowBounds []float64
	ColBounds []float64
	Cells     []Cell
	Owners    [][]int
}

// Rows returns the number of logical rows.
func (g *Grid) Rows() int {
	if len(g.RowBounds) <= 1 {
		return 0
	}
	return len(g.RowBounds) - 1
}

// Cols returns the number of logical columns.
func (g *Grid) Cols() int {
	if len(g.ColBounds) <= 1 {
		return 0
	}
	return len(g.ColBounds) - 1
}

// BBox returns the bounding box of the whole table area.
func (g *Grid) BBox() BBox {
	if g.Rows() == 0 || g.Cols() == 0 {
		return BBox{}
	}
	return NewBBoxFromEdges(
		g.ColBounds[0], g.RowBounds[0],
		g.ColBounds[len(g.ColBounds)-1], g.RowBounds[len(g.RowBounds)-1],
	)
}

// CellIndexAt returns the Cells index owning position (row, col), or -1 for
// out-of-range positions.
func (g *Grid) CellIndexAt(row, col int) int {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return -1
	}
	return g.Owners[row][col]
}

// CellAt returns the cell owning position (row, col), or nil.
func (g *Grid) CellAt(row, col int) *Cell {
	idx := g.CellIndexAt(row, col)
	if idx < 0 {
		return nil
	}
	return &g.Cells[idx]
}

// PositionBBox returns the rectangle of a single logical position, ignoring
// spans.
func (g *Grid) PositionBBox(row, col int) BBox {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return BBox{}
	}
	return NewBBoxFromEdges(
		g.ColBounds[col], g.RowBounds[row],
		g.ColBounds[col+1], g.RowBounds[row+1],
	)
}

// Locate maps a point to the logical position containing it. ok is false
// when the point lies outside the table area.
func (g *Grid) Locate(p Point) (row, col int, ok bool) {
	row = locateInterval(g.RowBounds, p.Y)
	col = locateInterval(g.ColBounds, p.X)
	if row < 0 || col < 0 {
		return 0, 0, false
	}
	return row, col, true
}

// locateInterval returns the index i such that bounds[i] <= v <= bounds[i+1],
// with points exactly on an interior boundary resolved to the interval that
// starts there. Returns -1 when v is outside [bounds[0], bounds[last]].
func locateInterval(bounds []float64, v float64) int {
	n := len(bounds) - 1
	if n < 1 || v < bounds[0] || v > bounds[n] {
		return -1
	}
	if v == bounds[n] {
		return n - 1
	}
	// First boundary strictly greater than v; v lives in the interval before it.
	i := sort.SearchFloat64s(bounds, v)
	if i < len(bounds) && bounds[i] == v {
		return i
	}
	return i - 1
}
