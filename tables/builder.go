package tables

import (
	"fmt"

	"github.com/gridform/tablature/fragments"
	"github.com/gridform/tablature/logging"
	"github.com/gridform/tablature/model"
)

// LowConfidenceGridError reports that grid reconstruction failed its quality
// threshold: too many candidate cells contain no fragment. The caller may
// retry with relaxed thresholds or fall back to an unstructured text dump.
type LowConfidenceGridError struct {
	PageID         string
	AbsentFraction float64
	Threshold      float64
}

func (e *LowConfidenceGridError) Error() string {
	return fmt.Sprintf("tables: grid for page %q rejected: %.0f%% of candidate cells absent (threshold %.0f%%)",
		e.PageID, e.AbsentFraction*100, e.Threshold*100)
}

// Builder crosses row bands and column bands into a grid of cells, detecting
// and merging spanning cells.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build constructs the grid for one table. Band edges extend to the
// midpoints of inter-band gaps so cells tile the table area with no gaps or
// overlaps. Candidate cells with no fragment center are counted against
// MaxAbsentFraction before any merging; past the threshold the table is
// rejected with *LowConfidenceGridError. Surviving absent cells merge into
// the nearest non-empty neighbor in row-major order (left preferred, else
// above) unless a ruling line lies on the shared boundary; unmergeable
// absent cells remain as their own empty cells.
func (b *Builder) Build(ix *fragments.Index, rowBands, colBands []model.Band, rulings []model.Ruling) (*model.Grid, error) {
	if len(rowBands) == 0 || len(colBands) == 0 {
		return nil, &LowConfidenceGridError{
			PageID:         ix.PageID(),
			AbsentFraction: 1,
			Threshold:      b.config.MaxAbsentFraction,
		}
	}

	grid := &model.Grid{
		PageID:    ix.PageID(),
		RowBounds: boundsFromBands(rowBands),
		ColBounds: boundsFromBands(colBands),
	}
	rows, cols := grid.Rows(), grid.Cols()

	occupied := b.occupancy(ix, grid)

	absent := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !occupied[r][c] {
				absent++
			}
		}
	}
	fraction := float64(absent) / float64(rows*cols)

	logging.Logger().Debug("grid candidate",
		"page", ix.PageID(), "rows", rows, "cols", cols, "absentFraction", fraction)

	if fraction > b.config.MaxAbsentFraction {
		return nil, &LowConfidenceGridError{
			PageID:         ix.PageID(),
			AbsentFraction: fraction,
			Threshold:      b.config.MaxAbsentFraction,
		}
	}

	b.resolveCells(grid, occupied, rulings)
	return grid, nil
}

// boundsFromBands converts band intervals to boundary coordinates: outer
// edges from the first and last band, interior boundaries at the midpoint of
// each inter-band gap.
func boundsFromBands(bands []model.Band) []float64 {
	bounds := make([]float64, len(bands)+1)
	bounds[0] = bands[0].Lo
	for i := 1; i < len(bands); i++ {
		bounds[i] = (bands[i-1].Hi + bands[i].Lo) / 2
	}
	bounds[len(bands)] = bands[len(bands)-1].Hi
	return bounds
}

// occupancy marks positions containing at least one fragment center.
func (b *Builder) occupancy(ix *fragments.Index, grid *model.Grid) [][]bool {
	occupied := make([][]bool, grid.Rows())
	for r := range occupied {
		occupied[r] = make([]bool, grid.Cols())
	}
	for _, f := range ix.All() {
		if r, c, ok := grid.Locate(f.Center()); ok {
			occupied[r][c] = true
		}
	}
	return occupied
}

// resolveCells assigns every position an owning cell, merging absent
// positions into occupied neighbors where no ruling separates them. Spans
// stay rectangular: a cell only extends rightward while it spans a single
// row, and downward while it spans a single column.
func (b *Builder) resolveCells(grid *model.Grid, occupied [][]bool, rulings []model.Ruling) {
	rows, cols := grid.Rows(), grid.Cols()

	var cells []model.Cell
	var cellHasData []bool
	owners := make([][]int, rows)
	for r := range owners {
		owners[r] = make([]int, cols)
		for c := range owners[r] {
			owners[r][c] = -1
		}
	}

	newCell := func(r, c int, hasData bool) int {
		cells = append(cells, model.Cell{Row: r, Col: c, RowSpan: 1, ColSpan: 1})
		cellHasData = append(cellHasData, hasData)
		return len(cells) - 1
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if occupied[r][c] {
				owners[r][c] = newCell(r, c, true)
				continue
			}

			// Left neighbor preferred, then above.
			if c > 0 {
				li := owners[r][c-1]
				left := &cells[li]
				if cellHasData[li] && left.RowSpan == 1 && left.Row == r &&
					left.Col+left.ColSpan == c &&
					!b.ruled(rulings, false, grid.ColBounds[c], grid.RowBounds[r], grid.RowBounds[r+1]) {
					left.ColSpan++
					owners[r][c] = li
					continue
				}
			}
			if r > 0 {
				ai := owners[r-1][c]
				above := &cells[ai]
				if cellHasData[ai] && above.ColSpan == 1 && above.Col == c &&
					above.Row+above.RowSpan == r &&
					!b.ruled(rulings, true, grid.RowBounds[r], grid.ColBounds[c], grid.ColBounds[c+1]) {
					above.RowSpan++
					owners[r][c] = ai
					continue
				}
			}

			owners[r][c] = newCell(r, c, false)
		}
	}

	for i := range cells {
		cell := &cells[i]
		cell.BBox = model.NewBBoxFromEdges(
			grid.ColBounds[cell.Col], grid.RowBounds[cell.Row],
			grid.ColBounds[cell.Col+cell.ColSpan], grid.RowBounds[cell.Row+cell.RowSpan],
		)
	}

	grid.Cells = cells
	grid.Owners = owners
}

// ruled reports whether a ruling line lies on the boundary at position pos
// (a Y coordinate for horizontal rulings, X for vertical) and overlaps the
// [lo, hi] interval on its running axis.
func (b *Builder) ruled(rulings []model.Ruling, horizontal bool, pos, lo, hi float64) bool {
	for _, r := range rulings {
		if horizontal && !r.IsHorizontal(b.config.RulingTolerance) {
			continue
		}
		if !horizontal && !r.IsVertical(b.config.RulingTolerance) {
			continue
		}
		p := r.Position(horizontal)
		if p < pos-b.config.RulingTolerance || p > pos+b.config.RulingTolerance {
			continue
		}
		sLo, sHi := r.Span(horizontal)
		if sHi > lo && sLo < hi {
			return true
		}
	}
	return false
}
