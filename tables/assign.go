package tables

import (
	"math"

	"github.com/gridform/tablature/fragments"
	"github.com/gridform/tablature/logging"
	"github.com/gridform/tablature/model"
)

// Assignment maps every indexed fragment to at most one cell. ByCell is
// indexed like Grid.Cells and holds fragment ids; Overflow holds fragments
// that could not be placed within the assignment distance cutoff, retained
// for diagnostics. The sum of assigned and overflow fragments always equals
// the index size.
type Assignment struct {
	ByCell   [][]int
	Overflow []int
}

// AssignedCount returns the number of fragments placed into cells.
func (a *Assignment) AssignedCount() int {
	n := 0
	for _, ids := range a.ByCell {
		n += len(ids)
	}
	return n
}

// Assigner places fragments into grid cells.
type Assigner struct {
	config Config
}

// NewAssigner creates an assigner with default configuration.
func NewAssigner() *Assigner {
	return &Assigner{config: DefaultConfig()}
}

// NewAssignerWithConfig creates an assigner with custom configuration.
func NewAssignerWithConfig(config Config) *Assigner {
	return &Assigner{config: config}
}

// Assign places each fragment into exactly one cell:
//
//   - the cell whose rectangle contains the fragment center;
//   - for a center exactly on a boundary, the candidate cell with the larger
//     bounding-box overlap, remaining ties going to the lower row index and
//     then the lower column index;
//   - for a center outside all cells, the nearest cell by center-to-center
//     distance within MaxAssignDistance; beyond the cutoff the fragment is
//     recorded in Overflow.
//
// Each fragment is visited once, so no fragment can end up in two cells.
func (a *Assigner) Assign(ix *fragments.Index, grid *model.Grid) *Assignment {
	asg := &Assignment{ByCell: make([][]int, len(grid.Cells))}

	for _, f := range ix.All() {
		if idx, ok := a.place(f, grid); ok {
			asg.ByCell[idx] = append(asg.ByCell[idx], f.ID)
		} else {
			asg.Overflow = append(asg.Overflow, f.ID)
			logging.Logger().Debug("fragment unassigned",
				"page", f.PageID, "fragment", f.ID, "text", f.Text)
		}
	}

	return asg
}

func (a *Assigner) place(f model.Fragment, grid *model.Grid) (int, bool) {
	center := f.Center()

	if row, col, ok := grid.Locate(center); ok {
		candidates := boundaryCandidates(grid, center, row, col)
		if len(candidates) == 1 {
			return candidates[0], true
		}
		return pickByOverlap(grid, candidates, f.BBox), true
	}

	// Detection gap: rescue to the nearest cell within the cutoff.
	best := -1
	bestDist := math.MaxFloat64
	for i := range grid.Cells {
		if d := grid.Cells[i].BBox.Center().Distance(center); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 && bestDist <= a.config.MaxAssignDistance {
		return best, true
	}
	return -1, false
}

// boundaryCandidates returns the owning cell of (row, col) plus the cells on
// the other side of any boundary the center sits exactly on. Cells are
// deduplicated since a span can own several candidate positions.
func boundaryCandidates(grid *model.Grid, center model.Point, row, col int) []int {
	positions := [][2]int{{row, col}}
	onColBound := col > 0 && center.X == grid.ColBounds[col]
	onRowBound := row > 0 && center.Y == grid.RowBounds[row]

	if onColBound {
		positions = append(positions, [2]int{row, col - 1})
	}
	if onRowBound {
		positions = append(positions, [2]int{row - 1, col})
	}
	if onColBound && onRowBound {
		positions = append(positions, [2]int{row - 1, col - 1})
	}

	var out []int
	seen := map[int]bool{}
	for _, p := range positions {
		idx := grid.CellIndexAt(p[0], p[1])
		if idx >= 0 && !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}

// pickByOverlap resolves a boundary tie: largest overlap area wins, then the
// top-left cell (lower row index, then lower column index).
func pickByOverlap(grid *model.Grid, candidates []int, bbox model.BBox) int {
	best := candidates[0]
	bestArea := grid.Cells[best].BBox.Intersection(bbox).Area()

	for _, idx := range candidates[1:] {
		area := grid.Cells[idx].BBox.Intersection(bbox).Area()
		cell, bestCell := grid.Cells[idx], grid.Cells[best]
		switch {
		case area > bestArea:
			best, bestArea = idx, area
		case area == bestArea &&
			(cell.Row < bestCell.Row || (cell.Row == bestCell.Row && cell.Col < bestCell.Col)):
			best = idx
		}
	}
	return best
}
