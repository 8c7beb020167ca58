// Package fragments provides an immutable spatial index over the recognized
// text fragments of one page. The index is built once per reconstruction
// invocation and is read-only afterwards; it must never be shared between
// concurrent invocations.
package fragments

import (
	"fmt"
	"sort"

	"github.com/gridform/tablature/model"
)

// EmptyInputError reports that a page produced zero fragments. The page is
// not reconstructible; callers should skip it rather than retry.
type EmptyInputError struct {
	PageID string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("fragments: no fragments for page %q", e.PageID)
}

// Index holds the fragments of one page with per-axis position orderings for
// range queries. Fragment ids are positions in the original input slice.
type Index struct {
	pageID string
	frags  []model.Fragment
	byX    []int // fragment ids ordered by center X
	byY    []int // fragment ids ordered by center Y
}

// Build constructs an index over a fixed set of fragments for one page.
// Fragment IDs are assigned from slice positions; the input slice is copied
// so later caller mutation cannot reach the index. Returns *EmptyInputError
// when frags is empty.
func Build(pageID string, frags []model.Fragment) (*Index, error) {
	if len(frags) == 0 {
		return nil, &EmptyInputError{PageID: pageID}
	}

	owned := make([]model.Fragment, len(frags))
	copy(owned, frags)
	for i := range owned {
		owned[i].ID = i
		owned[i].PageID = pageID
	}

	ix := &Index{
		pageID: pageID,
		frags:  owned,
		byX:    sortedByCenter(owned, model.AxisX),
		byY:    sortedByCenter(owned, model.AxisY),
	}
	return ix, nil
}

func sortedByCenter(frags []model.Fragment, axis model.Axis) []int {
	ids := make([]int, len(frags))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		return frags[ids[a]].CenterOn(axis) < frags[ids[b]].CenterOn(axis)
	})
	return ids
}

// PageID returns the page the index was built for.
func (ix *Index) PageID() string {
	return ix.pageID
}

// Len returns the number of indexed fragments.
func (ix *Index) Len() int {
	return len(ix.frags)
}

// Fragment returns the fragment with the given id.
func (ix *Index) Fragment(id int) model.Fragment {
	return ix.frags[id]
}

// All returns the indexed fragments in id order. The returned slice is the
// index's own storage and must not be modified.
func (ix *Index) All() []model.Fragment {
	return ix.frags
}

// Ordered returns fragment ids ordered by center position on the given axis.
// The returned slice must not be modified.
func (ix *Index) Ordered(axis model.Axis) []int {
	if axis == model.AxisX {
		return ix.byX
	}
	return ix.byY
}

// QueryRange returns all fragments whose bounding box overlaps [lo, hi] on
// the given axis, ordered by center position on that axis.
func (ix *Index) QueryRange(axis model.Axis, lo, hi float64) []model.Fragment {
	var out []model.Fragment
	for _, id := range ix.Ordered(axis) {
		fLo, fHi := ix.frags[id].BBox.Extent(axis)
		if fHi >= lo && fLo <= hi {
			out = append(out, ix.frags[id])
		}
	}
	return out
}

// Nearest returns the fragment whose center is closest to p. ok is false
// only for an impossible empty index; Build guarantees at least one fragment.
func (ix *Index) Nearest(p model.Point) (model.Fragment, bool) {
	if len(ix.frags) == 0 {
		return model.Fragment{}, false
	}
	best := 0
	bestDist := ix.frags[0].Center().Distance(p)
	for i := 1; i < len(ix.frags); i++ {
		if d := ix.frags[i].Center().Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return ix.frags[best], true
}

// Overlap reports whether two bounding boxes intersect by more than
// tolerance, expressed as a fraction of the smaller box's area.
func Overlap(a, b model.BBox, tolerance float64) bool {
	return a.OverlapRatio(b) > tolerance
}
