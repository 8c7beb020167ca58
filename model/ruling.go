package model

import "math"

// Ruling is a detected ruling-line segment supplied as a hint by the layout
// preprocessing stage. Orientation is judged against a caller tolerance since
// scanned rulings are rarely perfectly axis-aligned.
type Ruling struct {
	Start Point
	End   Point
}

// IsHorizontal reports whether the segment runs along the X axis within
// tolerance.
func (r Ruling) IsHorizontal(tolerance float64) bool {
	return math.Abs(r.Start.Y-r.End.Y) <= tolerance
}

// IsVertical reports whether the segment runs along the Y axis within
// tolerance.
func (r Ruling) IsVertical(tolerance float64) bool {
	return math.Abs(r.Start.X-r.End.X) <= tolerance
}

// Position returns the segment's coordinate on its constant axis: Y for
// horizontal rulings, X for vertical ones.
func (r Ruling) Position(horizontal bool) float64 {
	if horizontal {
		return (r.Start.Y + r.End.Y) / 2
	}
	return (r.Start.X + r.End.X) / 2
}

// Span returns the [lo, hi] interval the segment covers on its running axis:
// X for horizontal rulings, Y for vertical ones.
func (r Ruling) Span(horizontal bool) (lo, hi float64) {
	var a, b float64
	if horizontal {
		a, b = r.Start.X, r.End.X
	} else {
		a, b = r.Start.Y, r.End.Y
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Length returns the segment length.
func (r Ruling) Length() float64 {
	return r.Start.Distance(r.End)
}
