package model

// Fragment is a single unit of recognized text with its bounding geometry,
// as produced by an external recognition engine. Fragments are immutable
// after construction; ID is the fragment's position in its page's input
// slice and is assigned by the fragment index.
type Fragment struct {
	ID         int
	Text       string
	BBox       BBox
	Confidence float64 // recognition confidence, 0.0-1.0
	PageID     string
}

// Center returns the geometric center of the fragment's bounding box.
func (f Fragment) Center() Point {
	return f.BBox.Center()
}

// CenterOn returns the fragment's center coordinate on the given axis.
func (f Fragment) CenterOn(axis Axis) float64 {
	return f.BBox.Center().On(axis)
}
