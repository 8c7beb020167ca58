package model

// Band is a 1-D cluster of fragment positions along one axis: a row line
// (AxisY) or a column line (AxisX). Bands on the same axis are non-overlapping
// and ordered by position; Fragments holds member fragment ids for lookup
// only, never ownership.
type Band struct {
	Axis      Axis
	Lo, Hi    float64
	Fragments []int
}

// Width returns the band's extent on its axis.
func (b Band) Width() float64 {
	return b.Hi - b.Lo
}

// Center returns the midpoint of the band interval.
func (b Band) Center() float64 {
	return (b.Lo + b.Hi) / 2
}

// Contains reports whether a coordinate falls within the band interval.
func (b Band) Contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

// Overlap returns the length of the intersection between the band interval
// and [lo, hi], or 0 when they are disjoint.
func (b Band) Overlap(lo, hi float64) float64 {
	l := b.Lo
	if lo > l {
		l = lo
	}
	h := b.Hi
	if hi < h {
		h = hi
	}
	if h <= l {
		return 0
	}
	return h - l
}
