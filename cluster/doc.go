// Package cluster recovers row and column line structure from fragment
// geometry using 1-D density clustering.
//
// # Algorithm
//
// Fragment centers on one axis are sorted, and the gaps between consecutive
// centers are compared against an adaptive threshold: a multiple (default
// 1.5x) of the median gap seen so far in the run. A gap exceeding the
// threshold starts a new band. The median basis makes the threshold track
// the document's own spacing, so tight ledger rows and generous headings
// cluster correctly on the same page.
//
// Bands narrower than the configured minimum merge into the neighboring band
// with the larger interval overlap; an isolated fragment far from any
// cluster keeps its own singleton band rather than being dropped, leaving
// downstream stages to decide whether near-empty bands matter.
//
// The resulting bands are ordered, non-overlapping, and deterministic for
// identical input and thresholds.
package cluster
