// Package tables builds the 2-D grid structure of a table from clustered row
// and column bands, and assigns fragments to grid cells.
//
// # Grid construction
//
// The [Builder] crosses row bands and column bands into candidate cells
// whose boundaries extend to the midpoints of inter-band gaps, so the cells
// partition the table area exactly. Candidate cells with no fragment center
// are "absent": past the configured fraction the whole table is rejected
// with [LowConfidenceGridError], otherwise absent cells merge into an
// occupied neighbor (left preferred, then above) to form spanning cells,
// unless a ruling-line hint lies on the shared boundary.
//
// # Cell assignment
//
// The [Assigner] places every fragment into exactly one cell by center
// containment, with overlap-area tie-breaking on exact boundaries and a
// distance-bounded nearest-cell rescue for fragments that fall outside the
// grid. Fragments beyond the rescue cutoff land in the assignment's
// Overflow list for diagnostics.
//
// Behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MaxAbsentFraction = 0.5
//	builder := tables.NewBuilderWithConfig(config)
package tables
