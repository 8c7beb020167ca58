package tables

// Config holds grid construction and cell assignment thresholds.
type Config struct {
	// MaxAbsentFraction is the quality gate for grid reconstruction: when
	// more than this fraction of candidate cells contains no fragment
	// center, the table is rejected with LowConfidenceGridError.
	MaxAbsentFraction float64

	// MaxAssignDistance is the center-to-center cutoff for rescuing
	// fragments whose center falls outside every cell; beyond it a fragment
	// goes to the overflow diagnostics list.
	MaxAssignDistance float64

	// RulingTolerance is the distance within which a ruling line counts as
	// lying on a cell boundary (points).
	RulingTolerance float64
}

// DefaultConfig returns default thresholds.
func DefaultConfig() Config {
	return Config{
		MaxAbsentFraction: 0.30,
		MaxAssignDistance: 50.0,
		RulingTolerance:   3.0,
	}
}
