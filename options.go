package tablature

import (
	"github.com/gridform/tablature/cluster"
	"github.com/gridform/tablature/tables"
)

// Config holds the tunable thresholds of the reconstruction pipeline.
// Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	// GapMultiplier scales the adaptive median gap when clustering fragment
	// centers into row/column bands (default 1.5).
	GapMultiplier float64

	// MinBandWidth is the minimum band extent; narrower bands merge into an
	// overlapping neighbor.
	MinBandWidth float64

	// MaxAssignDistance is the cutoff for rescuing fragments whose center
	// falls outside every cell.
	MaxAssignDistance float64

	// MaxAbsentFraction is the grid quality gate: above this fraction of
	// fragment-less candidate cells the table is rejected.
	MaxAbsentFraction float64

	// RulingTolerance is the distance within which a ruling-line hint counts
	// as lying on a cell boundary.
	RulingTolerance float64
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		GapMultiplier:     1.5,
		MinBandWidth:      1.0,
		MaxAssignDistance: 50.0,
		MaxAbsentFraction: 0.30,
		RulingTolerance:   3.0,
	}
}

// clusterConfig projects the band-clustering thresholds.
func (c Config) clusterConfig() cluster.Config {
	return cluster.Config{
		GapMultiplier: c.GapMultiplier,
		MinBandWidth:  c.MinBandWidth,
	}
}

// tablesConfig projects the grid-building and assignment thresholds.
func (c Config) tablesConfig() tables.Config {
	return tables.Config{
		MaxAbsentFraction: c.MaxAbsentFraction,
		MaxAssignDistance: c.MaxAssignDistance,
		RulingTolerance:   c.RulingTolerance,
	}
}
