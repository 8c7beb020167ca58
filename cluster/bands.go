package cluster

import (
	"sort"

	"github.com/gridform/tablature/fragments"
	"github.com/gridform/tablature/logging"
	"github.com/gridform/tablature/model"
)

// Config holds clustering thresholds.
type Config struct {
	// GapMultiplier scales the running median gap; a new band starts where
	// a center-to-center gap exceeds GapMultiplier x median. Adapts the
	// boundary threshold to the document's own row/column spacing.
	GapMultiplier float64

	// MinBandWidth is the minimum band extent; narrower bands merge into the
	// neighboring band with larger interval overlap. Bands overlapping
	// neither neighbor are kept regardless of width, so isolated singleton
	// fragments survive as their own band.
	MinBandWidth float64
}

// DefaultConfig returns sensible default thresholds.
func DefaultConfig() Config {
	return Config{
		GapMultiplier: 1.5,
		MinBandWidth:  1.0,
	}
}

// Clusterer partitions fragment centers on one axis into bands using 1-D
// density clustering. Clustering is deterministic for identical input and
// thresholds, and runs independently per axis.
type Clusterer struct {
	config Config
}

// New creates a clusterer with default configuration.
func New() *Clusterer {
	return &Clusterer{config: DefaultConfig()}
}

// NewWithConfig creates a clusterer with custom configuration.
func NewWithConfig(config Config) *Clusterer {
	return &Clusterer{config: config}
}

// Bands clusters the indexed fragments on the given axis and returns ordered,
// non-overlapping bands. Each band interval is the union of its member
// bounding-box extents; adjacent intervals that overlap are clamped to their
// shared midpoint so that bands[i].Hi <= bands[i+1].Lo always holds.
func (c *Clusterer) Bands(ix *fragments.Index, axis model.Axis) []model.Band {
	ids := ix.Ordered(axis)
	if len(ids) == 0 {
		return nil
	}

	groups := c.groupByGaps(ix, ids, axis)
	bands := make([]model.Band, 0, len(groups))
	for _, g := range groups {
		bands = append(bands, c.bandFromGroup(ix, g, axis))
	}

	bands = c.mergeNarrow(bands)
	bands = clampOverlaps(bands)

	logging.Logger().Debug("clustered bands",
		"axis", axis.String(), "fragments", len(ids), "bands", len(bands))

	return bands
}

// groupByGaps walks the position-sorted centers and starts a new group
// wherever the gap to the previous center exceeds GapMultiplier times the
// median of all gaps seen so far. The first gap has no median to compare
// against and never splits.
func (c *Clusterer) groupByGaps(ix *fragments.Index, ids []int, axis model.Axis) [][]int {
	groups := [][]int{{ids[0]}}
	var gaps []float64

	for i := 1; i < len(ids); i++ {
		gap := ix.Fragment(ids[i]).CenterOn(axis) - ix.Fragment(ids[i-1]).CenterOn(axis)

		split := false
		if len(gaps) > 0 && gap > c.config.GapMultiplier*median(gaps) {
			split = true
		}
		gaps = append(gaps, gap)

		if split {
			groups = append(groups, []int{ids[i]})
		} else {
			last := len(groups) - 1
			groups[last] = append(groups[last], ids[i])
		}
	}

	return groups
}

// bandFromGroup builds a band whose interval is the union of member extents.
func (c *Clusterer) bandFromGroup(ix *fragments.Index, ids []int, axis model.Axis) model.Band {
	lo, hi := ix.Fragment(ids[0]).BBox.Extent(axis)
	for _, id := range ids[1:] {
		fLo, fHi := ix.Fragment(id).BBox.Extent(axis)
		if fLo < lo {
			lo = fLo
		}
		if fHi > hi {
			hi = fHi
		}
	}
	members := make([]int, len(ids))
	copy(members, ids)
	return model.Band{Axis: axis, Lo: lo, Hi: hi, Fragments: members}
}

// mergeNarrow folds bands narrower than MinBandWidth into the neighbor with
// larger raw interval overlap. A narrow band overlapping neither neighbor is
// isolated and stays, per the singleton-outlier rule.
func (c *Clusterer) mergeNarrow(bands []model.Band) []model.Band {
	if c.config.MinBandWidth <= 0 || len(bands) < 2 {
		return bands
	}

	for {
		merged := false
		for i := 0; i < len(bands) && !merged; i++ {
			if bands[i].Width() >= c.config.MinBandWidth {
				continue
			}

			prevOv, nextOv := 0.0, 0.0
			if i > 0 {
				prevOv = bands[i-1].Overlap(bands[i].Lo, bands[i].Hi)
			}
			if i < len(bands)-1 {
				nextOv = bands[i+1].Overlap(bands[i].Lo, bands[i].Hi)
			}
			if prevOv == 0 && nextOv == 0 {
				continue // isolated singleton, keep
			}

			target := i - 1
			if nextOv > prevOv {
				target = i + 1
			}
			bands[target] = absorb(bands[target], bands[i])
			bands = append(bands[:i], bands[i+1:]...)
			merged = true
		}
		if !merged {
			return bands
		}
	}
}

// absorb unions two bands, keeping member order by position.
func absorb(into, other model.Band) model.Band {
	prepend := other.Lo < into.Lo
	if other.Lo < into.Lo {
		into.Lo = other.Lo
	}
	if other.Hi > into.Hi {
		into.Hi = other.Hi
	}
	if prepend {
		into.Fragments = append(append([]int{}, other.Fragments...), into.Fragments...)
	} else {
		into.Fragments = append(into.Fragments, other.Fragments...)
	}
	return into
}

// clampOverlaps pins overlapping adjacent intervals to their midpoint so
// band monotonicity holds. When one interval fully nests inside its
// neighbor (a tall member extent swallowing the next cluster), no midpoint
// separates the pair without inverting an interval, so nested neighbors
// merge instead.
func clampOverlaps(bands []model.Band) []model.Band {
	for i := 0; i < len(bands)-1; {
		cur, next := bands[i], bands[i+1]
		switch {
		case cur.Hi <= next.Lo:
			i++
		case cur.Hi >= next.Hi || next.Lo <= cur.Lo:
			bands[i] = absorb(cur, next)
			bands = append(bands[:i+1], bands[i+2:]...)
			// The merged interval may have grown; recheck its neighbors.
			if i > 0 {
				i--
			}
		default:
			mid := (next.Lo + cur.Hi) / 2
			bands[i].Hi = mid
			bands[i+1].Lo = mid
			i++
		}
	}
	return bands
}

// median returns the median of values. The slice is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
