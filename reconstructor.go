package tablature

import (
	"fmt"
	"strings"

	"github.com/gridform/tablature/cluster"
	"github.com/gridform/tablature/fragments"
	"github.com/gridform/tablature/model"
	"github.com/gridform/tablature/records"
	"github.com/gridform/tablature/tables"
	"github.com/gridform/tablature/validate"
)

// WarningKind classifies non-fatal reconstruction issues.
type WarningKind int

const (
	// WarnUnassignedFragment marks a fragment that could not be placed into
	// any cell within the assignment distance cutoff.
	WarnUnassignedFragment WarningKind = iota
)

// Warning is a non-fatal issue encountered during reconstruction. Warnings
// are values, never errors: processing continues and the affected data is
// retained for diagnostics.
type Warning struct {
	Kind       WarningKind
	PageID     string
	FragmentID int
	Message    string
}

// FormatWarnings joins warning messages for display.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

// Reconstructor provides a fluent interface for reconstructing one table
// from one page's fragments. Each configuration method returns a new
// instance, making partially configured pipelines safe to share; the
// terminal methods (Records, Result, Grid) run the pipeline.
//
// A Reconstructor and everything it derives belong to a single invocation:
// fragments, bands, cells, and grids are never shared across concurrent
// reconstructions.
type Reconstructor struct {
	pageID  string
	frags   []model.Fragment
	rulings []model.Ruling
	rules   *validate.RuleSet
	config  Config
}

// clone creates a copy of the Reconstructor with copied slices, so each
// chain method returns an independent instance.
func (r *Reconstructor) clone() *Reconstructor {
	return &Reconstructor{
		pageID:  r.pageID,
		frags:   append([]model.Fragment(nil), r.frags...),
		rulings: append([]model.Ruling(nil), r.rulings...),
		rules:   r.rules,
		config:  r.config,
	}
}

// WithConfig replaces the full threshold configuration.
func (r *Reconstructor) WithConfig(config Config) *Reconstructor {
	n := r.clone()
	n.config = config
	return n
}

// GapMultiplier sets the adaptive band-clustering gap multiplier.
func (r *Reconstructor) GapMultiplier(m float64) *Reconstructor {
	n := r.clone()
	n.config.GapMultiplier = m
	return n
}

// MinBandWidth sets the minimum band width before neighbor merging.
func (r *Reconstructor) MinBandWidth(w float64) *Reconstructor {
	n := r.clone()
	n.config.MinBandWidth = w
	return n
}

// MaxAssignDistance sets the out-of-grid fragment rescue cutoff.
func (r *Reconstructor) MaxAssignDistance(d float64) *Reconstructor {
	n := r.clone()
	n.config.MaxAssignDistance = d
	return n
}

// MaxAbsentFraction sets the grid rejection threshold.
func (r *Reconstructor) MaxAbsentFraction(f float64) *Reconstructor {
	n := r.clone()
	n.config.MaxAbsentFraction = f
	return n
}

// Rulings supplies ruling-line hints from layout preprocessing; they block
// spanning-cell merges across drawn separators.
func (r *Reconstructor) Rulings(rulings []model.Ruling) *Reconstructor {
	n := r.clone()
	n.rulings = append([]model.Ruling(nil), rulings...)
	return n
}

// Validate attaches a compiled rule set; records are annotated (never
// discarded) by the rules after assembly.
func (r *Reconstructor) Validate(rules *validate.RuleSet) *Reconstructor {
	n := r.clone()
	n.rules = rules
	return n
}

// Result holds the full output of one reconstruction.
type Result struct {
	PageID string

	// Records is the ordered, fixed-width record per grid row.
	Records []model.Record

	// Grid is the reconstructed cell structure.
	Grid *model.Grid

	// Overflow holds fragments that could not be assigned to any cell,
	// retained for debugging and manual review.
	Overflow []model.Fragment

	// Warnings are the non-fatal issues encountered.
	Warnings []Warning
}

// Result runs the full pipeline: index, band clustering on both axes, grid
// construction, cell assignment, and record assembly, then validation when
// a rule set is attached. The run is deterministic: identical fragments and
// thresholds yield identical records.
func (r *Reconstructor) Result() (*Result, error) {
	ix, err := fragments.Build(r.pageID, r.frags)
	if err != nil {
		return nil, err
	}

	clusterer := cluster.NewWithConfig(r.config.clusterConfig())
	rowBands := clusterer.Bands(ix, model.AxisY)
	colBands := clusterer.Bands(ix, model.AxisX)

	grid, err := tables.NewBuilderWithConfig(r.config.tablesConfig()).
		Build(ix, rowBands, colBands, r.rulings)
	if err != nil {
		return nil, err
	}

	asg := tables.NewAssignerWithConfig(r.config.tablesConfig()).Assign(ix, grid)

	res := &Result{
		PageID:  r.pageID,
		Grid:    grid,
		Records: records.Assemble(ix, grid, asg),
	}
	for _, id := range asg.Overflow {
		f := ix.Fragment(id)
		res.Overflow = append(res.Overflow, f)
		res.Warnings = append(res.Warnings, Warning{
			Kind:       WarnUnassignedFragment,
			PageID:     r.pageID,
			FragmentID: id,
			Message:    fmt.Sprintf("page %s: fragment %d (%q) unassigned", r.pageID, id, f.Text),
		})
	}

	if r.rules != nil {
		r.rules.ApplyAll(res.Records)
	}

	return res, nil
}

// Records runs the pipeline and returns just the records and warnings.
func (r *Reconstructor) Records() ([]model.Record, []Warning, error) {
	res, err := r.Result()
	if err != nil {
		return nil, nil, err
	}
	return res.Records, res.Warnings, nil
}

// Grid runs the pipeline up to grid construction and returns the cell
// structure, without assembling records.
func (r *Reconstructor) Grid() (*model.Grid, error) {
	ix, err := fragments.Build(r.pageID, r.frags)
	if err != nil {
		return nil, err
	}
	clusterer := cluster.NewWithConfig(r.config.clusterConfig())
	return tables.NewBuilderWithConfig(r.config.tablesConfig()).
		Build(ix, clusterer.Bands(ix, model.AxisY), clusterer.Bands(ix, model.AxisX), r.rulings)
}
