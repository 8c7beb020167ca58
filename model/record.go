package model

// NoDataConfidence is the sentinel confidence for cells with no contributing
// fragments.
const NoDataConfidence = -1.0

// Status is the validation status of a record.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusInvalid:
		return "invalid"
	default:
		return "ok"
	}
}

// CellValue is one assembled cell of a record: the joined fragment text and
// the aggregated confidence (minimum over contributors, or NoDataConfidence
// for empty cells).
type CellValue struct {
	Text       string
	Confidence float64
}

// Record is one fixed-width row of extracted cell values plus metadata.
// Width always equals the grid's declared column count; spanned columns
// carry replicated values. Records are created by the assembler and mutated
// only by the validator and the normalizer (status and annotation fields,
// never cell text once validated).
type Record struct {
	PageID  string
	Row     int
	Values  []CellValue
	Status  Status
	Issues  []string
	Section string
}

// Width returns the number of cell values.
func (r *Record) Width() int {
	return len(r.Values)
}

// Flag records an issue and escalates the record status. A record already
// flagged invalid stays invalid.
func (r *Record) Flag(status Status, issue string) {
	if status > r.Status {
		r.Status = status
	}
	if issue != "" {
		r.Issues = append(r.Issues, issue)
	}
}

// Annotate records an issue without changing the record status.
func (r *Record) Annotate(issue string) {
	if issue != "" {
		r.Issues = append(r.Issues, issue)
	}
}

// IsEmpty reports whether every cell value is blank.
func (r *Record) IsEmpty() bool {
	for _, v := range r.Values {
		if v.Text != "" {
			return false
		}
	}
	return true
}
