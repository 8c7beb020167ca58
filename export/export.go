// Package export renders reconstructed records as CSV, Markdown, or JSON
// for downstream transcription and review workflows.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gridform/tablature/model"
)

// Format defines the available export formats
type Format int

const (
	// FormatCSV exports records as comma-separated values
	FormatCSV Format = iota
	// FormatMarkdown exports records as a Markdown pipe table
	FormatMarkdown
	// FormatJSON exports records as a JSON array
	FormatJSON
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// Header supplies column names. When empty, generated names
	// ("col_1", "col_2", ...) are used where a header is needed.
	Header []string

	// IncludeSection adds the propagated section heading as a leading column
	IncludeSection bool

	// IncludeStatus adds the validation status as a trailing column
	IncludeStatus bool

	// IncludeIssues adds the validation issue list as a trailing column
	IncludeIssues bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune

	// IncludeHeader writes the header row for CSV and Markdown exports
	IncludeHeader bool

	// PrettyPrint enables indented output for JSON export
	PrettyPrint bool
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:        FormatCSV,
		CSVDelimiter:  ',',
		IncludeHeader: true,
	}
}

// Exporter renders records in a configured format
type Exporter struct {
	config Config
}

// New creates an exporter with default configuration
func New() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewWithConfig creates an exporter with custom configuration
func NewWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Export writes records to the specified writer
func (e *Exporter) Export(recs []model.Record, w io.Writer) error {
	switch e.config.Format {
	case FormatCSV:
		return e.exportCSV(recs, w)
	case FormatMarkdown:
		return e.exportMarkdown(recs, w)
	case FormatJSON:
		return e.exportJSON(recs, w)
	default:
		return fmt.Errorf("export: unsupported format: %v", e.config.Format)
	}
}

// ExportToFile writes records to a file
func (e *Exporter) ExportToFile(recs []model.Record, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export: creating file: %w", err)
	}
	defer f.Close()

	return e.Export(recs, f)
}

// ExportToString renders records to a string
func (e *Exporter) ExportToString(recs []model.Record) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(recs, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// columns determines the header row: configured names padded or truncated
// to the record width, plus the optional section/status/issues columns.
func (e *Exporter) columns(width int) []string {
	cols := make([]string, 0, width+3)
	if e.config.IncludeSection {
		cols = append(cols, "section")
	}
	for i := 0; i < width; i++ {
		if i < len(e.config.Header) {
			cols = append(cols, e.config.Header[i])
		} else {
			cols = append(cols, fmt.Sprintf("col_%d", i+1))
		}
	}
	if e.config.IncludeStatus {
		cols = append(cols, "status")
	}
	if e.config.IncludeIssues {
		cols = append(cols, "issues")
	}
	return cols
}

// row flattens one record into string fields matching columns(), padding
// narrower records with empty fields.
func (e *Exporter) row(rec model.Record, width int) []string {
	fields := make([]string, 0, width+3)
	if e.config.IncludeSection {
		fields = append(fields, rec.Section)
	}
	for i := 0; i < width; i++ {
		if i < len(rec.Values) {
			fields = append(fields, rec.Values[i].Text)
		} else {
			fields = append(fields, "")
		}
	}
	if e.config.IncludeStatus {
		fields = append(fields, rec.Status.String())
	}
	if e.config.IncludeIssues {
		fields = append(fields, joinIssues(rec.Issues))
	}
	return fields
}

// recordWidth is the widest record in the set; records are fixed-width per
// page but a multi-page export can mix grids of different shapes.
func recordWidth(recs []model.Record) int {
	width := 0
	for _, r := range recs {
		if w := r.Width(); w > width {
			width = w
		}
	}
	return width
}
