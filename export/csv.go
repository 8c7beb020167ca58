package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gridform/tablature/model"
)

// exportCSV writes records as delimited values
func (e *Exporter) exportCSV(recs []model.Record, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if e.config.CSVDelimiter != 0 {
		csvWriter.Comma = e.config.CSVDelimiter
	}

	width := recordWidth(recs)

	if e.config.IncludeHeader {
		if err := csvWriter.Write(e.columns(width)); err != nil {
			return fmt.Errorf("export: writing CSV header: %w", err)
		}
	}

	for i, rec := range recs {
		if err := csvWriter.Write(e.row(rec, width)); err != nil {
			return fmt.Errorf("export: writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// joinIssues renders an issue list as a single field
func joinIssues(issues []string) string {
	return strings.Join(issues, "; ")
}
