package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gridform/tablature/model"
)

// exportMarkdown writes records as a Markdown pipe table. A header row is
// always emitted since the separator line requires one; IncludeHeader only
// controls whether configured column names are used.
func (e *Exporter) exportMarkdown(recs []model.Record, w io.Writer) error {
	width := recordWidth(recs)
	cols := e.columns(width)

	var sb strings.Builder

	sb.WriteString("|")
	for _, c := range cols {
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdown(c))
		sb.WriteString(" |")
	}
	sb.WriteString("\n|")
	for range cols {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, rec := range recs {
		sb.WriteString("|")
		for _, field := range e.row(rec, width) {
			sb.WriteString(" ")
			sb.WriteString(escapeMarkdown(field))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("export: writing markdown: %w", err)
	}
	return nil
}

// escapeMarkdown escapes characters that would break the pipe-table layout
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
