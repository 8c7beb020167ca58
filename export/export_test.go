package export

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/gridform/tablature/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{
			PageID:  "p14",
			Row:     0,
			Section: "Alabama",
			Values: []model.CellValue{
				{Text: "Smith, John", Confidence: 0.97},
				{Text: "$1,200", Confidence: 0.95},
			},
			Status: model.StatusOK,
		},
		{
			PageID:  "p14",
			Row:     1,
			Section: "Alabama",
			Values: []model.CellValue{
				{Text: "Brown, Mary", Confidence: 0.91},
				{Text: "1,2OO", Confidence: 0.55},
			},
			Status: model.StatusInvalid,
			Issues: []string{"col 1: non-currency"},
		},
	}
}

// ============================================================================
// CSV Tests
// ============================================================================

func TestExportCSV(t *testing.T) {
	got, err := New().ExportToString(sampleRecords())
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "col_1,col_2" {
		t.Errorf("header = %q, want %q", lines[0], "col_1,col_2")
	}
	if !strings.Contains(lines[1], "Smith, John") {
		t.Errorf("row 1 = %q, want the name field", lines[1])
	}
}

func TestExportCSVOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Header = []string{"name", "compensation"}
	cfg.IncludeSection = true
	cfg.IncludeStatus = true
	cfg.IncludeIssues = true

	got, err := NewWithConfig(cfg).ExportToString(sampleRecords())
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if lines[0] != "section,name,compensation,status,issues" {
		t.Errorf("header = %q, want full column set", lines[0])
	}
	if !strings.Contains(lines[2], "invalid") || !strings.Contains(lines[2], "non-currency") {
		t.Errorf("row 2 = %q, want status and issue fields", lines[2])
	}
}

func TestExportCSVNoHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeHeader = false

	got, err := NewWithConfig(cfg).ExportToString(sampleRecords())
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}
	if strings.Contains(got, "col_1") {
		t.Errorf("output = %q, want no header row", got)
	}
}

func TestExportCSVPadsRaggedWidths(t *testing.T) {
	recs := []model.Record{
		{Values: []model.CellValue{{Text: "a"}, {Text: "b"}, {Text: "c"}}},
		{Values: []model.CellValue{{Text: "d"}}},
	}

	got, err := New().ExportToString(recs)
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if lines[2] != "d,," {
		t.Errorf("short row = %q, want %q", lines[2], "d,,")
	}
}

// ============================================================================
// Markdown Tests
// ============================================================================

func TestExportMarkdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = FormatMarkdown
	cfg.Header = []string{"name", "compensation"}

	got, err := NewWithConfig(cfg).ExportToString(sampleRecords())
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("markdown has %d lines, want 4", len(lines))
	}
	if lines[0] != "| name | compensation |" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "|---|---|" {
		t.Errorf("separator = %q, want %q", lines[1], "|---|---|")
	}
	if !strings.Contains(lines[2], "Smith, John") {
		t.Errorf("row 1 = %q, want the name field", lines[2])
	}
}

func TestExportMarkdownEscapesPipes(t *testing.T) {
	recs := []model.Record{
		{Values: []model.CellValue{{Text: "a|b"}}},
	}

	cfg := DefaultConfig()
	cfg.Format = FormatMarkdown
	got, err := NewWithConfig(cfg).ExportToString(recs)
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("output = %q, want escaped pipe", got)
	}
}

// ============================================================================
// JSON Tests
// ============================================================================

func TestExportJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.IncludeSection = true

	got, err := NewWithConfig(cfg).ExportToString(sampleRecords())
	if err != nil {
		t.Fatalf("ExportToString() error = %v", err)
	}

	var decoded []struct {
		PageID  string `json:"page_id"`
		Row     int    `json:"row"`
		Section string `json:"section"`
		Values  []struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"values"`
		Status string   `json:"status"`
		Issues []string `json:"issues"`
	}
	if err := sonic.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("decoded %d records, want 2", len(decoded))
	}
	if decoded[0].Section != "Alabama" || decoded[0].Values[0].Text != "Smith, John" {
		t.Errorf("decoded[0] = %+v, want section and values round-tripped", decoded[0])
	}
	if decoded[1].Status != "invalid" || len(decoded[1].Issues) != 1 {
		t.Errorf("decoded[1] = %+v, want status and issues carried", decoded[1])
	}
}

// ============================================================================
// Format Tests
// ============================================================================

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		ext    string
	}{
		{FormatCSV, "csv", ".csv"},
		{FormatMarkdown, "markdown", ".md"},
		{FormatJSON, "json", ".json"},
		{Format(99), "unknown", ".txt"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.format.FileExtension(); got != tt.ext {
			t.Errorf("FileExtension() = %q, want %q", got, tt.ext)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = Format(99)
	if _, err := NewWithConfig(cfg).ExportToString(sampleRecords()); err == nil {
		t.Error("ExportToString() accepted an unknown format, want error")
	}
}
