package validate

import (
	"strings"
	"testing"

	"github.com/gridform/tablature/model"
)

func rec(values ...string) model.Record {
	cvs := make([]model.CellValue, len(values))
	for i, v := range values {
		cvs[i] = model.CellValue{Text: v, Confidence: 0.9}
	}
	return model.Record{Values: cvs}
}

func mustRules(t *testing.T, rules ...Rule) *RuleSet {
	t.Helper()
	rs, err := NewRuleSet(rules...)
	if err != nil {
		t.Fatalf("NewRuleSet() error = %v", err)
	}
	return rs
}

func hasIssue(rec *model.Record, substr string) bool {
	for _, issue := range rec.Issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}

// ============================================================================
// Compilation Tests
// ============================================================================

func TestNewRuleSetRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"unknown kind", Rule{Kind: Kind(99), Columns: []int{0}}},
		{"no columns", Rule{Kind: KindNumeric}},
		{"bad pattern", Rule{Kind: KindPattern, Columns: []int{0}, Pattern: "("}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRuleSet(tt.rule); err == nil {
				t.Error("NewRuleSet() accepted a bad rule, want error")
			}
		})
	}
}

// ============================================================================
// Rule Application Tests
// ============================================================================

// A numeric rule on the OCR-garbled text "12a3" flags the record invalid
// with a non-numeric reason, leaving the cell text untouched.
func TestNumericRuleFlagsWithoutMutating(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindNumeric, Columns: []int{0}})
	r := rec("12a3")

	rs.Apply(&r)

	if r.Status != model.StatusInvalid {
		t.Errorf("Status = %v, want StatusInvalid", r.Status)
	}
	if !hasIssue(&r, "non-numeric") {
		t.Errorf("Issues = %v, want a non-numeric reason", r.Issues)
	}
	if r.Values[0].Text != "12a3" {
		t.Errorf("cell text = %q, want unchanged %q", r.Values[0].Text, "12a3")
	}
}

func TestNumericRuleAcceptsGroupedDigits(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindNumeric, Columns: []int{0}})

	for _, text := range []string{"1200", "1,200", "83.33", "-4"} {
		r := rec(text)
		rs.Apply(&r)
		if r.Status != model.StatusOK {
			t.Errorf("numeric %q flagged %v, want StatusOK", text, r.Status)
		}
	}
}

func TestNonEmptyRule(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindNonEmpty, Columns: []int{0}})

	r := rec("")
	rs.Apply(&r)
	if r.Status != model.StatusInvalid || !hasIssue(&r, "empty") {
		t.Errorf("empty cell: status %v issues %v, want invalid/empty", r.Status, r.Issues)
	}

	ok := rec("value")
	rs.Apply(&ok)
	if ok.Status != model.StatusOK {
		t.Errorf("non-empty cell flagged %v, want StatusOK", ok.Status)
	}
}

// Rules other than non-empty skip blank cells: absence is not malformation.
func TestRulesSkipEmptyValues(t *testing.T) {
	rs := mustRules(t,
		Rule{Kind: KindNumeric, Columns: []int{0}},
		Rule{Kind: KindDate, Columns: []int{1}},
		Rule{Kind: KindCurrency, Columns: []int{2}},
	)
	r := rec("", "", "")

	rs.Apply(&r)
	if r.Status != model.StatusOK {
		t.Errorf("blank record flagged %v, want StatusOK", r.Status)
	}
}

func TestDateRule(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindDate, Columns: []int{0}})

	tests := []struct {
		text string
		want model.Status
	}{
		{"Jan. 5, 1875", model.StatusOK},
		{"March 1, 1875", model.StatusOK},
		{"1875-01-05", model.StatusOK},
		{"3/1/1875", model.StatusOK},
		{"not a date", model.StatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := rec(tt.text)
			rs.Apply(&r)
			if r.Status != tt.want {
				t.Errorf("date %q status = %v, want %v", tt.text, r.Status, tt.want)
			}
		})
	}
}

func TestDateRuleCustomLayouts(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindDate, Columns: []int{0}, Layouts: []string{"02 Jan 2006"}})

	r := rec("05 Jan 1875")
	rs.Apply(&r)
	if r.Status != model.StatusOK {
		t.Errorf("custom layout date flagged %v, want StatusOK", r.Status)
	}

	bad := rec("Jan. 5, 1875") // default layouts do not apply once overridden
	rs.Apply(&bad)
	if bad.Status != model.StatusInvalid {
		t.Errorf("non-matching date status = %v, want StatusInvalid", bad.Status)
	}
}

func TestCurrencyRule(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindCurrency, Columns: []int{0}})

	tests := []struct {
		text string
		want model.Status
	}{
		{"$1,200", model.StatusOK},
		{"$83.33 p.m.", model.StatusOK},
		{"1200", model.StatusWarning}, // numeric but missing the dollar sign
		{"twelve", model.StatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := rec(tt.text)
			rs.Apply(&r)
			if r.Status != tt.want {
				t.Errorf("currency %q status = %v, want %v", tt.text, r.Status, tt.want)
			}
		})
	}
}

func TestPatternRule(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindPattern, Columns: []int{0}, Pattern: `^[A-Z][a-z]+$`})

	ok := rec("Mobile")
	rs.Apply(&ok)
	if ok.Status != model.StatusOK {
		t.Errorf("matching value flagged %v, want StatusOK", ok.Status)
	}

	bad := rec("mobile7")
	rs.Apply(&bad)
	if bad.Status != model.StatusInvalid || !hasIssue(&bad, "does not match") {
		t.Errorf("non-matching value: status %v issues %v", bad.Status, bad.Issues)
	}
}

func TestApplyIgnoresOutOfRangeColumns(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindNumeric, Columns: []int{5}})
	r := rec("abc")

	rs.Apply(&r)
	if r.Status != model.StatusOK {
		t.Errorf("out-of-range column flagged %v, want StatusOK", r.Status)
	}
}

func TestApplyAll(t *testing.T) {
	rs := mustRules(t, Rule{Kind: KindNumeric, Columns: []int{0}})
	recs := []model.Record{rec("100"), rec("1o0"), rec("300")}

	rs.ApplyAll(recs)

	wantStatus := []model.Status{model.StatusOK, model.StatusInvalid, model.StatusOK}
	for i, want := range wantStatus {
		if recs[i].Status != want {
			t.Errorf("record %d status = %v, want %v", i, recs[i].Status, want)
		}
	}
}
