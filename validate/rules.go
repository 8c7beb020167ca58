// Package validate applies per-column rules to assembled records. Rules are
// tagged variants rather than executable code, keeping rule sets inert data
// that can be loaded from configuration and tested in isolation. Validation
// only attaches status metadata: it never discards a record and never
// mutates cell text.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gridform/tablature/model"
)

// Kind identifies a validation rule variant.
type Kind int

const (
	KindNonEmpty Kind = iota
	KindNumeric
	KindDate
	KindCurrency
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindNonEmpty:
		return "non-empty"
	case KindNumeric:
		return "numeric"
	case KindDate:
		return "parseable-as-date"
	case KindCurrency:
		return "currency"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Rule is one per-column check. Columns are 0-based indices into the record.
// Pattern applies to KindPattern; Layouts applies to KindDate (time layouts,
// defaulting to common register date forms when empty).
type Rule struct {
	Kind    Kind
	Columns []int
	Pattern string
	Layouts []string
}

// defaultDateLayouts covers the date forms seen in register scans.
var defaultDateLayouts = []string{
	"2006-01-02",
	"Jan. 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"1/2/2006",
}

// currencyPattern accepts dollar amounts and the "per month" notation used
// in compensation columns ("$1,200", "$83.33 p.m.").
var currencyPattern = regexp.MustCompile(`^\$[\d,]+(\.\d+)?( p\.m\.)?$`)

type compiledRule struct {
	rule    Rule
	pattern *regexp.Regexp
	layouts []string
}

// RuleSet is a compiled, validated collection of rules. Rule sets are
// immutable and safe for concurrent use.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet compiles rules, failing fast on unknown kinds, missing columns,
// or invalid patterns. Configuration errors surface here, before any record
// is processed.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{}
	for i, r := range rules {
		if r.Kind < KindNonEmpty || r.Kind > KindPattern {
			return nil, fmt.Errorf("validate: rule %d: unknown rule kind %d", i, r.Kind)
		}
		if len(r.Columns) == 0 {
			return nil, fmt.Errorf("validate: rule %d (%s): no target columns", i, r.Kind)
		}

		cr := compiledRule{rule: r, layouts: r.Layouts}
		if r.Kind == KindPattern {
			p, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("validate: rule %d: bad pattern: %w", i, err)
			}
			cr.pattern = p
		}
		if r.Kind == KindDate && len(cr.layouts) == 0 {
			cr.layouts = defaultDateLayouts
		}
		rs.rules = append(rs.rules, cr)
	}
	return rs, nil
}

// Apply runs every rule against the record, attaching issues and escalating
// status. Empty values only concern KindNonEmpty; other rules skip them.
func (rs *RuleSet) Apply(rec *model.Record) {
	for _, cr := range rs.rules {
		for _, col := range cr.rule.Columns {
			if col < 0 || col >= rec.Width() {
				continue
			}
			text := strings.TrimSpace(rec.Values[col].Text)

			if cr.rule.Kind == KindNonEmpty {
				if text == "" {
					rec.Flag(model.StatusInvalid, fmt.Sprintf("col %d: empty", col))
				}
				continue
			}
			if text == "" {
				continue
			}

			switch cr.rule.Kind {
			case KindNumeric:
				if !isNumeric(text) {
					rec.Flag(model.StatusInvalid, fmt.Sprintf("col %d: non-numeric", col))
				}
			case KindDate:
				if !parsesAsDate(text, cr.layouts) {
					rec.Flag(model.StatusInvalid, fmt.Sprintf("col %d: unparseable date", col))
				}
			case KindCurrency:
				switch {
				case currencyPattern.MatchString(text):
					// ok
				case isNumeric(text):
					rec.Flag(model.StatusWarning, fmt.Sprintf("col %d: suspicious currency value", col))
				default:
					rec.Flag(model.StatusInvalid, fmt.Sprintf("col %d: non-currency", col))
				}
			case KindPattern:
				if !cr.pattern.MatchString(text) {
					rec.Flag(model.StatusInvalid, fmt.Sprintf("col %d: does not match %s", col, cr.rule.Pattern))
				}
			}
		}
	}
}

// ApplyAll validates every record in place.
func (rs *RuleSet) ApplyAll(recs []model.Record) {
	for i := range recs {
		rs.Apply(&recs[i])
	}
}

func isNumeric(text string) bool {
	cleaned := strings.ReplaceAll(text, ",", "")
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}

func parsesAsDate(text string, layouts []string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, text); err == nil {
			return true
		}
	}
	return false
}
