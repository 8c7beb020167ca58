package records

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gridform/tablature/model"
)

// Historical registers abbreviate repeated values with "do" (ditto).
var dittoPattern = regexp.MustCompile(`(?i)^(do|ditto)\.?$`)

// IsDitto reports whether a cell value is a ditto placeholder.
func IsDitto(text string) bool {
	return dittoPattern.MatchString(strings.TrimSpace(text))
}

// ResolveDittos replaces ditto placeholders with the most recent non-ditto
// value from the same column, annotating each resolved record. A ditto with
// no preceding value is left in place and the record is flagged with a
// warning. Resolution happens in record order, column by column.
func ResolveDittos(recs []model.Record) {
	if len(recs) == 0 {
		return
	}

	last := make([]string, recs[0].Width())
	for i := range recs {
		for c := range recs[i].Values {
			if c >= len(last) {
				break
			}
			text := strings.TrimSpace(recs[i].Values[c].Text)
			switch {
			case IsDitto(text):
				if last[c] != "" {
					recs[i].Values[c].Text = last[c]
					recs[i].Annotate(fmt.Sprintf("col %d: ditto resolved", c))
				} else {
					recs[i].Flag(model.StatusWarning, fmt.Sprintf("col %d: unresolved ditto", c))
				}
			case text != "":
				last[c] = recs[i].Values[c].Text
			}
		}
	}
}

// PropagateSections splits section-heading rows (a record whose only
// non-empty value sits in column 0 and matches isHeading) out of the record
// sequence and stamps the current heading onto the Section field of the
// records that follow it. Heading text is returned with any trailing period
// stripped, the way register headings are written ("Alabama.").
func PropagateSections(recs []model.Record, isHeading func(string) bool) (data []model.Record, headings []string) {
	section := ""
	for _, rec := range recs {
		if h, ok := headingOf(&rec, isHeading); ok {
			section = h
			headings = append(headings, h)
			continue
		}
		rec.Section = section
		data = append(data, rec)
	}
	return data, headings
}

func headingOf(rec *model.Record, isHeading func(string) bool) (string, bool) {
	if isHeading == nil || rec.Width() == 0 {
		return "", false
	}
	first := strings.TrimSpace(rec.Values[0].Text)
	if first == "" {
		return "", false
	}
	for _, v := range rec.Values[1:] {
		if strings.TrimSpace(v.Text) != "" && strings.TrimSpace(v.Text) != first {
			return "", false
		}
	}
	h := strings.TrimSuffix(first, ".")
	if !isHeading(h) {
		return "", false
	}
	return h, true
}
