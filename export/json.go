package export

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/gridform/tablature/model"
)

// jsonValue is one cell value prepared for JSON export
type jsonValue struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// jsonRecord is one record prepared for JSON export
type jsonRecord struct {
	PageID  string      `json:"page_id"`
	Row     int         `json:"row"`
	Section string      `json:"section,omitempty"`
	Values  []jsonValue `json:"values"`
	Status  string      `json:"status"`
	Issues  []string    `json:"issues,omitempty"`
}

// exportJSON writes records as a JSON array
func (e *Exporter) exportJSON(recs []model.Record, w io.Writer) error {
	out := make([]jsonRecord, len(recs))
	for i, rec := range recs {
		jr := jsonRecord{
			PageID: rec.PageID,
			Row:    rec.Row,
			Status: rec.Status.String(),
			Issues: rec.Issues,
			Values: make([]jsonValue, len(rec.Values)),
		}
		if e.config.IncludeSection {
			jr.Section = rec.Section
		}
		for j, v := range rec.Values {
			jr.Values[j] = jsonValue{Text: v.Text, Confidence: v.Confidence}
		}
		out[i] = jr
	}

	var (
		data []byte
		err  error
	)
	if e.config.PrettyPrint {
		data, err = sonic.MarshalIndent(out, "", "  ")
	} else {
		data, err = sonic.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("export: encoding JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("export: writing JSON: %w", err)
	}
	return nil
}
