package records

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gridform/tablature/fragments"
	"github.com/gridform/tablature/model"
	"github.com/gridform/tablature/tables"
)

// Assemble produces one record per grid row. Fragment text within a cell is
// joined in reading order (top to bottom, then left to right) with single
// spaces and NFC-normalized. Cell confidence is the minimum contributor
// confidence — a cell is only as trustworthy as its weakest fragment — or
// model.NoDataConfidence for empty cells. Spanning cells replicate their
// value into every spanned logical column, so row width always equals the
// grid's declared column count.
func Assemble(ix *fragments.Index, grid *model.Grid, asg *tables.Assignment) []model.Record {
	cellValues := make([]model.CellValue, len(grid.Cells))
	for i := range grid.Cells {
		cellValues[i] = assembleCell(ix, asg.ByCell[i])
	}

	recs := make([]model.Record, grid.Rows())
	for r := range recs {
		values := make([]model.CellValue, grid.Cols())
		for c := range values {
			values[c] = cellValues[grid.CellIndexAt(r, c)]
		}
		recs[r] = model.Record{
			PageID: ix.PageID(),
			Row:    r,
			Values: values,
		}
	}
	return recs
}

// assembleCell joins a cell's fragments in reading order.
func assembleCell(ix *fragments.Index, ids []int) model.CellValue {
	if len(ids) == 0 {
		return model.CellValue{Text: "", Confidence: model.NoDataConfidence}
	}

	frags := make([]model.Fragment, len(ids))
	for i, id := range ids {
		frags[i] = ix.Fragment(id)
	}

	// Y tolerance for "same text line": half the average fragment height.
	totalHeight := 0.0
	for _, f := range frags {
		totalHeight += f.BBox.Height
	}
	tolerance := totalHeight / float64(len(frags)) / 2

	sort.SliceStable(frags, func(i, j int) bool {
		yi, yj := frags[i].CenterOn(model.AxisY), frags[j].CenterOn(model.AxisY)
		if yj-yi > tolerance || yi-yj > tolerance {
			return yi < yj
		}
		return frags[i].CenterOn(model.AxisX) < frags[j].CenterOn(model.AxisX)
	})

	parts := make([]string, len(frags))
	minConf := frags[0].Confidence
	for i, f := range frags {
		parts[i] = f.Text
		if f.Confidence < minConf {
			minConf = f.Confidence
		}
	}

	return model.CellValue{
		Text:       norm.NFC.String(strings.Join(parts, " ")),
		Confidence: minConf,
	}
}
