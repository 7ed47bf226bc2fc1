package clean

import (
	"strconv"

	"github.com/epidata-dev/covidseries-api/external/jhu"
	"github.com/epidata-dev/covidseries-api/schema"
)

// Aggregate folds all rows sharing one AreaKey into a single row by summing
// their date columns elementwise. Blank or unparsable cells count as zero.
// Areas keep their first-appearance order.
func Aggregate(t *schema.RawTable) (*schema.AreaTable, error) {
	id, ok := t.IdentifyingColumn()
	if !ok {
		return nil, jhu.ErrMalformedInput
	}

	dates := make([]string, 0, len(t.Columns)-1)
	dateIndexes := make([]int, 0, len(t.Columns)-1)
	for i, col := range t.Columns {
		if i == id {
			continue
		}
		dates = append(dates, col)
		dateIndexes = append(dateIndexes, i)
	}

	areas := make([]string, 0, len(t.Rows))
	sums := make(map[string][]float64, len(t.Rows))
	for _, row := range t.Rows {
		area := row[id]
		totals, seen := sums[area]
		if !seen {
			totals = make([]float64, len(dates))
			sums[area] = totals
			areas = append(areas, area)
		}
		for j, i := range dateIndexes {
			if i >= len(row) {
				continue
			}
			if v, err := strconv.ParseFloat(row[i], 64); err == nil {
				totals[j] += v
			}
		}
	}

	aggregated := &schema.AreaTable{
		IDColumn: t.Columns[id],
		Areas:    areas,
		Dates:    dates,
		Values:   make([][]float64, len(areas)),
	}
	for i, area := range areas {
		aggregated.Values[i] = sums[area]
	}
	return aggregated, nil
}
