package clean

import (
	"strings"

	"github.com/epidata-dev/covidseries-api/external/jhu"
	"github.com/epidata-dev/covidseries-api/schema"
)

// SelectColumns keeps the identifying column plus every date column and drops
// everything else (auxiliary geography, sub-region codes). Date columns are
// recognized structurally: a header splitting on "/" into exactly three parts
// is a M/D/YY reporting date.
func SelectColumns(t *schema.RawTable) (*schema.RawTable, error) {
	keep := make([]int, 0, len(t.Columns))
	identified := false
	for i, col := range t.Columns {
		switch {
		case col == schema.ColumnCountryRegion || col == schema.ColumnProvinceState:
			identified = true
			keep = append(keep, i)
		case isDateHeader(col):
			keep = append(keep, i)
		}
	}

	if !identified || len(keep) < 2 {
		return nil, jhu.ErrMalformedInput
	}

	selected := &schema.RawTable{
		Columns: make([]string, len(keep)),
		Rows:    make([][]string, len(t.Rows)),
	}
	for j, i := range keep {
		selected.Columns[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			if i < len(row) {
				cells[j] = row[i]
			}
		}
		selected.Rows[r] = cells
	}
	return selected, nil
}

func isDateHeader(header string) bool {
	return len(strings.Split(header, "/")) == 3
}
