package clean

import (
	"github.com/epidata-dev/covidseries-api/consts"
	"github.com/epidata-dev/covidseries-api/schema"
)

// NormalizeAreas rewrites raw area labels onto their canonical names using
// the fixed rename table. For the world group, rows labelled "US" are dropped
// afterwards: the usa dataset is the authoritative source for that entity and
// keeping both would double-report it.
func NormalizeAreas(t *schema.RawTable, group schema.Group) *schema.RawTable {
	id, ok := t.IdentifyingColumn()
	if !ok {
		return t
	}

	normalized := &schema.RawTable{
		Columns: t.Columns,
		Rows:    make([][]string, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		area := consts.CanonicalArea(row[id])
		if group == schema.GroupWorld && area == "US" {
			continue
		}
		cells := make([]string, len(row))
		copy(cells, row)
		cells[id] = area
		normalized.Rows = append(normalized.Rows, cells)
	}
	return normalized
}
