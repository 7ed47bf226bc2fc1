package schema

// Identifying column names used by the upstream provider. World tables carry
// one row per country (or province of a country) under "Country/Region", usa
// tables one row per state under "Province_State".
const (
	ColumnCountryRegion = "Country/Region"
	ColumnProvinceState = "Province_State"
)

// RawTable - a wide-format table exactly as parsed from a source CSV. Cells
// stay strings until the cleaning pipeline assigns them types.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// IdentifyingColumn returns the index of the area-label column. Exactly one
// of the two provider names is present in a well-formed table.
func (t *RawTable) IdentifyingColumn() (int, bool) {
	for i, col := range t.Columns {
		if col == ColumnCountryRegion || col == ColumnProvinceState {
			return i, true
		}
	}
	return 0, false
}
