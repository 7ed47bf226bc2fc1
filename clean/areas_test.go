package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epidata-dev/covidseries-api/clean"
	"github.com/epidata-dev/covidseries-api/schema"
)

func TestNormalizeAreasRenames(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"Country/Region", "1/22/20"},
		Rows: [][]string{
			{"Korea, South", "1"},
			{"Taiwan*", "2"},
			{"Burma", "3"},
			{"Holy See", "4"},
			{"Diamond Princess", "5"},
			{"Grand Princess", "6"},
			{"MS Zaandam", "7"},
			{"Italy", "8"},
		},
	}

	normalized := clean.NormalizeAreas(table, schema.GroupWorld)

	areas := make([]string, len(normalized.Rows))
	for i, row := range normalized.Rows {
		areas[i] = row[0]
	}
	assert.Equal(t, []string{
		"South Korea", "Taiwan", "Myanmar", "Vatican City",
		"Cruise Ship", "Cruise Ship", "Cruise Ship", "Italy",
	}, areas)

	for _, raw := range []string{"Korea, South", "Taiwan*", "Burma", "Holy See", "Diamond Princess", "Grand Princess", "MS Zaandam"} {
		assert.NotContains(t, areas, raw)
	}
}

func TestNormalizeAreasDropsWorldUS(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"Country/Region", "1/22/20"},
		Rows: [][]string{
			{"US", "100"},
			{"Italy", "8"},
		},
	}

	normalized := clean.NormalizeAreas(table, schema.GroupWorld)
	assert.Equal(t, 1, len(normalized.Rows))
	assert.Equal(t, "Italy", normalized.Rows[0][0])
}

func TestNormalizeAreasKeepsUSAGroupRows(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"Province_State", "1/22/20"},
		Rows: [][]string{
			{"US", "100"},
			{"Washington", "1"},
		},
	}

	normalized := clean.NormalizeAreas(table, schema.GroupUSA)
	assert.Equal(t, 2, len(normalized.Rows))
}
