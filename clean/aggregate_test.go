package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epidata-dev/covidseries-api/clean"
	"github.com/epidata-dev/covidseries-api/schema"
)

func TestAggregateMergesRows(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"Country/Region", "1/22/20", "1/23/20", "1/24/20"},
		Rows: [][]string{
			{"South Korea", "1", "2", "5"},
			{"South Korea", "0", "1", "1"},
			{"Italy", "0", "0", "2"},
		},
	}

	aggregated, err := clean.Aggregate(table)
	assert.NoError(t, err)
	assert.Equal(t, "Country/Region", aggregated.IDColumn)
	assert.Equal(t, []string{"South Korea", "Italy"}, aggregated.Areas)
	assert.Equal(t, []string{"1/22/20", "1/23/20", "1/24/20"}, aggregated.Dates)
	assert.Equal(t, []float64{1, 3, 6}, aggregated.Values[0])
	assert.Equal(t, []float64{0, 0, 2}, aggregated.Values[1])
}

func TestAggregateMissingCountsAsZero(t *testing.T) {
	table := &schema.RawTable{
		Columns: []string{"Country/Region", "1/22/20", "1/23/20"},
		Rows: [][]string{
			{"Cruise Ship", "2", ""},
			{"Cruise Ship", "", "3"},
		},
	}

	aggregated, err := clean.Aggregate(table)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Cruise Ship"}, aggregated.Areas)
	assert.Equal(t, []float64{2, 3}, aggregated.Values[0])
}
