package clean

import (
	"math"

	"github.com/epidata-dev/covidseries-api/schema"
)

// Repair removes data-revision artifacts from a cumulative series. A reported
// value below the running maximum to date can only come from a source
// correction, never from the epidemic itself, so per area:
//
//  1. every cell strictly below its ceiling (running max) is cleared,
//  2. cleared and originally missing cells are filled by linear interpolation
//     between the nearest valid neighbors,
//  3. values are rounded half away from zero and coerced to non-negative
//     integers.
//
// Boundary gaps are not extrapolated: a run of missing values before the
// first valid one becomes zero, a run after the last valid one carries that
// value forward. An entirely missing area becomes all zeros.
func Repair(ts *schema.TimeSeries) *schema.CleanSeries {
	series := &schema.CleanSeries{
		Areas:  ts.Areas,
		Dates:  ts.Dates,
		Values: make([][]int64, len(ts.Dates)),
	}
	for i := range ts.Dates {
		series.Values[i] = make([]int64, len(ts.Areas))
	}

	column := make([]float64, len(ts.Dates))
	for j := range ts.Areas {
		ceiling := math.Inf(-1)
		for i := range ts.Dates {
			v := ts.Values[i][j]
			switch {
			case math.IsNaN(v):
				column[i] = math.NaN()
			case v < ceiling:
				column[i] = math.NaN()
			default:
				ceiling = v
				column[i] = v
			}
		}

		interpolate(column)

		for i, v := range column {
			if math.IsNaN(v) || v < 0 {
				v = 0
			}
			series.Values[i][j] = int64(math.Round(v))
		}
	}
	return series
}

// interpolate fills NaN runs in place, linearly between the valid values on
// either side. A leading run has no left endpoint and becomes zero; a
// trailing run has no right endpoint and repeats the last valid value.
func interpolate(column []float64) {
	lastValid := -1
	for i, v := range column {
		if math.IsNaN(v) {
			continue
		}
		switch {
		case lastValid == i-1:
			// no gap
		case lastValid < 0:
			for k := 0; k < i; k++ {
				column[k] = 0
			}
		default:
			step := (v - column[lastValid]) / float64(i-lastValid)
			for k := lastValid + 1; k < i; k++ {
				column[k] = column[lastValid] + step*float64(k-lastValid)
			}
		}
		lastValid = i
	}

	for k := lastValid + 1; k < len(column); k++ {
		if lastValid < 0 {
			column[k] = 0
		} else {
			column[k] = column[lastValid]
		}
	}
}
