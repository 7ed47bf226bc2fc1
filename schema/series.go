package schema

import "time"

// AreaTable - wide numeric table after aggregation: one row per AreaKey, one
// column per reporting date, values summed over the merged source rows.
type AreaTable struct {
	IDColumn string
	Areas    []string
	Dates    []string
	// Values[i][j] is the count for Areas[i] at Dates[j].
	Values [][]float64
}

// TimeSeries - date-indexed form of an AreaTable, before monotonicity repair.
// Missing cells are NaN.
type TimeSeries struct {
	Areas []string
	Dates []time.Time
	// Values[i][j] is the count for Dates[i] and Areas[j].
	Values [][]float64
}

// CleanSeries - repaired series: per area, values are non-negative integers
// and non-decreasing along the date axis.
type CleanSeries struct {
	Areas []string
	Dates []time.Time
	// Values[i][j] is the count for Dates[i] and Areas[j].
	Values [][]int64
}

// Column returns the series of a single area in date order.
func (s *CleanSeries) Column(area string) ([]int64, bool) {
	for j, a := range s.Areas {
		if a != area {
			continue
		}
		col := make([]int64, len(s.Dates))
		for i := range s.Dates {
			col[i] = s.Values[i][j]
		}
		return col, true
	}
	return nil, false
}

// SeriesRecord - one (area, date) observation of a CleanSeries as stored in
// mongodb
type SeriesRecord struct {
	Area       string `json:"area" bson:"area"`
	Value      int64  `json:"value" bson:"value"`
	ReportTime int64  `json:"report_ts" bson:"report_ts"`
	ReportDate string `json:"report_date" bson:"report_date"`
	UpdateTime int64  `json:"update_ts" bson:"update_ts"`
}

// SeriesCollectionMatrix - mongodb collection per dataset key
var SeriesCollectionMatrix = map[string]string{
	ResultKey(GroupWorld, KindDeaths): "cleanSeriesWorldDeaths",
	ResultKey(GroupWorld, KindCases):  "cleanSeriesWorldCases",
	ResultKey(GroupUSA, KindDeaths):   "cleanSeriesUSADeaths",
	ResultKey(GroupUSA, KindCases):    "cleanSeriesUSACases",
}
