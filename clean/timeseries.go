package clean

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/external/jhu"
	"github.com/epidata-dev/covidseries-api/schema"
)

// Source date headers look like "1/22/20".
const dateHeaderLayout = "1/2/06"

// ToTimeSeries transposes an aggregated wide table into a date-indexed series:
// AreaKeys become column labels, date headers become real calendar dates and
// rows are sorted ascending by date.
func ToTimeSeries(t *schema.AreaTable) (*schema.TimeSeries, error) {
	type datedColumn struct {
		date  time.Time
		index int
	}

	columns := make([]datedColumn, 0, len(t.Dates))
	for j, header := range t.Dates {
		date, err := time.Parse(dateHeaderLayout, header)
		if nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "header": header, "error": err}).Error("parse date header")
			return nil, jhu.ErrMalformedInput
		}
		columns = append(columns, datedColumn{date: date, index: j})
	}
	sort.Slice(columns, func(a, b int) bool {
		return columns[a].date.Before(columns[b].date)
	})

	series := &schema.TimeSeries{
		Areas:  t.Areas,
		Dates:  make([]time.Time, len(columns)),
		Values: make([][]float64, len(columns)),
	}
	for i, col := range columns {
		series.Dates[i] = col.date
		row := make([]float64, len(t.Areas))
		for j := range t.Areas {
			row[j] = t.Values[j][col.index]
		}
		series.Values[i] = row
	}
	return series, nil
}
