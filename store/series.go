package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epidata-dev/covidseries-api/schema"
)

var (
	ErrNoSeriesCollection = fmt.Errorf("no collection for dataset key")
	ErrSeriesFetch        = fmt.Errorf("fetch clean series fail")
	ErrSeriesDecode       = fmt.Errorf("decode clean series fail")
)

const reportDateLayout = "2006-01-02"

// SeriesOperator - persistence of cleaned series, one record per
// (area, date) observation
type SeriesOperator interface {
	ReplaceSeries(key string, series *schema.CleanSeries) error
	GetSeries(key string) (*schema.CleanSeries, error)
	DeleteSeriesBefore(key string, cutoff time.Time) error
}

func (m *mongoDB) ReplaceSeries(key string, series *schema.CleanSeries) error {
	collection, ok := schema.SeriesCollectionMatrix[key]
	if !ok {
		return ErrNoSeriesCollection
	}
	if len(series.Dates) == 0 || len(series.Areas) == 0 {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key}).Debug("no record to update")
		return nil
	}

	c := m.client.Database(m.database).Collection(collection)
	now := time.Now().UTC().Unix()
	for i, date := range series.Dates {
		reportTime := date.UTC().Unix()
		for j, area := range series.Areas {
			filter := bson.M{"area": area, "report_ts": reportTime}
			replacement := bson.M{
				"area":        area,
				"value":       series.Values[i][j],
				"report_ts":   reportTime,
				"report_date": date.Format(reportDateLayout),
				"update_ts":   now,
			}
			opts := options.Replace().SetUpsert(true)
			if _, err := c.ReplaceOne(context.Background(), filter, replacement, opts); nil != err {
				log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key, "area": area, "error": err}).Error("replace series record")
				return err
			}
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key, "areas": len(series.Areas), "dates": len(series.Dates)}).Debug("ReplaceSeries upsert data")
	return nil
}

func (m *mongoDB) GetSeries(key string) (*schema.CleanSeries, error) {
	collection, ok := schema.SeriesCollectionMatrix[key]
	if !ok {
		return nil, ErrNoSeriesCollection
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "report_ts", Value: 1}, {Key: "area", Value: 1}})
	cur, err := m.client.Database(m.database).Collection(collection).Find(ctx, bson.M{}, opts)
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key, "error": err}).Error("query series records")
		return nil, ErrSeriesFetch
	}
	defer cur.Close(ctx)

	var records []schema.SeriesRecord
	for cur.Next(ctx) {
		var record schema.SeriesRecord
		if err := cur.Decode(&record); nil != err {
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key, "error": err}).Error("decode series record")
			return nil, ErrSeriesDecode
		}
		records = append(records, record)
	}

	return assembleSeries(records), nil
}

func (m *mongoDB) DeleteSeriesBefore(key string, cutoff time.Time) error {
	collection, ok := schema.SeriesCollectionMatrix[key]
	if !ok {
		return ErrNoSeriesCollection
	}

	filter := bson.M{"report_ts": bson.D{{Key: "$lt", Value: cutoff.UTC().Unix()}}}
	res, err := m.client.Database(m.database).Collection(collection).DeleteMany(context.Background(), filter)
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key}).Warnf("series delete old records with error: %s", err)
		return err
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "key": key, "records": res.DeletedCount}).Debug("DeleteSeriesBefore delete data")
	return nil
}

// assembleSeries rebuilds the date-indexed matrix from flat records. Records
// arrive sorted by report time then area; areas are listed in first-seen
// order and a record missing for an (area, date) cell stays zero.
func assembleSeries(records []schema.SeriesRecord) *schema.CleanSeries {
	series := &schema.CleanSeries{}
	if len(records) == 0 {
		return series
	}

	areaIndex := make(map[string]int)
	dateIndex := make(map[int64]int)
	for _, record := range records {
		if _, ok := areaIndex[record.Area]; !ok {
			areaIndex[record.Area] = len(series.Areas)
			series.Areas = append(series.Areas, record.Area)
		}
		if _, ok := dateIndex[record.ReportTime]; !ok {
			dateIndex[record.ReportTime] = len(series.Dates)
			series.Dates = append(series.Dates, time.Unix(record.ReportTime, 0).UTC())
		}
	}
	sort.Slice(series.Dates, func(a, b int) bool {
		return series.Dates[a].Before(series.Dates[b])
	})
	for i, date := range series.Dates {
		dateIndex[date.Unix()] = i
	}

	series.Values = make([][]int64, len(series.Dates))
	for i := range series.Dates {
		series.Values[i] = make([]int64, len(series.Areas))
	}
	for _, record := range records {
		series.Values[dateIndex[record.ReportTime]][areaIndex[record.Area]] = record.Value
	}
	return series
}
