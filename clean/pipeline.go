package clean

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/external/jhu"
	"github.com/epidata-dev/covidseries-api/schema"
)

const logPrefix = "clean"

// Pipeline - fetches raw datasets and runs the cleaning stages over them
type Pipeline struct {
	source jhu.DataSource
}

// Run - clean one (group, kind) dataset: fetch, select columns, normalize
// area names, aggregate sub-regions, transpose to a date index and repair
// downward revisions
func (p *Pipeline) Run(ctx context.Context, group schema.Group, kind schema.Kind) (*schema.CleanSeries, error) {
	raw, err := p.source.Fetch(ctx, group, kind)
	if nil != err {
		return nil, err
	}

	selected, err := SelectColumns(raw)
	if nil != err {
		return nil, err
	}

	aggregated, err := Aggregate(NormalizeAreas(selected, group))
	if nil != err {
		return nil, err
	}

	series, err := ToTimeSeries(aggregated)
	if nil != err {
		return nil, err
	}

	return Repair(series), nil
}

// RunAll - clean all four (group, kind) datasets. The four runs share no
// state and execute concurrently; a failed dataset is reported in the
// returned error map and omitted from the ResultSet without affecting its
// siblings.
func (p *Pipeline) RunAll(ctx context.Context) (schema.ResultSet, map[string]error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  = schema.ResultSet{}
		failures = map[string]error{}
	)

	for _, group := range schema.Groups {
		for _, kind := range schema.Kinds {
			wg.Add(1)
			go func(group schema.Group, kind schema.Kind) {
				defer wg.Done()

				key := schema.ResultKey(group, kind)
				series, err := p.Run(ctx, group, kind)

				mu.Lock()
				defer mu.Unlock()
				if nil != err {
					log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "error": err}).Error("clean dataset")
					failures[key] = err
					return
				}
				log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "areas": len(series.Areas), "dates": len(series.Dates)}).Info("dataset cleaned")
				results[key] = series
			}(group, kind)
		}
	}
	wg.Wait()

	return results, failures
}

// NewPipeline - new cleaning pipeline over a data source
func NewPipeline(source jhu.DataSource) *Pipeline {
	return &Pipeline{
		source: source,
	}
}
