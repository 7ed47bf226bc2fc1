package main

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/clean"
	"github.com/epidata-dev/covidseries-api/store"
)

type seriesCrawler struct {
	mongoStore store.MongoStore
	pipeline   *clean.Pipeline
}

func (c seriesCrawler) Run() {
	results, failures := c.pipeline.RunAll(context.Background())

	for key, err := range failures {
		log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "error": err}).Error("clean dataset")
		sentry.CaptureException(fmt.Errorf("clean dataset %s: %s", key, err))
	}

	for key, series := range results {
		if err := c.mongoStore.ReplaceSeries(key, series); nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "error": err}).Error("store clean series")
			sentry.CaptureException(fmt.Errorf("store clean series %s: %s", key, err))
			continue
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "dataset": key, "areas": len(series.Areas)}).Debug("clean series stored")
	}
}

// newSeriesCrawler - new cron job for the daily series crawler
func newSeriesCrawler(mongoStore store.MongoStore, pipeline *clean.Pipeline) Cron {
	return &seriesCrawler{
		mongoStore: mongoStore,
		pipeline:   pipeline,
	}
}
