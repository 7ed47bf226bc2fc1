package jhu

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/consts"
	"github.com/epidata-dev/covidseries-api/schema"
)

const (
	downloadURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/" +
		"master/csse_covid_19_data/csse_covid_19_time_series/" +
		"time_series_covid19_%s_%s.csv"
	defaultTimeout = 15 * time.Second
)

type remoteSource struct {
	client *http.Client
	url    string
}

func (s *remoteSource) Fetch(ctx context.Context, group schema.Group, kind schema.Kind) (*schema.RawTable, error) {
	address, err := DownloadURL(s.url, group, kind)
	if nil != err {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "url": address}).Info("download dataset")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": address, "error": err}).Error("new download request")
		return nil, ErrSourceUnavailable
	}

	resp, err := s.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": address, "error": err}).Error("download dataset csv")
		return nil, ErrSourceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": address, "status": resp.StatusCode}).Error("download dataset csv")
		return nil, ErrSourceUnavailable
	}

	return parseTable(resp.Body)
}

// DownloadURL - provider address of one dataset. The provider uses its own
// vocabulary in filenames, so group and kind are translated first.
func DownloadURL(template string, group schema.Group, kind schema.Kind) (string, error) {
	remoteGroup, err := consts.RemoteGroup(group)
	if nil != err {
		return "", ErrUnknownDataset
	}
	remoteKind, err := consts.RemoteKind(kind)
	if nil != err {
		return "", ErrUnknownDataset
	}
	return fmt.Sprintf(template, remoteKind, remoteGroup), nil
}

// NewRemoteSource - data source backed by the John Hopkins CSSE github
// repository
func NewRemoteSource() DataSource {
	return &remoteSource{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		url: downloadURL,
	}
}
