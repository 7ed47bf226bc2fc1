package jhu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/schema"
)

type localSource struct {
	directory string
}

func (s *localSource) Fetch(ctx context.Context, group schema.Group, kind schema.Kind) (*schema.RawTable, error) {
	if !group.Valid() || !kind.Valid() {
		return nil, ErrUnknownDataset
	}

	path := CachePath(s.directory, group, kind)
	f, err := os.Open(path)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "error": err}).Error("open cached dataset csv")
		return nil, ErrSourceUnavailable
	}
	defer f.Close()

	return parseTable(f)
}

// CachePath - location of one cached dataset. Cache files are named with the
// public vocabulary, not the provider's.
func CachePath(directory string, group schema.Group, kind schema.Kind) string {
	return filepath.Join(directory, fmt.Sprintf("%s_%s.csv", group, kind))
}

// NewLocalSource - data source backed by a directory of previously cached
// dataset CSVs
func NewLocalSource(directory string) DataSource {
	return &localSource{
		directory: directory,
	}
}
