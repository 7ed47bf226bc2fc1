package jhu

import (
	"context"
	"fmt"

	"github.com/epidata-dev/covidseries-api/schema"
)

const (
	logPrefix = "jhu"
)

var (
	ErrUnknownDataset    = fmt.Errorf("unknown group or kind")
	ErrSourceUnavailable = fmt.Errorf("source unavailable")
	ErrMalformedInput    = fmt.Errorf("malformed input table")
)

// DataSource - interface to obtain one raw wide-format table per
// (group, kind) dataset
type DataSource interface {
	Fetch(ctx context.Context, group schema.Group, kind schema.Kind) (*schema.RawTable, error)
}
