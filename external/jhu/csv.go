package jhu

import (
	"encoding/csv"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/schema"
)

func parseTable(r io.Reader) (*schema.RawTable, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("parse csv")
		return nil, ErrMalformedInput
	}
	if len(records) == 0 {
		return nil, ErrMalformedInput
	}

	table := &schema.RawTable{
		Columns: records[0],
		Rows:    records[1:],
	}
	return table, validateTable(table)
}

func validateTable(table *schema.RawTable) error {
	if len(table.Rows) == 0 {
		log.WithField("prefix", logPrefix).Error("table has no data rows")
		return ErrMalformedInput
	}
	if _, ok := table.IdentifyingColumn(); !ok {
		log.WithFields(log.Fields{"prefix": logPrefix, "columns": len(table.Columns)}).Error("table has no identifying column")
		return ErrMalformedInput
	}
	return nil
}
