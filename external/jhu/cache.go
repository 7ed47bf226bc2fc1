package jhu

import (
	"encoding/csv"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/epidata-dev/covidseries-api/schema"
)

// WriteRaw - persist raw tables into a local cache directory, one CSV per
// dataset key, header row first and no index column. A table written here can
// be read back by NewLocalSource.
func WriteRaw(data map[string]*schema.RawTable, directory string) error {
	if err := os.MkdirAll(directory, 0755); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "directory": directory, "error": err}).Error("create cache directory")
		return err
	}

	for key, table := range data {
		if err := writeTable(directory, key, table); nil != err {
			return err
		}
	}
	return nil
}

func writeTable(directory, key string, table *schema.RawTable) error {
	path := filepath.Join(directory, key+".csv")
	f, err := os.Create(path)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "error": err}).Error("create cache file")
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(table.Columns); nil != err {
		return err
	}
	return writer.WriteAll(table.Rows)
}
