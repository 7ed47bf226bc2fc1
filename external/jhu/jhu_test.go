package jhu

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epidata-dev/covidseries-api/schema"
)

const worldCSV = `Province/State,Country/Region,Lat,Long,1/22/20,1/23/20
,Italy,41.87,12.56,0,0
,"Korea, South",35.9,127.76,1,1
`

func TestParseTable(t *testing.T) {
	table, err := parseTable(strings.NewReader(worldCSV))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Province/State", "Country/Region", "Lat", "Long", "1/22/20", "1/23/20"}, table.Columns)
	assert.Equal(t, 2, len(table.Rows))
	assert.Equal(t, "Korea, South", table.Rows[1][1])
}

func TestParseTableNoRows(t *testing.T) {
	_, err := parseTable(strings.NewReader("Country/Region,1/22/20\n"))
	assert.Equal(t, ErrMalformedInput, err)
}

func TestParseTableNoIdentifyingColumn(t *testing.T) {
	_, err := parseTable(strings.NewReader("UID,1/22/20\n1,0\n"))
	assert.Equal(t, ErrMalformedInput, err)
}

func TestDownloadURL(t *testing.T) {
	url, err := DownloadURL(downloadURL, schema.GroupWorld, schema.KindCases)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "time_series_covid19_confirmed_global.csv"))

	url, err = DownloadURL(downloadURL, schema.GroupUSA, schema.KindDeaths)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "time_series_covid19_deaths_US.csv"))

	_, err = DownloadURL(downloadURL, schema.Group("asia"), schema.KindDeaths)
	assert.Equal(t, ErrUnknownDataset, err)
}

func TestRemoteSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "time_series_covid19_deaths_global.csv"))
		_, _ = w.Write([]byte(worldCSV))
	}))
	defer server.Close()

	source := &remoteSource{
		client: server.Client(),
		url:    server.URL + "/time_series_covid19_%s_%s.csv",
	}

	table, err := source.Fetch(context.Background(), schema.GroupWorld, schema.KindDeaths)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(table.Rows))
}

func TestRemoteSourceFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := &remoteSource{
		client: server.Client(),
		url:    server.URL + "/time_series_covid19_%s_%s.csv",
	}

	_, err := source.Fetch(context.Background(), schema.GroupWorld, schema.KindDeaths)
	assert.Equal(t, ErrSourceUnavailable, err)
}

func TestLocalSourceFetchMissingFile(t *testing.T) {
	source := NewLocalSource("testdata/does-not-exist")
	_, err := source.Fetch(context.Background(), schema.GroupUSA, schema.KindCases)
	assert.Equal(t, ErrSourceUnavailable, err)
}

func TestWriteRawRoundTrip(t *testing.T) {
	directory, err := ioutil.TempDir("", "jhu-cache")
	assert.NoError(t, err)
	defer os.RemoveAll(directory)

	table, err := parseTable(strings.NewReader(worldCSV))
	assert.NoError(t, err)

	data := map[string]*schema.RawTable{
		schema.ResultKey(schema.GroupWorld, schema.KindDeaths): table,
	}
	assert.NoError(t, WriteRaw(data, directory))

	source := NewLocalSource(directory)
	cached, err := source.Fetch(context.Background(), schema.GroupWorld, schema.KindDeaths)
	assert.NoError(t, err)
	assert.Equal(t, table.Columns, cached.Columns)
	assert.Equal(t, table.Rows, cached.Rows)
}
