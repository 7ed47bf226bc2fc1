package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epidata-dev/covidseries-api/consts"
	"github.com/epidata-dev/covidseries-api/schema"
)

func TestCanonicalArea(t *testing.T) {
	mapping := map[string]string{
		"Korea, South":     "South Korea",
		"Taiwan*":          "Taiwan",
		"Burma":            "Myanmar",
		"Holy See":         "Vatican City",
		"Diamond Princess": "Cruise Ship",
		"Grand Princess":   "Cruise Ship",
		"MS Zaandam":       "Cruise Ship",
	}

	for key, value := range mapping {
		assert.Equal(t, value, consts.CanonicalArea(key), "wrong canonical name")
	}
}

func TestCanonicalAreaPassThrough(t *testing.T) {
	assert.Equal(t, "Italy", consts.CanonicalArea("Italy"))
	assert.Equal(t, "US", consts.CanonicalArea("US"))
	assert.Equal(t, "", consts.CanonicalArea(""))
}

func TestRemoteKind(t *testing.T) {
	kind, err := consts.RemoteKind(schema.KindCases)
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", kind)

	kind, err = consts.RemoteKind(schema.KindDeaths)
	assert.NoError(t, err)
	assert.Equal(t, "deaths", kind)

	_, err = consts.RemoteKind(schema.Kind("recovered"))
	assert.Error(t, err)
}

func TestRemoteGroup(t *testing.T) {
	group, err := consts.RemoteGroup(schema.GroupWorld)
	assert.NoError(t, err)
	assert.Equal(t, "global", group)

	group, err = consts.RemoteGroup(schema.GroupUSA)
	assert.NoError(t, err)
	assert.Equal(t, "US", group)

	_, err = consts.RemoteGroup(schema.Group("europe"))
	assert.Error(t, err)
}
