package consts

import (
	"fmt"

	"github.com/epidata-dev/covidseries-api/schema"
)

// The upstream provider names its files with its own vocabulary: "confirmed"
// instead of "cases" and "global"/"US" instead of "world"/"usa". These are
// fixed lookups, never inferred.
var (
	remoteKind  map[schema.Kind]string
	remoteGroup map[schema.Group]string
)

func init() {
	remoteKind = make(map[schema.Kind]string)
	remoteKind[schema.KindCases] = "confirmed"
	remoteKind[schema.KindDeaths] = "deaths"

	remoteGroup = make(map[schema.Group]string)
	remoteGroup[schema.GroupWorld] = "global"
	remoteGroup[schema.GroupUSA] = "US"
}

// RemoteKind - provider vocabulary for a public kind
func RemoteKind(kind schema.Kind) (string, error) {
	if k, ok := remoteKind[kind]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%s is not a valid kind", kind)
}

// RemoteGroup - provider vocabulary for a public group
func RemoteGroup(group schema.Group) (string, error) {
	if g, ok := remoteGroup[group]; ok {
		return g, nil
	}
	return "", fmt.Errorf("%s is not a valid group", group)
}
