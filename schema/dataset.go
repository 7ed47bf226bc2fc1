package schema

import "fmt"

// Group - which population axis a dataset covers
type Group string

// Kind - which cumulative metric a dataset carries
type Kind string

const (
	GroupWorld Group = "world"
	GroupUSA   Group = "usa"

	KindDeaths Kind = "deaths"
	KindCases  Kind = "cases"
)

var (
	Groups = []Group{GroupWorld, GroupUSA}
	Kinds  = []Kind{KindDeaths, KindCases}
)

func (g Group) Valid() bool {
	return g == GroupWorld || g == GroupUSA
}

func (k Kind) Valid() bool {
	return k == KindDeaths || k == KindCases
}

// ResultKey - key of a (group, kind) dataset inside a ResultSet, e.g. "world_deaths"
func ResultKey(group Group, kind Kind) string {
	return fmt.Sprintf("%s_%s", group, kind)
}

// ResultSet - one cleaned series per (group, kind) dataset, keyed by ResultKey
type ResultSet map[string]*CleanSeries
