package consts

// ReplaceArea - raw provider labels that fold into a canonical area name.
// Multiple raw labels may share one canonical name (the cruise ships); rows
// renamed onto the same AreaKey are summed later by the aggregation stage.
var ReplaceArea map[string]string

func init() {
	ReplaceArea = make(map[string]string)

	ReplaceArea["Korea, South"] = "South Korea"
	ReplaceArea["Taiwan*"] = "Taiwan"
	ReplaceArea["Burma"] = "Myanmar"
	ReplaceArea["Holy See"] = "Vatican City"
	ReplaceArea["Diamond Princess"] = "Cruise Ship"
	ReplaceArea["Grand Princess"] = "Cruise Ship"
	ReplaceArea["MS Zaandam"] = "Cruise Ship"
}

// CanonicalArea - canonical name for a raw area label; labels outside the
// rename table pass through unchanged
func CanonicalArea(raw string) string {
	if canonical, ok := ReplaceArea[raw]; ok {
		return canonical
	}
	return raw
}
