package domain

import (
	"maps"
	"slices"
)

// WHO region codes as they appear in the who_region column.
var regionNames = map[string]string{
	"":        "World",
	"1_Afr":   "Africa",
	"2_Amr":   "Americas",
	"3_Sear":  "South-East Asia",
	"4_Eur":   "Europe",
	"5_Emr":   "Eastern Mediterranean",
	"6_Wpr":   "Western Pacific",
	"7_NonMS": "Non-member state",
}

// RegionName returns the display name of a WHO region code, or the code
// itself when unknown. The empty code is the whole world.
func RegionName(code string) string {
	if name, ok := regionNames[code]; ok {
		return name
	}
	return code
}

// RegionCodes returns the known WHO region codes in order, the world view first.
func RegionCodes() []string {
	return slices.Sorted(maps.Keys(regionNames))
}

// StationTypeAll disables station-type filtering.
const StationTypeAll = "all"

// stationTypeGroups lists the raw station types each selectable key covers.
var stationTypeGroups = map[string][]string{
	StationTypeAll: {StationTypeAll},
	"Rural":        {"Rural"},
	"Urban":        {"Fond Urbain", "Urban Traffic", "Urban", "Urban Traffic/Residential And Commercial Area"},
	"Residential":  {"Residential - industrial", "Residential And Commercial Area", "Urban Traffic/Residential And Commercial Area"},
	"Suburban":     {"Suburban"},
	"Industrial":   {"Residential - industrial", "Industrial"},
	"Background":   {"Background"},
	"Traffic":      {"Traffic", "Urban Traffic/Residential And Commercial Area"},
}

// StationTypeGroup returns the raw station types covered by a selectable key.
func StationTypeGroup(key string) ([]string, bool) {
	group, ok := stationTypeGroups[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), group...), true
}

// StationTypeKeys returns the selectable station-type keys, "all" first.
func StationTypeKeys() []string {
	keys := make([]string, 0, len(stationTypeGroups))
	for k := range stationTypeGroups {
		if k != StationTypeAll {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return append([]string{StationTypeAll}, keys...)
}
