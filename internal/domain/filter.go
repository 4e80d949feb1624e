package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Selection is the set of dashboard filters applied before ranking.
type Selection struct {
	Field        ValueField `json:"field"`
	Mode         DataMode   `json:"mode"`
	Region       string     `json:"region,omitempty"`    // WHO region code; empty means world
	FromYear     int        `json:"from_year,omitempty"` // 0 means open
	ToYear       int        `json:"to_year,omitempty"`   // 0 means open
	StationTypes []string   `json:"station_types"`
}

// HasStationTypes reports whether any station type is selected. Without one
// there is nothing to show and callers render a placeholder instead.
func (s Selection) HasStationTypes() bool {
	return len(s.StationTypes) > 0
}

// Filter returns the readings matching the selection's region, year range and
// station types. Readings without a year are dropped when a year bound is set,
// and readings without a station type are dropped when specific types are
// selected.
func (s Selection) Filter(readings []Reading) ([]Reading, error) {
	stationRe, err := s.stationPattern()
	if err != nil {
		return nil, err
	}

	out := make([]Reading, 0, len(readings))
	for _, r := range readings {
		if s.Region != "" && r.Region != s.Region {
			continue
		}
		if s.FromYear != 0 && (r.Year == 0 || r.Year < s.FromYear) {
			continue
		}
		if s.ToYear != 0 && (r.Year == 0 || r.Year > s.ToYear) {
			continue
		}
		if stationRe != nil && (r.StationType == "" || !stationRe.MatchString(r.StationType)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// stationPattern matches any selected station type as a whole word. It is nil
// when "all" is selected.
func (s Selection) stationPattern() (*regexp.Regexp, error) {
	if len(s.StationTypes) == 0 || slices.Contains(s.StationTypes, StationTypeAll) {
		return nil, nil
	}
	words := make([]string, len(s.StationTypes))
	for i, t := range s.StationTypes {
		words[i] = `\b` + regexp.QuoteMeta(t) + `\b`
	}
	re, err := regexp.Compile(strings.Join(words, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile station type pattern: %w", err)
	}
	return re, nil
}
