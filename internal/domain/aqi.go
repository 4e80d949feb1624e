package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxAQI is the ceiling returned for concentrations above every breakpoint.
const MaxAQI = 500

// Breakpoint maps one concentration range onto one AQI range.
type Breakpoint struct {
	ConcLow  float64 `json:"conc_low"`
	ConcHigh float64 `json:"conc_high"`
	AQILow   int     `json:"aqi_low"`
	AQIHigh  int     `json:"aqi_high"`
}

// BreakpointTable is an ordered, contiguous set of breakpoints for one pollutant.
type BreakpointTable []Breakpoint

var breakpointTables = map[PollutantKind]BreakpointTable{
	PM10: {
		{0, 54, 0, 50},
		{55, 154, 51, 100},
		{155, 254, 101, 150},
		{255, 354, 151, 200},
		{355, 424, 201, 300},
		{425, 529, 301, 400},
		{530, 604, 401, 500},
	},
	PM25: {
		{0.0, 12.0, 0, 50},
		{12.1, 35.4, 51, 100},
		{35.5, 55.4, 101, 150},
		{55.5, 150.4, 151, 200},
		{150.5, 250.4, 201, 300},
		{250.5, 350.4, 301, 400},
		{350.5, 500.4, 401, 500},
	},
	NO2: {
		{0, 53, 0, 50},
		{54, 100, 51, 100},
		{101, 360, 101, 150},
		{361, 649, 151, 200},
		{650, 1249, 201, 300},
		{1250, 1649, 301, 400},
		{1650, 2049, 401, 500},
	},
}

// Breakpoints returns a copy of the breakpoint table for kind.
func Breakpoints(kind PollutantKind) (BreakpointTable, error) {
	table, ok := breakpointTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPollutantKind, int(kind))
	}
	out := make(BreakpointTable, len(table))
	copy(out, table)
	return out, nil
}

// ConvertToAQI converts a concentration in µg/m³ into an AQI score.
// A nil or NaN concentration is missing and yields a nil score without error.
func ConvertToAQI(kind PollutantKind, concentration *float64) (*int, error) {
	table, ok := breakpointTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPollutantKind, int(kind))
	}
	if concentration == nil || math.IsNaN(*concentration) {
		return nil, nil
	}
	if math.IsInf(*concentration, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConcentration, *concentration)
	}

	score := table.interpolate(math.Max(*concentration, 0))
	return &score, nil
}

// ConvertSeries converts a series of concentrations of one pollutant, keeping
// missing entries as nil.
func ConvertSeries(kind PollutantKind, concentrations []*float64) ([]*int, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPollutantKind, int(kind))
	}
	scores := make([]*int, len(concentrations))
	for i, c := range concentrations {
		score, err := ConvertToAQI(kind, c)
		if err != nil {
			return nil, fmt.Errorf("concentration %d: %w", i, err)
		}
		scores[i] = score
	}
	return scores, nil
}

// interpolate expects c >= 0.
func (t BreakpointTable) interpolate(c float64) int {
	for i, bp := range t {
		if c < bp.ConcLow {
			continue
		}
		inRange := c <= bp.ConcHigh
		// Values between two published ranges stay on the lower one, capped at
		// its AQIHigh.
		inGap := i+1 < len(t) && c < t[i+1].ConcLow
		if !inRange && !inGap {
			continue
		}
		aqi := float64(bp.AQILow) + (c-bp.ConcLow)*float64(bp.AQIHigh-bp.AQILow)/(bp.ConcHigh-bp.ConcLow)
		return min(int(math.Round(aqi)), bp.AQIHigh)
	}
	return MaxAQI
}

// ParseConcentration parses a raw spreadsheet cell. Blank cells and the usual
// not-available markers are missing.
func ParseConcentration(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "n/a", "nan", "null", "none":
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConcentration, s)
	}
	if math.IsNaN(v) {
		return nil, nil
	}
	return &v, nil
}
