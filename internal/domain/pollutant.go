package domain

import (
	"fmt"
	"strings"
)

// PollutantKind identifies which breakpoint table applies to a concentration.
type PollutantKind int

const (
	PM10 PollutantKind = iota + 1
	PM25
	NO2
)

// Pollutants lists every supported kind in display order.
var Pollutants = []PollutantKind{PM10, PM25, NO2}

// ParsePollutantKind accepts the identifiers used by the dashboard ("pm10",
// "pm25", "no2") and a few common spellings of PM2.5.
func ParsePollutantKind(s string) (PollutantKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pm10":
		return PM10, nil
	case "pm25", "pm2.5", "pm2_5":
		return PM25, nil
	case "no2":
		return NO2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPollutantKind, s)
	}
}

// Valid reports whether k is one of the supported kinds.
func (k PollutantKind) Valid() bool {
	return k >= PM10 && k <= NO2
}

// String returns the identifier used in field names, e.g. "pm25".
func (k PollutantKind) String() string {
	switch k {
	case PM10:
		return "pm10"
	case PM25:
		return "pm25"
	case NO2:
		return "no2"
	default:
		return fmt.Sprintf("pollutant(%d)", int(k))
	}
}

// DisplayName returns the human-readable name, e.g. "PM2.5".
func (k PollutantKind) DisplayName() string {
	switch k {
	case PM10:
		return "PM10"
	case PM25:
		return "PM2.5"
	case NO2:
		return "NO2"
	default:
		return k.String()
	}
}

// MarshalText encodes the kind as its identifier.
func (k PollutantKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPollutantKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes an identifier accepted by ParsePollutantKind.
func (k *PollutantKind) UnmarshalText(text []byte) error {
	parsed, err := ParsePollutantKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
