package domain

import (
	"fmt"
	"strings"
)

// DataMode selects whether rankings show raw concentrations or AQI scores.
type DataMode int

const (
	ModeConcentration DataMode = iota + 1
	ModeAQI
)

// ParseDataMode accepts "Concentration" and "AQI" in any case.
func ParseDataMode(s string) (DataMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "concentration":
		return ModeConcentration, nil
	case "aqi":
		return ModeAQI, nil
	default:
		return 0, fmt.Errorf("%w: data mode %q", ErrInvalidField, s)
	}
}

func (m DataMode) String() string {
	switch m {
	case ModeConcentration:
		return "Concentration"
	case ModeAQI:
		return "AQI"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText encodes the mode as "Concentration" or "AQI".
func (m DataMode) MarshalText() ([]byte, error) {
	if m != ModeConcentration && m != ModeAQI {
		return nil, fmt.Errorf("%w: data mode %d", ErrInvalidField, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode accepted by ParseDataMode.
func (m *DataMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDataMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ValueField names one numeric attribute of a Reading, e.g. pm25_aqi.
type ValueField struct {
	Pollutant PollutantKind
	Measure   DataMode
}

// FieldFor returns the field holding kind's value in the given mode.
func FieldFor(kind PollutantKind, mode DataMode) ValueField {
	return ValueField{Pollutant: kind, Measure: mode}
}

// ParseValueField parses column names such as "no2_concentration" or "pm25_aqi".
func ParseValueField(s string) (ValueField, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	var measure DataMode
	var prefix string
	switch {
	case strings.HasSuffix(name, "_concentration"):
		measure, prefix = ModeConcentration, strings.TrimSuffix(name, "_concentration")
	case strings.HasSuffix(name, "_aqi"):
		measure, prefix = ModeAQI, strings.TrimSuffix(name, "_aqi")
	default:
		return ValueField{}, fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
	kind, err := ParsePollutantKind(prefix)
	if err != nil {
		return ValueField{}, fmt.Errorf("%w: %q: %w", ErrInvalidField, s, err)
	}
	return ValueField{Pollutant: kind, Measure: measure}, nil
}

// Valid reports whether f names an existing attribute.
func (f ValueField) Valid() bool {
	return f.Pollutant.Valid() && (f.Measure == ModeConcentration || f.Measure == ModeAQI)
}

// String returns the column name, e.g. "pm25_concentration".
func (f ValueField) String() string {
	if f.Measure == ModeAQI {
		return f.Pollutant.String() + "_aqi"
	}
	return f.Pollutant.String() + "_concentration"
}

// DisplayName returns the legend text, e.g. "PM2.5 AQI".
func (f ValueField) DisplayName() string {
	if f.Measure == ModeAQI {
		return f.Pollutant.DisplayName() + " AQI"
	}
	return f.Pollutant.DisplayName() + " Concentration"
}

// Value extracts the field from r. The second result is false when missing.
func (f ValueField) Value(r Reading) (float64, bool) {
	if f.Measure == ModeAQI {
		if v := r.AQI(f.Pollutant); v != nil {
			return float64(*v), true
		}
		return 0, false
	}
	if v := r.Concentration(f.Pollutant); v != nil {
		return *v, true
	}
	return 0, false
}

// MarshalText encodes the field as its column name.
func (f ValueField) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidField, f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a column name accepted by ParseValueField.
func (f *ValueField) UnmarshalText(text []byte) error {
	parsed, err := ParseValueField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
