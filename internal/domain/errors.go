package domain

import "errors"

var (
	// ErrInvalidPollutantKind is returned for pollutant identifiers other than
	// PM10, PM2.5 and NO2.
	ErrInvalidPollutantKind = errors.New("invalid pollutant kind")

	// ErrInvalidConcentration is returned when a concentration is neither a
	// finite number nor an explicit missing marker.
	ErrInvalidConcentration = errors.New("invalid concentration")

	// ErrEmptyInput is returned when a ranking is requested over zero usable
	// readings.
	ErrEmptyInput = errors.New("empty input")
)

// ErrInvalidField is returned for unknown value field or data mode names.
var ErrInvalidField = errors.New("invalid value field")
