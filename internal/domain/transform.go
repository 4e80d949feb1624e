package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into a Reading.
// It expects the flat spreadsheet-style JSON produced by the upstream loader.
func ParseRawEvent(raw RawEvent) (Reading, error) {
	var rec RawReadingRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Reading{}, fmt.Errorf("parse raw event: %w", err)
	}

	pm10, err := ParseConcentration(rec.PM10)
	if err != nil {
		return Reading{}, fmt.Errorf("parse pm10_concentration: %w", err)
	}
	pm25, err := ParseConcentration(rec.PM25)
	if err != nil {
		return Reading{}, fmt.Errorf("parse pm25_concentration: %w", err)
	}
	no2, err := ParseConcentration(rec.NO2)
	if err != nil {
		return Reading{}, fmt.Errorf("parse no2_concentration: %w", err)
	}

	city := strings.TrimSpace(rec.City)
	year := parseYear(rec.Year)
	stationType := strings.TrimSpace(rec.StationType)

	return Reading{
		ID:                generateID(rec.ISO3, city, year, stationType),
		Region:            strings.TrimSpace(rec.Region),
		ISO3:              strings.ToUpper(strings.TrimSpace(rec.ISO3)),
		Country:           strings.TrimSpace(rec.Country),
		City:              city,
		Year:              year,
		StationType:       stationType,
		Geo:               Geo{Lat: parseFloatOrZero(rec.Latitude), Lon: parseFloatOrZero(rec.Longitude)},
		PM10Concentration: pm10,
		PM25Concentration: pm25,
		NO2Concentration:  no2,

		RawPayload: raw.Value,
	}, nil
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseYear accepts "2018" and the float rendering "2018.0". Unknown years are 0.
func parseYear(s string) int {
	v := parseFloatOrZero(s)
	if v < 1 || v != float64(int(v)) {
		return 0
	}
	return int(v)
}

// generateID produces a deterministic ID from the reading's key fields so that
// replaying the same row produces the same ID.
func generateID(iso3, city string, year int, stationType string) string {
	input := fmt.Sprintf("%s|%s|%d|%s", strings.ToUpper(iso3), strings.ToLower(city), year, stationType)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}

// EnrichReading derives the AQI score of every pollutant from its
// concentration and stamps the processing time. Missing concentrations leave
// the matching AQI missing.
func EnrichReading(r Reading) (Reading, error) {
	for _, kind := range Pollutants {
		score, err := ConvertToAQI(kind, r.Concentration(kind))
		if err != nil {
			return Reading{}, fmt.Errorf("convert %s: %w", kind, err)
		}
		r.setAQI(kind, score)
	}
	r.ProcessedAt = clock.Now()
	return r, nil
}

// DeriveMissingAQI fills in the AQI of every pollutant that has a
// concentration but no score. Scores supplied by the caller are kept.
func DeriveMissingAQI(r Reading) (Reading, error) {
	for _, kind := range Pollutants {
		if r.AQI(kind) != nil || r.Concentration(kind) == nil {
			continue
		}
		score, err := ConvertToAQI(kind, r.Concentration(kind))
		if err != nil {
			return Reading{}, fmt.Errorf("convert %s: %w", kind, err)
		}
		r.setAQI(kind, score)
	}
	return r, nil
}

// SerializeReading marshals a reading into an OutputEvent keyed by its ID.
func SerializeReading(r Reading) (OutputEvent, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize reading: %w", err)
	}
	return OutputEvent{
		Key:   []byte(r.ID),
		Value: data,
		Headers: map[string]string{
			"city":         r.City,
			"who_region":   r.Region,
			"processed_at": r.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
