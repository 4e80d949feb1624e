package domain

import (
	"context"
	"time"
)

// RawReadingRecord is the flat JSON row produced by the upstream loader from
// the WHO database spreadsheet. All columns arrive as strings.
type RawReadingRecord struct {
	Region      string `json:"who_region"` // e.g. "4_Eur"
	ISO3        string `json:"iso3"`
	Country     string `json:"country_name"`
	City        string `json:"city"`
	Year        string `json:"year"` // "2018" or "2018.0"
	PM10        string `json:"pm10_concentration"`
	PM25        string `json:"pm25_concentration"`
	NO2         string `json:"no2_concentration"`
	StationType string `json:"type_of_stations"` // comma separated, may be blank
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`
}

// IsZero reports whether no coordinates are known. The WHO export leaves
// latitude and longitude blank for some cities.
func (g Geo) IsZero() bool {
	return g.Lat == 0 && g.Lon == 0
}

// Reading is one city-year observation. Nil concentrations and AQI scores are
// missing values.
type Reading struct {
	ID          string `json:"id"`
	Region      string `json:"who_region"`
	ISO3        string `json:"iso3,omitempty"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Year        int    `json:"year,omitempty"`
	StationType string `json:"station_type,omitempty"`
	Geo         Geo    `json:"geo,omitzero"`
	GeoSource   string `json:"geo_source,omitempty"` // see GeoSource* constants

	PM10Concentration *float64 `json:"pm10_concentration"`
	PM25Concentration *float64 `json:"pm25_concentration"`
	NO2Concentration  *float64 `json:"no2_concentration"`

	PM10AQI *int `json:"pm10_aqi"`
	PM25AQI *int `json:"pm25_aqi"`
	NO2AQI  *int `json:"no2_aqi"`

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Concentration returns the concentration recorded for kind.
func (r Reading) Concentration(kind PollutantKind) *float64 {
	switch kind {
	case PM10:
		return r.PM10Concentration
	case PM25:
		return r.PM25Concentration
	case NO2:
		return r.NO2Concentration
	default:
		return nil
	}
}

// AQI returns the AQI score derived for kind.
func (r Reading) AQI(kind PollutantKind) *int {
	switch kind {
	case PM10:
		return r.PM10AQI
	case PM25:
		return r.PM25AQI
	case NO2:
		return r.NO2AQI
	default:
		return nil
	}
}

func (r *Reading) setAQI(kind PollutantKind, score *int) {
	switch kind {
	case PM10:
		r.PM10AQI = score
	case PM25:
		r.PM25AQI = score
	case NO2:
		r.NO2AQI = score
	}
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
