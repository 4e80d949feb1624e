package domain

import (
	"context"
	"log/slog"
)

// Values of Reading.GeoSource.
const (
	GeoSourceOriginal = "original"
	GeoSourceGeocoded = "geocoded"
	GeoSourceFailed   = "failed"
)

// GeocodingResult contains location data returned by a geocoding provider.
type GeocodingResult struct {
	Lat        float64
	Lon        float64
	PlaceName  string
	Confidence float64 // 0.0–1.0 provider confidence score
}

// Geocoder resolves a city to coordinates.
type Geocoder interface {
	ForwardGeocode(ctx context.Context, city, country string) (GeocodingResult, error)
}

// BackfillCoordinates looks up coordinates for a reading that arrived without
// them. A nil geocoder leaves the reading untouched. Lookup failures are
// logged and recorded in GeoSource; they never fail the reading.
func BackfillCoordinates(ctx context.Context, r Reading, geocoder Geocoder, logger *slog.Logger) Reading {
	if geocoder == nil {
		return r
	}
	if !r.Geo.IsZero() || r.City == "" {
		r.GeoSource = GeoSourceOriginal
		return r
	}

	result, err := geocoder.ForwardGeocode(ctx, r.City, r.Country)
	if err != nil {
		logger.Warn("forward geocoding failed",
			"id", r.ID,
			"city", r.City,
			"country", r.Country,
			"error", err,
		)
		r.GeoSource = GeoSourceFailed
		return r
	}
	if result.Lat == 0 && result.Lon == 0 {
		r.GeoSource = GeoSourceOriginal
		return r
	}

	r.Geo = Geo{Lat: result.Lat, Lon: result.Lon}
	r.GeoSource = GeoSourceGeocoded
	return r
}
