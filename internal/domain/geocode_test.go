package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockGeocoder struct {
	result GeocodingResult
	err    error
	calls  []string
}

func (m *mockGeocoder) ForwardGeocode(_ context.Context, city, country string) (GeocodingResult, error) {
	m.calls = append(m.calls, city+"|"+country)
	return m.result, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBackfillCoordinates_NilGeocoder(t *testing.T) {
	r := Reading{City: "Hobart"}
	got := BackfillCoordinates(context.Background(), r, nil, discardLogger())
	assert.Equal(t, r, got)
}

func TestBackfillCoordinates_KeepsExistingCoordinates(t *testing.T) {
	geo := &mockGeocoder{}
	r := Reading{City: "Bergen", Geo: Geo{Lat: 60.39, Lon: 5.32}}

	got := BackfillCoordinates(context.Background(), r, geo, discardLogger())
	assert.Equal(t, r.Geo, got.Geo)
	assert.Equal(t, GeoSourceOriginal, got.GeoSource)
	assert.Empty(t, geo.calls)
}

func TestBackfillCoordinates_Geocoded(t *testing.T) {
	geo := &mockGeocoder{result: GeocodingResult{Lat: -42.88, Lon: 147.33, PlaceName: "Hobart", Confidence: 0.9}}
	r := Reading{City: "Hobart", Country: "Australia"}

	got := BackfillCoordinates(context.Background(), r, geo, discardLogger())
	assert.Equal(t, Geo{Lat: -42.88, Lon: 147.33}, got.Geo)
	assert.Equal(t, GeoSourceGeocoded, got.GeoSource)
	assert.Equal(t, []string{"Hobart|Australia"}, geo.calls)
}

func TestBackfillCoordinates_NotFound(t *testing.T) {
	geo := &mockGeocoder{}
	got := BackfillCoordinates(context.Background(), Reading{City: "Atlantis"}, geo, discardLogger())
	assert.True(t, got.Geo.IsZero())
	assert.Equal(t, GeoSourceOriginal, got.GeoSource)
}

func TestBackfillCoordinates_Failure(t *testing.T) {
	geo := &mockGeocoder{err: errors.New("mapbox API error: status 401")}
	got := BackfillCoordinates(context.Background(), Reading{City: "Halifax"}, geo, discardLogger())
	assert.True(t, got.Geo.IsZero())
	assert.Equal(t, GeoSourceFailed, got.GeoSource)
}
