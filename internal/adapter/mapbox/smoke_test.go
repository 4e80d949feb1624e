//go:build mapbox

package mapbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/air-quality-aqi-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Mapbox API and require a valid MAPBOX_TOKEN env var.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_ForwardGeocode(t *testing.T) {
	c := smokeClient(t)

	result, err := c.ForwardGeocode(context.Background(), "Bergen", "Norway")
	require.NoError(t, err)

	assert.InDelta(t, 60.39, result.Lat, 0.2, "lat should be near Bergen")
	assert.InDelta(t, 5.32, result.Lon, 0.2, "lon should be near Bergen")
	assert.Equal(t, "Bergen", result.PlaceName)
	assert.Greater(t, result.Confidence, 0.5)
}

func TestSmoke_ForwardGeocode_Nonsense(t *testing.T) {
	c := smokeClient(t)

	// Mapbox's fuzzy matching may still return results for nonsense queries,
	// so we verify the client handles any response gracefully (no error).
	_, err := c.ForwardGeocode(context.Background(), "XYZNONEXISTENT99", "")
	require.NoError(t, err)
}

func TestSmoke_CachedGeocoder(t *testing.T) {
	c := smokeClient(t)
	cached, err := NewCachedGeocoder(c, 10, observability.NewMetricsForTesting())
	require.NoError(t, err)

	r1, err := cached.ForwardGeocode(context.Background(), "Krakow", "Poland")
	require.NoError(t, err)
	assert.NotZero(t, r1.Lat)

	r2, err := cached.ForwardGeocode(context.Background(), "Krakow", "Poland")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
