package mapbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchcryptid/air-quality-aqi-service/internal/domain"
	"github.com/couchcryptid/air-quality-aqi-service/internal/observability"
	lru "github.com/hashicorp/golang-lru"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache. The WHO data
// repeats each city once per year and station type, so most lookups hit.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *lru.Cache
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) (*CachedGeocoder, error) {
	cache, err := lru.New(maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create geocode cache: %w", err)
	}
	return &CachedGeocoder{inner: inner, cache: cache, metrics: metrics}, nil
}

func (c *CachedGeocoder) ForwardGeocode(ctx context.Context, city, country string) (domain.GeocodingResult, error) {
	key := cacheKey(city, country)
	if v, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCacheHits.Inc()
		return v.(domain.GeocodingResult), nil
	}
	result, err := c.inner.ForwardGeocode(ctx, city, country)
	if err != nil {
		return result, err
	}
	// Only cache matches so "not found" responses can be retried.
	if result.Lat != 0 || result.Lon != 0 {
		c.cache.Add(key, result)
	}
	return result, nil
}

// Len returns the number of cached lookups.
func (c *CachedGeocoder) Len() int {
	return c.cache.Len()
}

func cacheKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(country))
}
