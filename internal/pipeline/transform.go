package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/air-quality-aqi-service/internal/domain"
	"github.com/couchcryptid/air-quality-aqi-service/internal/observability"
)

// AQITransformer implements Transformer by parsing a WHO row, deriving the
// AQI of each pollutant and, when a geocoder is configured, backfilling
// missing coordinates.
type AQITransformer struct {
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates an AQITransformer. Pass a nil geocoder to disable
// coordinate backfilling.
func NewTransformer(geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *AQITransformer {
	return &AQITransformer{geocoder: geocoder, logger: logger, metrics: metrics}
}

func (t *AQITransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.Reading, error) {
	reading, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.Reading{}, err
	}

	reading, err = domain.EnrichReading(reading)
	if err != nil {
		return domain.Reading{}, err
	}

	for _, kind := range domain.Pollutants {
		outcome := "converted"
		if reading.AQI(kind) == nil {
			outcome = "missing"
		}
		t.metrics.AQIConversions.WithLabelValues(kind.String(), outcome).Inc()
	}

	reading = domain.BackfillCoordinates(ctx, reading, t.geocoder, t.logger)

	t.logger.Debug("reading enriched",
		"id", reading.ID,
		"city", reading.City,
		"year", reading.Year,
		"geo_source", reading.GeoSource,
	)
	return reading, nil
}
