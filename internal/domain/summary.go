package domain

import (
	"fmt"
	"math"
)

// Summary is everything the presentation layer needs for one selection.
type Summary struct {
	// Placeholder is set when no station type is selected; nothing else is
	// filled in and the caller shows an explanatory empty chart.
	Placeholder bool          `json:"placeholder"`
	RegionName  string        `json:"region_name,omitempty"`
	Readings    int           `json:"readings"`
	Trends      []TrendSeries `json:"trends,omitempty"`
	Ranking     *Ranking      `json:"ranking,omitempty"`
	Heatmap     []HeatPoint   `json:"heatmap,omitempty"`
}

// HeatPoint is one weighted map point.
type HeatPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
}

// HeatmapPoints returns a point per reading that has both coordinates and a
// value for field.
func HeatmapPoints(readings []Reading, field ValueField) []HeatPoint {
	var points []HeatPoint
	for _, r := range readings {
		if r.Geo.IsZero() {
			continue
		}
		v, ok := field.Value(r)
		if !ok || math.IsNaN(v) {
			continue
		}
		points = append(points, HeatPoint{Lat: r.Geo.Lat, Lon: r.Geo.Lon, Value: v})
	}
	return points
}

// Summarize filters readings by sel, computes the yearly trends (per region for
// the world view, per country within a region), ranks cities and collects the
// heatmap points. k follows RankEntities.
func Summarize(readings []Reading, sel Selection, k int) (Summary, error) {
	if !sel.HasStationTypes() {
		return Summary{Placeholder: true}, nil
	}
	if !sel.Field.Valid() {
		return Summary{}, fmt.Errorf("summarize: %w: %+v", ErrInvalidField, sel.Field)
	}

	// The selected pollutant follows the data mode: AQI mode ranks the _aqi field.
	field := FieldFor(sel.Field.Pollutant, sel.Mode)

	filtered, err := sel.Filter(readings)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	if len(filtered) == 0 {
		return Summary{}, fmt.Errorf("summarize: %w", ErrEmptyInput)
	}

	groupBy := GroupByRegion
	if sel.Region != "" {
		groupBy = GroupByCountry
	}

	ranking, err := RankEntities(filtered, field, sel.Mode, k)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	return Summary{
		RegionName: RegionName(sel.Region),
		Readings:   len(filtered),
		Trends:     Trends(filtered, field, groupBy),
		Ranking:    &ranking,
		Heatmap:    HeatmapPoints(filtered, field),
	}, nil
}
