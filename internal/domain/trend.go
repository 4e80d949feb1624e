package domain

import (
	"cmp"
	"slices"
)

// TrendPoint is the mean of a field over one year.
type TrendPoint struct {
	Year int     `json:"year"`
	Mean float64 `json:"mean"`
}

// TrendSeries is the yearly trend of one region or country.
type TrendSeries struct {
	Key    string       `json:"key"`
	Name   string       `json:"name"`
	Points []TrendPoint `json:"points"`
}

// GroupBy selects the grouping of trend series.
type GroupBy int

const (
	GroupByRegion GroupBy = iota + 1
	GroupByCountry
)

// Trends computes yearly means of field per group. Series appear in order of
// first appearance and points are sorted by year. Readings without a year or
// without a value are ignored, and groups left with no points are omitted.
func Trends(readings []Reading, field ValueField, groupBy GroupBy) []TrendSeries {
	type acc struct {
		sum float64
		n   int
	}
	var order []string
	byGroup := make(map[string]map[int]*acc)

	for _, r := range readings {
		key := r.Country
		if groupBy == GroupByRegion {
			key = r.Region
		}
		years, seen := byGroup[key]
		if !seen {
			years = make(map[int]*acc)
			byGroup[key] = years
			order = append(order, key)
		}
		v, ok := field.Value(r)
		if !ok || r.Year == 0 {
			continue
		}
		a := years[r.Year]
		if a == nil {
			a = &acc{}
			years[r.Year] = a
		}
		a.sum += v
		a.n++
	}

	series := make([]TrendSeries, 0, len(order))
	for _, key := range order {
		years := byGroup[key]
		if len(years) == 0 {
			continue
		}
		points := make([]TrendPoint, 0, len(years))
		for year, a := range years {
			points = append(points, TrendPoint{Year: year, Mean: a.sum / float64(a.n)})
		}
		slices.SortFunc(points, func(a, b TrendPoint) int { return cmp.Compare(a.Year, b.Year) })

		name := key
		if groupBy == GroupByRegion {
			name = RegionName(key)
		}
		series = append(series, TrendSeries{Key: key, Name: name, Points: points})
	}
	return series
}
