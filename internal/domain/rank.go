package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultRankSize is the number of most-polluted cities in a ranking.
const DefaultRankSize = 10

// aqiAxisMax is the upper end of the AQI axis.
const aqiAxisMax = 500

// logAxisPadding is added to the largest log10 mean on concentration axes.
const logAxisPadding = 1.5

// labelWrapLength is the name length above which labels are split in two.
const labelWrapLength = 14

// RankedEntry is one city in a ranking.
type RankedEntry struct {
	Entity   string   `json:"entity"`
	Mean     float64  `json:"mean"`
	Category Category `json:"category,omitempty"` // AQI mode only
	Color    Color    `json:"color"`
	Label    string   `json:"label"`   // entity name, wrapped for long names
	Display  float64  `json:"display"` // mean rounded for display
}

// Palette holds the colors of one ranked list. In concentration mode every
// entry shares Uniform; in AQI mode Uniform is empty and Colors varies.
type Palette struct {
	Uniform Color   `json:"uniform,omitempty"`
	Colors  []Color `json:"colors"`
}

// AxisRange is the shared value axis of the top and bottom lists.
type AxisRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Log10 bool    `json:"log10"`
}

// Ranking is the result of RankEntities.
type Ranking struct {
	Field ValueField `json:"field"`
	Mode  DataMode   `json:"mode"`
	K     int        `json:"k"`

	// Top holds the k most polluted entities in ascending order, worst last.
	Top []RankedEntry `json:"top"`
	// Bottom holds the k-1 least polluted entities, least polluted first.
	Bottom []RankedEntry `json:"bottom"`

	TopPalette    Palette   `json:"top_palette"`
	BottomPalette Palette   `json:"bottom_palette"`
	Axis          AxisRange `json:"axis"`
}

type entityMean struct {
	entity string
	mean   float64
}

// RankEntities averages field per city and returns the k most polluted and the
// k-1 least polluted cities. Readings with a missing value are skipped, and a
// city with no values at all is left out. A k of zero or less means
// DefaultRankSize.
func RankEntities(readings []Reading, field ValueField, mode DataMode, k int) (Ranking, error) {
	if !field.Valid() {
		return Ranking{}, fmt.Errorf("rank entities: %w: %+v", ErrInvalidField, field)
	}
	if mode != ModeConcentration && mode != ModeAQI {
		return Ranking{}, fmt.Errorf("rank entities: %w: data mode %d", ErrInvalidField, int(mode))
	}
	if len(readings) == 0 {
		return Ranking{}, fmt.Errorf("rank entities: %w", ErrEmptyInput)
	}
	if k <= 0 {
		k = DefaultRankSize
	}

	means := meanByCity(readings, field)
	if len(means) == 0 {
		return Ranking{}, fmt.Errorf("rank entities: no %s values: %w", field, ErrEmptyInput)
	}

	// Stable so that tied cities keep their order of first appearance.
	slices.SortStableFunc(means, func(a, b entityMean) int {
		switch {
		case a.mean > b.mean:
			return -1
		case a.mean < b.mean:
			return 1
		default:
			return 0
		}
	})

	topN := min(k, len(means))
	bottomN := min(k-1, len(means))

	top := reversed(means[:topN])
	bottom := reversed(means[len(means)-bottomN:])

	r := Ranking{Field: field, Mode: mode, K: k}
	switch mode {
	case ModeAQI:
		r.Top, r.TopPalette = classifiedEntries(top)
		r.Bottom, r.BottomPalette = classifiedEntries(bottom)
		r.Axis = AxisRange{Min: 0, Max: aqiAxisMax}
	case ModeConcentration:
		r.Top, r.TopPalette = uniformEntries(top, ColorMostPolluted)
		r.Bottom, r.BottomPalette = uniformEntries(bottom, ColorLeastPolluted)
		r.Axis = LogAxisRange(r.Top)
	}
	return r, nil
}

// meanByCity returns the mean of field per city in order of first appearance.
func meanByCity(readings []Reading, field ValueField) []entityMean {
	type acc struct {
		sum float64
		n   int
	}
	var order []string
	sums := make(map[string]*acc)
	for _, r := range readings {
		a, seen := sums[r.City]
		if !seen {
			a = &acc{}
			sums[r.City] = a
			order = append(order, r.City)
		}
		v, ok := field.Value(r)
		if !ok || math.IsNaN(v) {
			continue
		}
		a.sum += v
		a.n++
	}

	means := make([]entityMean, 0, len(order))
	for _, city := range order {
		a := sums[city]
		if a.n == 0 {
			continue
		}
		means = append(means, entityMean{entity: city, mean: a.sum / float64(a.n)})
	}
	return means
}

func reversed(in []entityMean) []entityMean {
	out := slices.Clone(in)
	slices.Reverse(out)
	return out
}

func classifiedEntries(means []entityMean) ([]RankedEntry, Palette) {
	entries := make([]RankedEntry, len(means))
	palette := Palette{Colors: make([]Color, len(means))}
	for i, m := range means {
		category, color := ClassifyMean(m.mean)
		entries[i] = RankedEntry{
			Entity:   m.entity,
			Mean:     m.mean,
			Category: category,
			Color:    color,
			Label:    WrapLabel(m.entity),
			Display:  roundTo(m.mean, 2),
		}
		palette.Colors[i] = color
	}
	return entries, palette
}

func uniformEntries(means []entityMean, color Color) ([]RankedEntry, Palette) {
	entries := make([]RankedEntry, len(means))
	palette := Palette{Uniform: color, Colors: make([]Color, len(means))}
	for i, m := range means {
		entries[i] = RankedEntry{
			Entity:  m.entity,
			Mean:    m.mean,
			Color:   color,
			Label:   WrapLabel(m.entity),
			Display: roundTo(m.mean, 3),
		}
		palette.Colors[i] = color
	}
	return entries, palette
}

// LogAxisRange returns the symmetric log10 axis used for concentration
// rankings: [-m, m] with m = max(log10(mean)) + 1.5 over the given entries.
// Non-positive means have no logarithm and are ignored.
func LogAxisRange(entries []RankedEntry) AxisRange {
	maxLog := math.Inf(-1)
	for _, e := range entries {
		if e.Mean > 0 {
			maxLog = math.Max(maxLog, math.Log10(e.Mean))
		}
	}
	if math.IsInf(maxLog, -1) {
		maxLog = 0
	}
	limit := maxLog + logAxisPadding
	return AxisRange{Min: -limit, Max: limit, Log10: true}
}

// WrapLabel splits a long multi-word name at its middle space.
func WrapLabel(name string) string {
	if utf8.RuneCountInString(name) <= labelWrapLength || !strings.Contains(name, " ") {
		return name
	}
	var spaces []int
	for i, r := range name {
		if r == ' ' {
			spaces = append(spaces, i)
		}
	}
	at := spaces[len(spaces)/2]
	return name[:at] + "\n" + name[at+1:]
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
