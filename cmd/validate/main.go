// Command validate performs data integrity checks on the air-quality mock
// fixtures: the raw WHO rows and the enriched readings produced from them. It
// verifies row counts, AQI derivation, category coverage, and ranking
// invariants.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -raw-json data/mock/who_readings_sample.json \
//	  -enriched-json data/mock/who_readings_enriched.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/couchcryptid/air-quality-aqi-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	rawJSON := flag.String("raw-json", "", "path to the raw WHO rows fixture")
	enrichedJSON := flag.String("enriched-json", "", "path to the enriched readings fixture")
	flag.Parse()

	if *rawJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *rawJSON, *enrichedJSON); code != 0 {
		os.Exit(code)
	}
}

// run validates the fixtures and writes a report to w. The enriched fixture is
// optional; without it only the raw rows are checked.
func run(w io.Writer, rawJSONPath, enrichedJSONPath string) int {
	fmt.Fprintln(w, "=== Air Quality Fixture Validation ===")
	fmt.Fprintln(w)

	rawRows, err := loadJSON[json.RawMessage](rawJSONPath)
	if err != nil {
		fmt.Fprintf(w, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	var enriched []domain.Reading
	if enrichedJSONPath != "" {
		enriched, err = loadJSON[domain.Reading](enrichedJSONPath)
		if err != nil {
			fmt.Fprintf(w, "FATAL: load enriched JSON: %v\n", err)
			return 1
		}
	}

	parsePhase, readings := validateRawRows(rawRows)
	phases := []*phase{parsePhase}
	if enriched != nil {
		phases = append(phases, validateEnrichmentParity(readings, enriched))
	}
	phases = append(phases,
		validateAQIBounds(readings),
		validateRankingInvariants(readings),
	)

	fmt.Fprintln(w)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Records: %d raw JSON, %d enriched JSON\n", len(rawRows), len(enriched))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Raw rows ──
// Every raw row must parse and enrich without error.

func validateRawRows(rows []json.RawMessage) (*phase, []domain.Reading) {
	p := &phase{name: "Phase 1: Raw Rows (parse + enrich)"}

	readings := make([]domain.Reading, 0, len(rows))
	for i, row := range rows {
		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: row})
		if err != nil {
			p.errorf("row %d: %v", i, err)
			continue
		}
		if parsed.City == "" {
			p.errorf("row %d: missing city", i)
		}
		enriched, err := domain.EnrichReading(parsed)
		if err != nil {
			p.errorf("row %d (%s): %v", i, parsed.City, err)
			continue
		}
		readings = append(readings, enriched)
	}
	return p, readings
}

// ── Phase 2: Enrichment parity ──
// The enriched fixture must match what the domain package derives today.

func validateEnrichmentParity(derived, fixture []domain.Reading) *phase {
	p := &phase{name: "Phase 2: Enrichment Parity (fixture vs derived)"}

	if len(derived) != len(fixture) {
		p.errorf("count: derived %d readings, fixture has %d", len(derived), len(fixture))
		return p
	}

	for i := range derived {
		d, f := derived[i], fixture[i]
		if d.ID != f.ID {
			p.errorf("reading %d: id derived=%s, fixture=%s", i, d.ID, f.ID)
		}
		for _, kind := range domain.Pollutants {
			if !sameScore(d.AQI(kind), f.AQI(kind)) {
				p.errorf("reading %d (%s %d): %s AQI derived=%s, fixture=%s",
					i, d.City, d.Year, kind.DisplayName(), formatScore(d.AQI(kind)), formatScore(f.AQI(kind)))
			}
		}
	}
	return p
}

// ── Phase 3: AQI bounds ──

func validateAQIBounds(readings []domain.Reading) *phase {
	p := &phase{name: "Phase 3: AQI Bounds and Categories"}

	categories := map[domain.Category]int{}
	for i := range readings {
		for _, kind := range domain.Pollutants {
			score := readings[i].AQI(kind)
			if score == nil {
				if readings[i].Concentration(kind) != nil {
					p.errorf("%s %d: %s has a concentration but no AQI", readings[i].City, readings[i].Year, kind.DisplayName())
				}
				continue
			}
			if *score < 0 || *score > domain.MaxAQI {
				p.errorf("%s %d: %s AQI %d outside [0, %d]", readings[i].City, readings[i].Year, kind.DisplayName(), *score, domain.MaxAQI)
			}
			category, _ := domain.ClassifyAQI(*score)
			categories[category]++
		}
	}

	if len(categories) == 0 && len(readings) > 0 {
		p.errorf("no AQI scores derived from %d readings", len(readings))
	}
	return p
}

// ── Phase 4: Ranking invariants ──
// Top and bottom lists must be sized k and k-1, ordered, and drawn from the
// same descending order.

func validateRankingInvariants(readings []domain.Reading) *phase {
	p := &phase{name: "Phase 4: Ranking Invariants"}

	for _, kind := range domain.Pollutants {
		for _, mode := range []domain.DataMode{domain.ModeConcentration, domain.ModeAQI} {
			field := domain.FieldFor(kind, mode)
			ranking, err := domain.RankEntities(readings, field, mode, domain.DefaultRankSize)
			if err != nil {
				// A fixture may hold no values for a pollutant; that is not a failure.
				continue
			}
			checkRanking(p, field, ranking)
		}
	}
	return p
}

func checkRanking(p *phase, field domain.ValueField, ranking domain.Ranking) {
	if len(ranking.Top) > ranking.K {
		p.errorf("%s: top has %d entries, k=%d", field, len(ranking.Top), ranking.K)
	}
	if len(ranking.Bottom) > max(ranking.K-1, 0) {
		p.errorf("%s: bottom has %d entries, k-1=%d", field, len(ranking.Bottom), ranking.K-1)
	}
	ascending := func(entries []domain.RankedEntry) bool {
		return slices.IsSortedFunc(entries, func(a, b domain.RankedEntry) int {
			switch {
			case a.Mean < b.Mean:
				return -1
			case a.Mean > b.Mean:
				return 1
			}
			return 0
		})
	}
	if !ascending(ranking.Top) {
		p.errorf("%s: top is not in ascending order", field)
	}
	if !ascending(ranking.Bottom) {
		p.errorf("%s: bottom is not least polluted first", field)
	}
	if len(ranking.Top) > 0 && len(ranking.Bottom) > 0 &&
		ranking.Bottom[0].Mean > ranking.Top[len(ranking.Top)-1].Mean {
		p.errorf("%s: least polluted entity exceeds most polluted", field)
	}
}

func sameScore(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func formatScore(s *int) string {
	if s == nil {
		return "missing"
	}
	return fmt.Sprint(*s)
}
