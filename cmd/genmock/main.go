// Command genmock reads a CSV export of the WHO ambient air quality database
// and generates the JSON fixtures used by the test suites. It runs the actual
// domain package so the enriched fixture matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv who_ambient_air_quality_v6.csv \
//	  -raw-out data/mock/who_readings_sample.json \
//	  -enriched-out data/mock/who_readings_enriched.json \
//	  -limit 200
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/air-quality-aqi-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// requiredColumns are the CSV headers copied into each raw record.
var requiredColumns = []string{
	"who_region", "iso3", "country_name", "city", "year",
	"pm10_concentration", "pm25_concentration", "no2_concentration",
	"type_of_stations", "latitude", "longitude",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "path to the WHO database CSV export")
	rawOut := flag.String("raw-out", "", "output path for the raw JSON fixture")
	enrichedOut := flag.String("enriched-out", "", "output path for the enriched JSON fixture")
	limit := flag.Int("limit", 0, "maximum number of rows to keep (0 keeps all)")
	flag.Parse()

	if *csvPath == "" || *rawOut == "" || *enrichedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -raw-out, -enriched-out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	f, err := os.Open(*csvPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	records, readings, err := processCSV(f, *limit)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}
	log.Printf("total: %d records", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*enrichedOut, readings); err != nil {
		return fmt.Errorf("writing enriched fixture: %w", err)
	}
	log.Printf("wrote enriched fixture: %s", *enrichedOut)

	printStats(os.Stdout, readings)
	return nil
}

// processCSV maps CSV rows onto raw records and runs each through parsing and
// AQI enrichment. Rows whose concentrations cannot be parsed are reported and
// skipped.
func processCSV(r io.Reader, limit int) ([]domain.RawReadingRecord, []domain.Reading, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	colIdx := map[string]int{}
	for i, h := range header {
		colIdx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", col)
		}
	}

	var recs []domain.RawReadingRecord
	var readings []domain.Reading

	for line := 2; limit <= 0 || len(recs) < limit; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read line %d: %w", line, err)
		}

		rec := domain.RawReadingRecord{
			Region:      get(row, colIdx, "who_region"),
			ISO3:        get(row, colIdx, "iso3"),
			Country:     get(row, colIdx, "country_name"),
			City:        get(row, colIdx, "city"),
			Year:        get(row, colIdx, "year"),
			PM10:        get(row, colIdx, "pm10_concentration"),
			PM25:        get(row, colIdx, "pm25_concentration"),
			NO2:         get(row, colIdx, "no2_concentration"),
			StationType: get(row, colIdx, "type_of_stations"),
			Latitude:    get(row, colIdx, "latitude"),
			Longitude:   get(row, colIdx, "longitude"),
		}

		rawJSON, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal line %d: %w", line, err)
		}

		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: rawJSON})
		if err != nil {
			log.Printf("line %d: skipping: %v", line, err)
			continue
		}
		enriched, err := domain.EnrichReading(parsed)
		if err != nil {
			log.Printf("line %d: skipping: %v", line, err)
			continue
		}

		recs = append(recs, rec)
		readings = append(readings, enriched)
	}

	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("no data rows")
	}
	return recs, readings, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// printStats writes the numbers the fixture-based tests assert on.
func printStats(w io.Writer, readings []domain.Reading) {
	fmt.Fprintln(w, "\n=== Stats for updating test assertions ===")
	fmt.Fprintf(w, "Total: %d\n", len(readings))

	for _, kind := range domain.Pollutants {
		var converted, missing int
		for i := range readings {
			if readings[i].AQI(kind) == nil {
				missing++
			} else {
				converted++
			}
		}
		fmt.Fprintf(w, "%s: converted=%d, missing=%d\n", kind.DisplayName(), converted, missing)
	}

	field := domain.FieldFor(domain.PM25, domain.ModeAQI)
	ranking, err := domain.RankEntities(readings, field, domain.ModeAQI, 3)
	if err != nil {
		fmt.Fprintf(w, "\n%s ranking: %v\n", field.DisplayName(), err)
		return
	}
	fmt.Fprintf(w, "\n%s top (worst last):", field.DisplayName())
	for _, e := range ranking.Top {
		fmt.Fprintf(w, " %s=%g", e.Entity, e.Display)
	}
	fmt.Fprintf(w, "\n%s bottom (least first):", field.DisplayName())
	for _, e := range ranking.Bottom {
		fmt.Fprintf(w, " %s=%g", e.Entity, e.Display)
	}
	fmt.Fprintln(w)
}
