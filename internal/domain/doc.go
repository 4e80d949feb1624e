// Package domain models ambient air-quality readings from the WHO Ambient Air
// Quality Database and derives US EPA-style Air Quality Index (AQI) values and
// city rankings from them.
//
// # Data Source
//
// Readings originate from the WHO Ambient Air Quality Database spreadsheet
// (sheet "Update 2024 (V6.1)"). An upstream loader flattens each row into JSON
// with string-valued columns and publishes it to the Kafka source topic. One row
// is one city-year observation with up to three pollutant concentrations in
// µg/m³: PM10, PM2.5 and NO2. Any of them may be blank.
//
// # Missing Values
//
//	Blank cells, "NA", "NaN" and "null" are treated as missing. Missing values
//	propagate: a missing concentration yields a missing AQI and is ignored when
//	computing means. Non-numeric text is rejected with ErrInvalidConcentration.
//
// # AQI Conversion
//
// AQI is a piecewise-linear interpolation over a breakpoint table per pollutant:
//
//	AQI = AQIlow + (C - Clow) * (AQIhigh - AQIlow) / (Chigh - Clow)
//
// rounded half away from zero. Negative concentrations are clamped to 0 and
// concentrations above the last breakpoint map to 500. A concentration that falls
// between two published ranges (the tables are defined at the precision of the
// measurements, e.g. NO2 53 then 54) is interpolated on the lower range.
//
// The PM10 table is the EPA one: 0–54, 55–154, 155–254, 255–354, 355–424,
// 425–529, 530–604. An older revision of the dashboard carried a PM2.5-shaped
// PM10 table with inverted bounds (150.5–100.4); it is not used.
//
// # Health Categories
//
// Categories are derived from an AQI value with cascading thresholds, highest
// first. These are the dashboard's own thresholds, not the EPA category bounds:
//
//	≥250 hazardous (maroon) | ≥150 very unhealthy (purple) | ≥55 unhealthy (red)
//	≥35 unhealthy for sensitive groups (orange) | ≥12 moderate (yellow) | good (green)
//
// # Ranking
//
// Rankings group readings by city and average the selected field. The most
// polluted k cities form the top list, shown low-to-high so the worst city is
// last. The k-1 least polluted form the bottom list, least polluted first. Ties
// keep the order in which cities first appear in the input.
package domain
