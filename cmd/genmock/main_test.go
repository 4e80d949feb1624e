package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffwho_region,iso3,country_name,city,year,version,pm10_concentration,pm25_concentration,no2_concentration,type_of_stations,latitude,longitude\n" +
	"4_Eur,nor,Norway,Bergen,2019.0,V6.0,13.9,6.2,,\"Urban, Traffic\",60.39,5.32\n" +
	"3_Sear,IND,India,Delhi,2018.0,V6.0,229.0,114.3,58.1,Urban,28.64,77.22\n" +
	"5_Emr,EGY,Egypt,Cairo,2018.0,V6.0,twelve,,,,30.04,31.24\n" +
	"1_Afr,ZAF,South Africa,Cape Town,2019.0,V6.0,31.5,16.4,,Urban,-33.92,18.42\n"

func TestProcessCSV(t *testing.T) {
	recs, readings, err := processCSV(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	require.Len(t, recs, 3, "the Cairo row has an unparseable concentration")
	require.Len(t, readings, 3)

	assert.Equal(t, "Urban, Traffic", recs[0].StationType)
	assert.Equal(t, "NOR", readings[0].ISO3)
	assert.Equal(t, 2019, readings[0].Year)
	require.NotNil(t, readings[1].PM25AQI)
	assert.Equal(t, 181, *readings[1].PM25AQI)
	assert.Nil(t, readings[0].NO2AQI)
}

func TestProcessCSV_Limit(t *testing.T) {
	recs, _, err := processCSV(strings.NewReader(sampleCSV), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Bergen", recs[0].City)
}

func TestProcessCSV_MissingColumn(t *testing.T) {
	_, _, err := processCSV(strings.NewReader("city,year\nBergen,2019\n"), 0)
	assert.ErrorContains(t, err, "missing column")
}

func TestPrintStats(t *testing.T) {
	_, readings, err := processCSV(strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	printStats(&buf, readings)

	out := buf.String()
	assert.Contains(t, out, "Total: 3")
	assert.Contains(t, out, "NO2: converted=1, missing=2")
	assert.Contains(t, out, "PM2.5 AQI top (worst last):")
}
