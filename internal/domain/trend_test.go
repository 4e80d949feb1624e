package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrends_ByRegion(t *testing.T) {
	readings := []Reading{
		{Region: "4_Eur", Year: 2019, PM25Concentration: ptr(10.0)},
		{Region: "1_Afr", Year: 2018, PM25Concentration: ptr(30.0)},
		{Region: "4_Eur", Year: 2018, PM25Concentration: ptr(12.0)},
		{Region: "4_Eur", Year: 2018, PM25Concentration: ptr(8.0)},
		{Region: "4_Eur", Year: 2020, PM25Concentration: nil},
		{Region: "1_Afr", Year: 0, PM25Concentration: ptr(99.0)},
		{Region: "6_Wpr", Year: 2018, PM25Concentration: nil},
	}

	series := Trends(readings, pm25Conc, GroupByRegion)
	require.Len(t, series, 2)

	assert.Equal(t, "4_Eur", series[0].Key)
	assert.Equal(t, "Europe", series[0].Name)
	assert.Equal(t, []TrendPoint{{Year: 2018, Mean: 10}, {Year: 2019, Mean: 10}}, series[0].Points)

	assert.Equal(t, "Africa", series[1].Name)
	assert.Equal(t, []TrendPoint{{Year: 2018, Mean: 30}}, series[1].Points)
}

func TestTrends_ByCountry(t *testing.T) {
	readings := []Reading{
		{Country: "Norway", Region: "4_Eur", Year: 2017, PM10AQI: ptr(20)},
		{Country: "France", Region: "4_Eur", Year: 2017, PM10AQI: ptr(40)},
		{Country: "Norway", Region: "4_Eur", Year: 2017, PM10AQI: ptr(30)},
	}

	series := Trends(readings, FieldFor(PM10, ModeAQI), GroupByCountry)
	require.Len(t, series, 2)
	assert.Equal(t, "Norway", series[0].Name)
	assert.Equal(t, []TrendPoint{{Year: 2017, Mean: 25}}, series[0].Points)
	assert.Equal(t, "France", series[1].Name)
}
