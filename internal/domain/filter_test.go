package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cities(readings []Reading) []string {
	out := make([]string, len(readings))
	for i, r := range readings {
		out[i] = r.City
	}
	return out
}

func sampleReadings() []Reading {
	return []Reading{
		{City: "Bergen", Region: "4_Eur", Country: "Norway", Year: 2015, StationType: "Urban", PM25Concentration: ptr(6.0)},
		{City: "Bergen", Region: "4_Eur", Country: "Norway", Year: 2019, StationType: "Urban Traffic", PM25Concentration: ptr(8.0)},
		{City: "Lyon", Region: "4_Eur", Country: "France", Year: 2017, StationType: "Suburban, Background", PM25Concentration: ptr(14.0)},
		{City: "Accra", Region: "1_Afr", Country: "Ghana", Year: 2016, StationType: "", PM25Concentration: ptr(40.0)},
		{City: "Quito", Region: "2_Amr", Country: "Ecuador", Year: 0, StationType: "Residential And Commercial Area", PM25Concentration: ptr(17.0)},
		{City: "Delhi", Region: "3_Sear", Country: "India", Year: 2018, StationType: "Industrial", PM25Concentration: ptr(98.0)},
	}
}

func TestSelection_Filter(t *testing.T) {
	readings := sampleReadings()

	t.Run("all keeps everything", func(t *testing.T) {
		got, err := Selection{StationTypes: []string{StationTypeAll}}.Filter(readings)
		require.NoError(t, err)
		assert.Len(t, got, len(readings))
	})

	t.Run("region", func(t *testing.T) {
		got, err := Selection{Region: "4_Eur", StationTypes: []string{StationTypeAll}}.Filter(readings)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bergen", "Bergen", "Lyon"}, cities(got))
	})

	t.Run("year range is inclusive and drops unknown years", func(t *testing.T) {
		got, err := Selection{FromYear: 2016, ToYear: 2018, StationTypes: []string{StationTypeAll}}.Filter(readings)
		require.NoError(t, err)
		assert.Equal(t, []string{"Lyon", "Accra", "Delhi"}, cities(got))
	})

	t.Run("open upper bound", func(t *testing.T) {
		got, err := Selection{FromYear: 2018, StationTypes: []string{StationTypeAll}}.Filter(readings)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bergen", "Delhi"}, cities(got))
	})

	t.Run("station types match whole words", func(t *testing.T) {
		got, err := Selection{StationTypes: []string{"Urban"}}.Filter(readings)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bergen", "Bergen"}, cities(got))

		got, err = Selection{StationTypes: []string{"Background", "Residential"}}.Filter(readings)
		require.NoError(t, err)
		assert.Equal(t, []string{"Lyon", "Quito"}, cities(got))
	})

	t.Run("station types are quoted", func(t *testing.T) {
		got, err := Selection{StationTypes: []string{"Urban.*"}}.Filter(readings)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSelection_HasStationTypes(t *testing.T) {
	assert.False(t, Selection{}.HasStationTypes())
	assert.True(t, Selection{StationTypes: []string{"Rural"}}.HasStationTypes())
}
