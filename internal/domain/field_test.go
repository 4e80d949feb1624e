package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueField(t *testing.T) {
	cases := map[string]ValueField{
		"pm25_concentration": {PM25, ModeConcentration},
		"PM10_AQI":           {PM10, ModeAQI},
		"no2_aqi":            {NO2, ModeAQI},
		"pm2.5_aqi":          {PM25, ModeAQI},
	}
	for in, want := range cases {
		got, err := ParseValueField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"pm25", "o3_aqi", "city", ""} {
		_, err := ParseValueField(bad)
		require.ErrorIs(t, err, ErrInvalidField, bad)
	}

	_, err := ParseValueField("o3_aqi")
	require.ErrorIs(t, err, ErrInvalidPollutantKind)
}

func TestValueField_Names(t *testing.T) {
	f := FieldFor(PM25, ModeAQI)
	assert.Equal(t, "pm25_aqi", f.String())
	assert.Equal(t, "PM2.5 AQI", f.DisplayName())
	assert.Equal(t, "NO2 Concentration", FieldFor(NO2, ModeConcentration).DisplayName())
}

func TestValueField_Value(t *testing.T) {
	r := Reading{NO2Concentration: ptr(41.5), NO2AQI: ptr(39)}

	v, ok := FieldFor(NO2, ModeConcentration).Value(r)
	assert.True(t, ok)
	assert.InEpsilon(t, 41.5, v, 1e-9)

	v, ok = FieldFor(NO2, ModeAQI).Value(r)
	assert.True(t, ok)
	assert.InEpsilon(t, 39.0, v, 1e-9)

	_, ok = FieldFor(PM10, ModeAQI).Value(r)
	assert.False(t, ok)
}

func TestParseDataMode(t *testing.T) {
	m, err := ParseDataMode("AQI")
	require.NoError(t, err)
	assert.Equal(t, ModeAQI, m)

	m, err = ParseDataMode("concentration")
	require.NoError(t, err)
	assert.Equal(t, ModeConcentration, m)

	_, err = ParseDataMode("index")
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestSelection_JSON(t *testing.T) {
	var sel Selection
	body := `{"field":"pm10_concentration","mode":"AQI","region":"1_Afr","from_year":2015,"station_types":["Urban"]}`
	require.NoError(t, json.Unmarshal([]byte(body), &sel))

	assert.Equal(t, FieldFor(PM10, ModeConcentration), sel.Field)
	assert.Equal(t, ModeAQI, sel.Mode)
	assert.Equal(t, "1_Afr", sel.Region)
	assert.Equal(t, 2015, sel.FromYear)
	assert.Equal(t, []string{"Urban"}, sel.StationTypes)

	out, err := json.Marshal(FieldFor(NO2, ModeAQI))
	require.NoError(t, err)
	assert.JSONEq(t, `"no2_aqi"`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"field":"ozone"}`), &sel))
}

func TestPollutantKind_Text(t *testing.T) {
	out, err := json.Marshal(map[string]PollutantKind{"k": PM25})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"pm25"}`, string(out))

	var k PollutantKind
	require.NoError(t, k.UnmarshalText([]byte("NO2")))
	assert.Equal(t, NO2, k)
	require.ErrorIs(t, k.UnmarshalText([]byte("co")), ErrInvalidPollutantKind)

	_, err = PollutantKind(0).MarshalText()
	require.ErrorIs(t, err, ErrInvalidPollutantKind)
}
