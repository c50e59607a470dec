package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGarmentTypeValid(t *testing.T) {
	for _, g := range AllGarmentTypes {
		assert.True(t, g.Valid(), string(g))
	}
	assert.False(t, GarmentType("Saree").Valid())
}

func TestEveryGarmentHasLabels(t *testing.T) {
	for _, g := range AllGarmentTypes {
		assert.NotEmpty(t, MeasurementLabels[g], string(g))
	}
}

func TestValueMapRoundTrip(t *testing.T) {
	m := ValueMap{"છાતી": "40", "કમર": "34"}

	raw, err := m.Value()
	require.NoError(t, err)

	var got ValueMap
	require.NoError(t, got.Scan(raw))
	assert.Equal(t, m, got)

	var fromString ValueMap
	require.NoError(t, fromString.Scan(`{"છાતી":"40"}`))
	assert.Equal(t, "40", fromString["છાતી"])
}

func TestValueMapNil(t *testing.T) {
	var m ValueMap

	raw, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)
}

func TestHasValues(t *testing.T) {
	assert.False(t, ValueMap{}.HasValues())
	assert.False(t, ValueMap{"છાતી": "  "}.HasValues())
	assert.True(t, ValueMap{"છાતી": "", "કમર": "34"}.HasValues())
}
