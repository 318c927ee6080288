package jismesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSouthwestCorners(t *testing.T) {
	t.Parallel()

	// Every one of these codes names a cell anchored at the same Lv1
	// southwest corner.
	codes := []uint64{
		5339, 53391, 5339115, 5339007, 533900, 5339006, 5339001,
		533900617, 533900116, 533900005, 53390000, 533900001,
		5339000011, 53390000111,
	}

	for _, code := range codes {
		lat, lon, err := Decode(code, 0, 0)
		require.NoError(t, err, "code %d", code)
		assert.InDelta(t, 35.0+1.0/3.0, lat, 1e-7, "code %d", code)
		assert.InDelta(t, 139.0, lon, 1e-7, "code %d", code)
	}
}

func TestDecodeCellCenter(t *testing.T) {
	t.Parallel()

	lat, lon, err := Decode(53393599212, 0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 35.6588542, lat, 1e-7)
	assert.InDelta(t, 139.74609375, lon, 1e-7)
}

func TestDecodeLv1Corner(t *testing.T) {
	t.Parallel()

	lat, lon, err := Decode(5339, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 35.3333333, lat, 1e-7)
	assert.InDelta(t, 139.0, lon, 1e-7)
}

func TestDecodePropagatesInferenceErrors(t *testing.T) {
	t.Parallel()

	_, _, err := Decode(5, 0, 0)
	var unknownErr *UnknownLevelError
	assert.ErrorAs(t, err, &unknownErr)

	_, _, err = Decode(5339350, 0, 0)
	var invalidErr *InvalidCodeError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	// Encoding a point and decoding the resulting cell's corners must bound
	// the original point at every level.
	points := []struct{ lat, lon float64 }{
		{35.658581, 139.745433},
		{34.987574, 135.759363},
		{43.062096, 141.354376},
		{26.212401, 127.679274},
	}

	for _, p := range points {
		for _, level := range Levels() {
			code, err := Encode(p.lat, p.lon, level)
			require.NoError(t, err)

			swLat, swLon, err := Decode(code.Value(), 0, 0)
			require.NoError(t, err)
			neLat, neLon, err := Decode(code.Value(), 1, 1)
			require.NoError(t, err)

			assert.LessOrEqual(t, swLat, p.lat, "level %s", level)
			assert.Greater(t, neLat, p.lat, "level %s", level)
			assert.LessOrEqual(t, swLon, p.lon, "level %s", level)
			assert.Greater(t, neLon, p.lon, "level %s", level)

			inferred, err := InferLevel(code.Value())
			require.NoError(t, err)
			assert.Equal(t, level, inferred)
		}
	}
}

func TestToMeshpoint(t *testing.T) {
	t.Parallel()

	points, err := ToMeshpoint([]uint64{5339, 533935}, []float64{0}, []float64{0})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 35.0+1.0/3.0, points[0][0], 1e-7)
	assert.InDelta(t, 139.0, points[0][1], 1e-7)
	assert.InDelta(t, 35.5833333, points[1][0], 1e-7)
	assert.InDelta(t, 139.625, points[1][1], 1e-7)
}

func TestToMeshpointFailFast(t *testing.T) {
	t.Parallel()

	_, err := ToMeshpoint([]uint64{5339, 0}, []float64{0}, []float64{0})
	var unknownErr *UnknownLevelError
	assert.ErrorAs(t, err, &unknownErr)
}
