package jismesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTokyo(t *testing.T) {
	t.Parallel()

	lat, lon := 35.658581, 139.745433
	tests := []struct {
		level Level
		want  uint64
	}{
		{Lv1, 5339},
		{X40, 53392},
		{X20, 5339235},
		{X16, 5339467},
		{Lv2, 533935},
		{X8, 5339476},
		{X5, 5339354},
		{X4, 533947637},
		{X2_5, 533935446},
		{X2, 533935885},
		{Lv3, 53393599},
		{Lv4, 533935992},
		{Lv5, 5339359921},
		{Lv6, 53393599212},
	}

	for _, tt := range tests {
		code, err := Encode(lat, lon, tt.level)
		require.NoError(t, err, "level %s", tt.level)
		assert.Equal(t, tt.want, code.Value(), "level %s", tt.level)
		assert.Equal(t, tt.level, code.Level(), "level %s", tt.level)
	}
}

func TestEncodeKyoto(t *testing.T) {
	t.Parallel()

	lat, lon := 34.987574, 135.759363
	tests := []struct {
		level Level
		want  uint64
	}{
		{Lv1, 5235},
		{X40, 52352},
		{X20, 5235245},
		{X16, 5235467},
		{Lv2, 523536},
		{X8, 5235476},
		{X5, 5235363},
		{X4, 523547647},
		{X2_5, 523536336},
		{X2, 523536805},
		{Lv3, 52353680},
		{Lv4, 523536804},
		{Lv5, 5235368041},
		{Lv6, 52353680412},
	}

	for _, tt := range tests {
		code, err := Encode(lat, lon, tt.level)
		require.NoError(t, err, "level %s", tt.level)
		assert.Equal(t, tt.want, code.Value(), "level %s", tt.level)
	}
}

func TestEncodeBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat, lon float64
		wantLat  bool
		wantLon  bool
	}{
		{name: "latitude below min", lat: -0.1, lon: 139.745433, wantLat: true},
		{name: "latitude at max", lat: 66.66, lon: 139.745433, wantLat: true},
		{name: "longitude below min", lat: 35.658581, lon: 99.99, wantLon: true},
		{name: "longitude at max", lat: 35.658581, lon: 180.0, wantLon: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Encode(tt.lat, tt.lon, Lv1)
			require.Error(t, err)
			if tt.wantLat {
				var latErr *LatitudeError
				require.ErrorAs(t, err, &latErr)
				assert.Equal(t, tt.lat, latErr.Value)
			}
			if tt.wantLon {
				var lonErr *LongitudeError
				require.ErrorAs(t, err, &lonErr)
				assert.Equal(t, tt.lon, lonErr.Value)
			}
		})
	}
}

func TestEncodeHalfOpenInterval(t *testing.T) {
	t.Parallel()

	// Just inside the domain succeeds; the upper bound itself fails.
	_, err := Encode(66.6599999, 139.0, Lv1)
	assert.NoError(t, err)
	_, err = Encode(66.66, 139.0, Lv1)
	assert.Error(t, err)

	_, err = Encode(35.0, 179.9999999, Lv1)
	assert.NoError(t, err)
	_, err = Encode(35.0, 180.0, Lv1)
	assert.Error(t, err)

	_, err = Encode(0.0, 100.0, Lv1)
	assert.NoError(t, err)
}

func TestToMeshcodeBroadcast(t *testing.T) {
	t.Parallel()

	// A length-1 longitude list broadcasts against both latitudes.
	codes, err := ToMeshcode([]float64{35.0, 36.0}, []float64{139.0}, Lv1)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, uint64(5239), codes[0])
	assert.Equal(t, uint64(5439), codes[1])

	codes, err = ToMeshcode([]float64{35.658581}, []float64{139.745433, 135.759363}, Lv2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{533935, 533536}, codes)
}

func TestToMeshcodeValidatesBeforeComputing(t *testing.T) {
	t.Parallel()

	_, err := ToMeshcode([]float64{35.0, -1.0}, []float64{139.0}, Lv1)
	var latErr *LatitudeError
	require.ErrorAs(t, err, &latErr)
	assert.Equal(t, -1.0, latErr.Value)
}

func TestToMeshcodeEmpty(t *testing.T) {
	t.Parallel()

	codes, err := ToMeshcode(nil, nil, Lv1)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
