package jismesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBounds(t *testing.T) {
	t.Parallel()

	code := mustCode(t, 5339)
	bounds := code.Bounds()

	assert.InDelta(t, 139.0, bounds.Min(0), 1e-7)
	assert.InDelta(t, 35.3333333, bounds.Min(1), 1e-7)
	assert.InDelta(t, 140.0, bounds.Max(0), 1e-7)
	assert.InDelta(t, 36.0, bounds.Max(1), 1e-7)
}

func TestCodePolygon(t *testing.T) {
	t.Parallel()

	code := mustCode(t, 533935)
	poly := code.Polygon()

	assert.Equal(t, 4326, poly.SRID())
	require.Equal(t, 1, poly.NumLinearRings())

	ring := poly.LinearRing(0)
	require.Equal(t, 5, ring.NumCoords())
	// Closed ring starting and ending at the southwest corner.
	assert.Equal(t, ring.Coord(0), ring.Coord(4))
	assert.InDelta(t, 139.625, ring.Coord(0).X(), 1e-7)
	assert.InDelta(t, 35.5833333, ring.Coord(0).Y(), 1e-7)
	assert.InDelta(t, 139.75, ring.Coord(2).X(), 1e-7)
	assert.InDelta(t, 35.6666667, ring.Coord(2).Y(), 1e-7)
}
