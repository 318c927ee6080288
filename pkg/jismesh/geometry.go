package jismesh

import "github.com/twpayne/go-geom"

// Bounds returns the cell rectangle as a go-geom bounding box in XY order
// (X = longitude, Y = latitude).
func (c Code) Bounds() *geom.Bounds {
	swLat, swLon := c.SW()
	neLat, neLon := c.NE()
	return geom.NewBounds(geom.XY).Set(swLon, swLat, neLon, neLat)
}

// Polygon returns the cell rectangle as a closed go-geom polygon with SRID
// 4326, suitable for GeoJSON or WKB encoding.
func (c Code) Polygon() *geom.Polygon {
	swLat, swLon := c.SW()
	neLat, neLon := c.NE()
	ring := []geom.Coord{
		{swLon, swLat},
		{neLon, swLat},
		{neLon, neLat},
		{swLon, neLat},
		{swLon, swLat},
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}).SetSRID(4326)
}
