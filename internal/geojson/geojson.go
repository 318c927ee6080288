// Package geojson renders mesh cells as GeoJSON features for map display.
package geojson

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

// FeatureCollection builds a GeoJSON FeatureCollection with one polygon
// feature per mesh cell. Each feature carries the code, level identifier,
// and approximate size as properties.
func FeatureCollection(codes []jismesh.Code) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{}
	for _, code := range codes {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       code.String(),
			Geometry: code.Polygon(),
			Properties: map[string]interface{}{
				"code":  code.String(),
				"level": code.Level().String(),
				"size":  code.Level().SizeJP(),
			},
		})
	}
	return fc
}

// Marshal renders mesh cells as a GeoJSON FeatureCollection document.
func Marshal(codes []jismesh.Code) ([]byte, error) {
	data, err := json.Marshal(FeatureCollection(codes))
	if err != nil {
		return nil, eris.Wrap(err, "geojson: marshal feature collection")
	}
	return data, nil
}
