package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	code, err := jismesh.TryCode(5339)
	require.NoError(t, err)

	data, err := Marshal([]jismesh.Code{code})
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Type     string `json:"type"`
			Geometry struct {
				Type        string         `json:"type"`
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 1)

	feature := doc.Features[0]
	assert.Equal(t, "Feature", feature.Type)
	assert.Equal(t, "Polygon", feature.Geometry.Type)
	assert.Equal(t, "5339", feature.Properties["code"])
	assert.Equal(t, "Lv1", feature.Properties["level"])

	require.Len(t, feature.Geometry.Coordinates, 1)
	ring := feature.Geometry.Coordinates[0]
	require.Len(t, ring, 5)
	assert.InDelta(t, 139.0, ring[0][0], 1e-7)
	assert.InDelta(t, 35.3333333, ring[0][1], 1e-7)
	assert.Equal(t, ring[0], ring[4])
}

func TestFeatureCollectionEmpty(t *testing.T) {
	t.Parallel()

	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
