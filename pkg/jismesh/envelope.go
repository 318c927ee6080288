package jismesh

import "math"

// ToEnvelope enumerates every meshcode at the corners' shared level that
// tiles the rectangle spanned by the southwest and northeast corner codes.
// Results are row-major: latitude-major, longitude-minor. Both corners must
// be at the same level.
//
// The caller is responsible for bounding the implied grid; a coarse-level
// corner pair spanning the whole mesh domain allocates the full tiling.
func ToEnvelope(sw, ne uint64) ([]uint64, error) {
	levelSW, err := InferLevel(sw)
	if err != nil {
		return nil, err
	}
	levelNE, err := InferLevel(ne)
	if err != nil {
		return nil, err
	}
	if levelSW != levelNE {
		return nil, &MismatchedLevelsError{SW: levelSW, NE: levelNE}
	}

	// The southwest sample point sits at the cell center so the tiling loop
	// cannot fall out of the corner cell on floating point noise.
	latS, lonW, err := Decode(sw, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	latN, lonE, err := Decode(ne, 1, 1)
	if err != nil {
		return nil, err
	}

	return tile(latS, lonW, latN, lonE, levelSW)
}

// ToIntersects enumerates every meshcode at the target level whose cell
// intersects the given code's cell. Refining to a finer-or-equal level
// samples the southwest corner at half the unit ratio, which lands inside
// the first target cell; coarsening samples the cell center.
func ToIntersects(code uint64, to Level) ([]uint64, error) {
	from, err := InferLevel(code)
	if err != nil {
		return nil, err
	}

	marginLat := 0.5
	if to.UnitLat() <= from.UnitLat() {
		marginLat = to.UnitLat() / from.UnitLat() / 2
	}
	marginLon := 0.5
	if to.UnitLon() <= from.UnitLon() {
		marginLon = to.UnitLon() / from.UnitLon() / 2
	}

	latS, lonW, err := Decode(code, marginLat, marginLon)
	if err != nil {
		return nil, err
	}
	latN, lonE, err := Decode(code, 1, 1)
	if err != nil {
		return nil, err
	}

	return tile(latS, lonW, latN, lonE, to)
}

// tile encodes the grid of sample points covering [latS, latN) x [lonW, lonE)
// at the given level. Each sample falls in a distinct cell by construction,
// so no deduplication is needed.
func tile(latS, lonW, latN, lonE float64, level Level) ([]uint64, error) {
	unitLat, unitLon := level.Unit()
	// Swapped corners yield a negative span; an empty tiling, not an error.
	latCount := max(int(math.Ceil((latN-latS)/unitLat)), 0)
	lonCount := max(int(math.Ceil((lonE-lonW)/unitLon)), 0)

	lats := make([]float64, 0, latCount*lonCount)
	lons := make([]float64, 0, latCount*lonCount)
	for i := 0; i < latCount; i++ {
		lat := latS + float64(i)*unitLat
		for j := 0; j < lonCount; j++ {
			lats = append(lats, lat)
			lons = append(lons, lonW+float64(j)*unitLon)
		}
	}

	return ToMeshcode(lats, lons, level)
}
