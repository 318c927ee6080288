package jismesh

// Decode reconstructs the coordinate of a meshcode. Multiplier 0 places the
// result at the cell's southwest corner, 1 at the northeast corner, and 0.5
// at the center. Multipliers are not bounds-checked; out-of-range values
// extrapolate linearly outside the cell.
func Decode(code uint64, latMul, lonMul float64) (lat, lon float64, err error) {
	level, err := InferLevel(code)
	if err != nil {
		return 0, 0, err
	}

	d := splitDigits(code)
	lat = float64(d.ab) * unitLatLv1
	lon = float64(d.cd)*unitLonLv1 + 100
	decoders[level](d, &lat, &lon)

	lat += level.UnitLat() * latMul
	lon += level.UnitLon() * lonMul
	return lat, lon, nil
}

// ToMeshpoint reconstructs the coordinate of each meshcode, returning
// (lat, lon) pairs. Multiplier slices shorter than codes are broadcast by
// clamping to their last element, so a length-1 multiplier applies to every
// code. The first invalid code fails the whole batch.
func ToMeshpoint(codes []uint64, latMul, lonMul []float64) ([][2]float64, error) {
	out := make([][2]float64, len(codes))
	for i, code := range codes {
		lat, lon, err := Decode(code, mulAt(latMul, i), mulAt(lonMul, i))
		if err != nil {
			return nil, err
		}
		out[i] = [2]float64{lat, lon}
	}
	return out, nil
}

// mulAt broadcasts a multiplier slice by clamping to its last element. An
// empty slice means multiplier 0, the southwest corner.
func mulAt(m []float64, i int) float64 {
	if len(m) == 0 {
		return 0
	}
	return m[min(i, len(m)-1)]
}

// Per-level decoders mirror the encoder composition exactly: each applies
// the adjustments of every coarser level it builds on, then its own. The
// Lv1 base placement is applied by Decode before dispatch.
var decoders = [numLevels]func(d codeDigits, lat, lon *float64){
	Lv1: func(codeDigits, *float64, *float64) {},
	X40: func(d codeDigits, lat, lon *float64) {
		addQuad(d.e, unitLatX40, unitLonX40, lat, lon)
	},
	X20: func(d codeDigits, lat, lon *float64) {
		addQuad(d.e, unitLatX40, unitLonX40, lat, lon)
		addQuad(d.f, unitLatX20, unitLonX20, lat, lon)
	},
	X16: func(d codeDigits, lat, lon *float64) {
		*lat += float64(d.e/2) * unitLatX16
		*lon += float64(d.f/2) * unitLonX16
	},
	Lv2: addLv2,
	X8: func(d codeDigits, lat, lon *float64) {
		*lat += float64(d.e) * unitLatX8
		*lon += float64(d.f) * unitLonX8
	},
	X5: func(d codeDigits, lat, lon *float64) {
		addLv2(d, lat, lon)
		addQuad(d.g, unitLatX5, unitLonX5, lat, lon)
	},
	X4: func(d codeDigits, lat, lon *float64) {
		*lat += float64(d.e) * unitLatX8
		*lon += float64(d.f) * unitLonX8
		addQuad(d.h, unitLatX4, unitLonX4, lat, lon)
	},
	X2_5: func(d codeDigits, lat, lon *float64) {
		addLv2(d, lat, lon)
		addQuad(d.g, unitLatX5, unitLonX5, lat, lon)
		addQuad(d.h, unitLatX2_5, unitLonX2_5, lat, lon)
	},
	X2: func(d codeDigits, lat, lon *float64) {
		addLv2(d, lat, lon)
		*lat += float64(d.g/2) * unitLatX2
		*lon += float64(d.h/2) * unitLonX2
	},
	Lv3: addLv3,
	Lv4: addLv4,
	Lv5: addLv5,
	Lv6: func(d codeDigits, lat, lon *float64) {
		addLv5(d, lat, lon)
		addQuad(d.k, unitLatLv6, unitLonLv6, lat, lon)
	},
}

// addQuad undoes the quadrant digit packing latHalf*2 + lonHalf + 1: values
// 3 and 4 select the northern half, even values the eastern half.
func addQuad(d uint8, unitLat, unitLon float64, lat, lon *float64) {
	if d/3 == 1 {
		*lat += unitLat
	}
	if d%2 == 0 {
		*lon += unitLon
	}
}

func addLv2(d codeDigits, lat, lon *float64) {
	*lat += float64(d.e) * unitLatLv2
	*lon += float64(d.f) * unitLonLv2
}

func addLv3(d codeDigits, lat, lon *float64) {
	addLv2(d, lat, lon)
	*lat += float64(d.g) * unitLatLv3
	*lon += float64(d.h) * unitLonLv3
}

func addLv4(d codeDigits, lat, lon *float64) {
	addLv3(d, lat, lon)
	addQuad(d.i, unitLatLv4, unitLonLv4, lat, lon)
}

func addLv5(d codeDigits, lat, lon *float64) {
	addLv4(d, lat, lon)
	addQuad(d.j, unitLatLv5, unitLonLv5, lat, lon)
}
