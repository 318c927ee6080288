package jismesh

import "math"

// Valid coordinate domain of the Japanese mesh system. Both intervals are
// half-open.
const (
	MinLat = 0.0
	MaxLat = 66.66
	MinLon = 100.0
	MaxLon = 180.0
)

// Encode converts a coordinate to the meshcode of the cell containing it at
// the given level.
func Encode(lat, lon float64, level Level) (Code, error) {
	if !(MinLat <= lat && lat < MaxLat) {
		return Code{}, &LatitudeError{Value: lat}
	}
	if !(MinLon <= lon && lon < MaxLon) {
		return Code{}, &LongitudeError{Value: lon}
	}
	return Code{value: encoders[level](lat, lon), level: level}, nil
}

// ToMeshcode converts coordinates to meshcodes at the given level. A
// length-1 slice broadcasts against the longer one; lists are consumed with
// modular indexing, so calling with mismatched lengths both greater than one
// is a caller bug. All coordinates are validated before any computation.
func ToMeshcode(lats, lons []float64, level Level) ([]uint64, error) {
	for _, lat := range lats {
		if !(MinLat <= lat && lat < MaxLat) {
			return nil, &LatitudeError{Value: lat}
		}
	}
	for _, lon := range lons {
		if !(MinLon <= lon && lon < MaxLon) {
			return nil, &LongitudeError{Value: lon}
		}
	}
	if len(lats) == 0 || len(lons) == 0 {
		return nil, nil
	}

	encode := encoders[level]
	out := make([]uint64, max(len(lats), len(lons)))
	for i := range out {
		out[i] = encode(lats[i%len(lats)], lons[i%len(lons)])
	}
	return out, nil
}

// Per-level encoders. Every level builds on the Lv1 base code; deeper levels
// append decimal digit groups computed from the coordinate's remainder
// within all coarser cells consumed so far. Quadrant digits pack the two
// half-cell booleans as latHalf*2 + lonHalf + 1, giving values 1-4.
var encoders = [numLevels]func(lat, lon float64) uint64{
	Lv1:  meshcodeLv1,
	X40:  meshcodeX40,
	X20:  meshcodeX20,
	X16:  meshcodeX16,
	Lv2:  meshcodeLv2,
	X8:   meshcodeX8,
	X5:   meshcodeX5,
	X4:   meshcodeX4,
	X2_5: meshcodeX2_5,
	X2:   meshcodeX2,
	Lv3:  meshcodeLv3,
	Lv4:  meshcodeLv4,
	Lv5:  meshcodeLv5,
	Lv6:  meshcodeLv6,
}

func meshcodeLv1(lat, lon float64) uint64 {
	ab := uint64(lat / unitLatLv1)
	cd := uint64(math.Mod(lon, 100) / unitLonLv1)
	return ab*100 + cd
}

func meshcodeX40(lat, lon float64) uint64 {
	base := meshcodeLv1(lat, lon)
	remLat := math.Mod(lat, unitLatLv1)
	remLon := math.Mod(math.Mod(lon, 100), unitLonLv1)
	e := uint64(remLat/unitLatX40)*2 + uint64(remLon/unitLonX40) + 1
	return base*10 + e
}

func meshcodeX20(lat, lon float64) uint64 {
	base := meshcodeX40(lat, lon)
	remLat := math.Mod(math.Mod(lat, unitLatLv1), unitLatX40)
	remLon := math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonX40)
	f := uint64(remLat/unitLatX20)*2 + uint64(remLon/unitLonX20) + 1
	return base*100 + f*10 + 5
}

func meshcodeX16(lat, lon float64) uint64 {
	base := meshcodeLv1(lat, lon)
	remLat := math.Mod(lat, unitLatLv1)
	remLon := math.Mod(math.Mod(lon, 100), unitLonLv1)
	e := uint64(remLat/unitLatX16) * 2
	f := uint64(remLon/unitLonX16) * 2
	return base*1000 + e*100 + f*10 + 7
}

func meshcodeLv2(lat, lon float64) uint64 {
	base := meshcodeLv1(lat, lon)
	remLat := math.Mod(lat, unitLatLv1)
	remLon := math.Mod(math.Mod(lon, 100), unitLonLv1)
	e := uint64(remLat / unitLatLv2)
	f := uint64(remLon / unitLonLv2)
	return base*100 + e*10 + f
}

func meshcodeX8(lat, lon float64) uint64 {
	base := meshcodeLv1(lat, lon)
	remLat := math.Mod(lat, unitLatLv1)
	remLon := math.Mod(math.Mod(lon, 100), unitLonLv1)
	e := uint64(remLat / unitLatX8)
	f := uint64(remLon / unitLonX8)
	return base*1000 + e*100 + f*10 + 6
}

func meshcodeX5(lat, lon float64) uint64 {
	base := meshcodeLv2(lat, lon)
	remLat := math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2)
	remLon := math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2)
	g := uint64(remLat/unitLatX5)*2 + uint64(remLon/unitLonX5) + 1
	return base*10 + g
}

func meshcodeX4(lat, lon float64) uint64 {
	base := meshcodeX8(lat, lon)
	remLat := math.Mod(math.Mod(lat, unitLatLv1), unitLatX8)
	remLon := math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonX8)
	h := uint64(remLat/unitLatX4)*2 + uint64(remLon/unitLonX4) + 1
	return base*100 + h*10 + 7
}

func meshcodeX2_5(lat, lon float64) uint64 {
	base := meshcodeX5(lat, lon)
	remLat := math.Mod(math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2), unitLatX5)
	remLon := math.Mod(math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2), unitLonX5)
	h := uint64(remLat/unitLatX2_5)*2 + uint64(remLon/unitLonX2_5) + 1
	return base*100 + h*10 + 6
}

func meshcodeX2(lat, lon float64) uint64 {
	base := meshcodeLv2(lat, lon)
	remLat := math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2)
	remLon := math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2)
	g := uint64(remLat/unitLatX2) * 2
	h := uint64(remLon/unitLonX2) * 2
	return base*1000 + g*100 + h*10 + 5
}

func meshcodeLv3(lat, lon float64) uint64 {
	base := meshcodeLv2(lat, lon)
	remLat := math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2)
	remLon := math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2)
	g := uint64(remLat / unitLatLv3)
	h := uint64(remLon / unitLonLv3)
	return base*100 + g*10 + h
}

func meshcodeLv4(lat, lon float64) uint64 {
	base := meshcodeLv3(lat, lon)
	remLat := math.Mod(math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2), unitLatLv3)
	remLon := math.Mod(math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2), unitLonLv3)
	i := uint64(remLat/unitLatLv4)*2 + uint64(remLon/unitLonLv4) + 1
	return base*10 + i
}

func meshcodeLv5(lat, lon float64) uint64 {
	base := meshcodeLv4(lat, lon)
	remLat := math.Mod(math.Mod(math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2), unitLatLv3), unitLatLv4)
	remLon := math.Mod(math.Mod(math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2), unitLonLv3), unitLonLv4)
	j := uint64(remLat/unitLatLv5)*2 + uint64(remLon/unitLonLv5) + 1
	return base*10 + j
}

func meshcodeLv6(lat, lon float64) uint64 {
	base := meshcodeLv5(lat, lon)
	remLat := math.Mod(math.Mod(math.Mod(math.Mod(math.Mod(lat, unitLatLv1), unitLatLv2), unitLatLv3), unitLatLv4), unitLatLv5)
	remLon := math.Mod(math.Mod(math.Mod(math.Mod(math.Mod(math.Mod(lon, 100), unitLonLv1), unitLonLv2), unitLonLv3), unitLonLv4), unitLonLv5)
	k := uint64(remLat/unitLatLv6)*2 + uint64(remLon/unitLonLv6) + 1
	return base*10 + k
}
