// Package jismesh implements the JIS X0410 standard regional mesh code
// system: bidirectional conversion between geographic coordinates and the
// fourteen hierarchical grid resolutions from Lv1 (80km) down to Lv6 (~125m),
// plus level inference, containment, and envelope tiling.
package jismesh

// Level identifies one of the fourteen mesh resolutions. The zero value is
// Lv1. Levels are declared coarsest-first, so ordering comparisons follow
// nesting depth.
type Level int

const (
	// Lv1 is the primary mesh, 80km square, 4 digits.
	Lv1 Level = iota
	// X40 is the 40x multiplier mesh, 40km square.
	X40
	// X20 is the 20x multiplier mesh, 20km square.
	X20
	// X16 is the 16x multiplier mesh, 16km square.
	X16
	// Lv2 is the secondary mesh, 10km square, 6 digits.
	Lv2
	// X8 is the 8x multiplier mesh, 8km square.
	X8
	// X5 is the 5x multiplier mesh, 5km square.
	X5
	// X4 is the 4x multiplier mesh, 4km square.
	X4
	// X2_5 is the 2.5x multiplier mesh, 2.5km square.
	X2_5
	// X2 is the 2x multiplier mesh, 2km square.
	X2
	// Lv3 is the tertiary mesh, 1km square, 8 digits.
	Lv3
	// Lv4 is the half mesh, 500m square.
	Lv4
	// Lv5 is the quarter mesh, 250m square.
	Lv5
	// Lv6 is the eighth mesh, 125m square.
	Lv6

	numLevels
)

// Angular cell edge sizes in degrees. Each constant derives from its parent
// on the pure Lv1..Lv6 chain or the nearest pure ancestor for multiplier
// levels, exactly as defined by JIS X0410.
const (
	unitLatLv1  = 2.0 / 3.0
	unitLonLv1  = 1.0
	unitLatX40  = unitLatLv1 / 2.0
	unitLonX40  = unitLonLv1 / 2.0
	unitLatX20  = unitLatX40 / 2.0
	unitLonX20  = unitLonX40 / 2.0
	unitLatX16  = unitLatLv1 / 5.0
	unitLonX16  = unitLonLv1 / 5.0
	unitLatLv2  = unitLatLv1 / 8.0
	unitLonLv2  = unitLonLv1 / 8.0
	unitLatX8   = unitLatLv1 / 10.0
	unitLonX8   = unitLonLv1 / 10.0
	unitLatX5   = unitLatLv2 / 2.0
	unitLonX5   = unitLonLv2 / 2.0
	unitLatX4   = unitLatX8 / 2.0
	unitLonX4   = unitLonX8 / 2.0
	unitLatX2_5 = unitLatX5 / 2.0
	unitLonX2_5 = unitLonX5 / 2.0
	unitLatX2   = unitLatLv2 / 5.0
	unitLonX2   = unitLonLv2 / 5.0
	unitLatLv3  = unitLatLv2 / 10.0
	unitLonLv3  = unitLonLv2 / 10.0
	unitLatLv4  = unitLatLv3 / 2.0
	unitLonLv4  = unitLonLv3 / 2.0
	unitLatLv5  = unitLatLv4 / 2.0
	unitLonLv5  = unitLonLv4 / 2.0
	unitLatLv6  = unitLatLv5 / 2.0
	unitLonLv6  = unitLonLv5 / 2.0
)

var units = [numLevels][2]float64{
	Lv1:  {unitLatLv1, unitLonLv1},
	X40:  {unitLatX40, unitLonX40},
	X20:  {unitLatX20, unitLonX20},
	X16:  {unitLatX16, unitLonX16},
	Lv2:  {unitLatLv2, unitLonLv2},
	X8:   {unitLatX8, unitLonX8},
	X5:   {unitLatX5, unitLonX5},
	X4:   {unitLatX4, unitLonX4},
	X2_5: {unitLatX2_5, unitLonX2_5},
	X2:   {unitLatX2, unitLonX2},
	Lv3:  {unitLatLv3, unitLonLv3},
	Lv4:  {unitLatLv4, unitLonLv4},
	Lv5:  {unitLatLv5, unitLonLv5},
	Lv6:  {unitLatLv6, unitLonLv6},
}

var levelNames = [numLevels]string{
	Lv1:  "Lv1",
	X40:  "X40",
	X20:  "X20",
	X16:  "X16",
	Lv2:  "Lv2",
	X8:   "X8",
	X5:   "X5",
	X4:   "X4",
	X2_5: "X2_5",
	X2:   "X2",
	Lv3:  "Lv3",
	Lv4:  "Lv4",
	Lv5:  "Lv5",
	Lv6:  "Lv6",
}

// Numeric tags follow the conventional jismesh encoding: pure levels use
// their ordinal, multiplier levels use their edge length in meters.
var levelTags = [numLevels]uint64{
	Lv1:  1,
	X40:  40000,
	X20:  20000,
	X16:  16000,
	Lv2:  2,
	X8:   8000,
	X5:   5000,
	X4:   4000,
	X2_5: 2500,
	X2:   2000,
	Lv3:  3,
	Lv4:  4,
	Lv5:  5,
	Lv6:  6,
}

var labelsJP = [numLevels]string{
	Lv1:  "1次",
	X40:  "40倍",
	X20:  "20倍",
	X16:  "16倍",
	Lv2:  "2次",
	X8:   "8倍",
	X5:   "5倍",
	X4:   "4倍",
	X2_5: "2.5倍",
	X2:   "2倍",
	Lv3:  "3次",
	Lv4:  "4次",
	Lv5:  "5次",
	Lv6:  "6次",
}

var sizesJP = [numLevels]string{
	Lv1:  "80km四方",
	X40:  "40km四方",
	X20:  "20km四方",
	X16:  "16km四方",
	Lv2:  "10km四方",
	X8:   "8km四方",
	X5:   "5km四方",
	X4:   "4km四方",
	X2_5: "2.5km四方",
	X2:   "2km四方",
	Lv3:  "1km四方",
	Lv4:  "500m四方",
	Lv5:  "250m四方",
	Lv6:  "125m四方",
}

// Levels returns all fourteen levels ordered coarsest-first.
func Levels() []Level {
	out := make([]Level, numLevels)
	for i := range out {
		out[i] = Level(i)
	}
	return out
}

// Valid reports whether l is one of the fourteen defined levels.
func (l Level) Valid() bool { return l >= 0 && l < numLevels }

// Unit returns the cell edge size (latitude, longitude) in degrees.
func (l Level) Unit() (lat, lon float64) {
	u := units[l]
	return u[0], u[1]
}

// UnitLat returns the latitude edge size in degrees.
func (l Level) UnitLat() float64 { return units[l][0] }

// UnitLon returns the longitude edge size in degrees.
func (l Level) UnitLon() float64 { return units[l][1] }

// String returns the canonical short identifier, e.g. "Lv1" or "X2_5".
func (l Level) String() string {
	if !l.Valid() {
		return "Level(invalid)"
	}
	return levelNames[l]
}

// LabelJP returns the Japanese name of the level, e.g. "1次".
func (l Level) LabelJP() string { return labelsJP[l] }

// SizeJP returns the approximate cell size in Japanese, e.g. "80km四方".
func (l Level) SizeJP() string { return sizesJP[l] }

// Tag returns the numeric level tag (1, 2, ... for pure levels, edge meters
// for multiplier levels).
func (l Level) Tag() uint64 { return levelTags[l] }

// Finer reports whether l nests strictly deeper than o.
func (l Level) Finer(o Level) bool { return l > o }

// Coarser reports whether l nests strictly shallower than o.
func (l Level) Coarser(o Level) bool { return l < o }

// LevelFromTag resolves a numeric level tag back to its Level.
func LevelFromTag(tag uint64) (Level, error) {
	for l, t := range levelTags {
		if t == tag {
			return Level(l), nil
		}
	}
	return 0, &InvalidTagError{Tag: tag}
}

// ParseLevel parses a canonical level identifier. Both "X2_5" and "X2.5"
// are accepted for the 2.5km mesh.
func ParseLevel(s string) (Level, error) {
	if s == "X2.5" {
		return X2_5, nil
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return 0, &ParseError{Input: s}
}
