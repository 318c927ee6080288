package jismesh

import "strconv"

// Code pairs a validated meshcode integer with its inferred level. A Code is
// only ever constructed with a consistent value/level pair and is immutable
// after construction.
type Code struct {
	value uint64
	level Level
}

// TryCode validates a raw integer and infers its level.
func TryCode(value uint64) (Code, error) {
	level, err := InferLevel(value)
	if err != nil {
		return Code{}, err
	}
	return Code{value: value, level: level}, nil
}

// ParseCode parses a decimal meshcode string and infers its level.
func ParseCode(s string) (Code, error) {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Code{}, &ParseError{Input: s}
	}
	return TryCode(value)
}

// Value returns the raw meshcode integer.
func (c Code) Value() uint64 { return c.value }

// Level returns the mesh level of the code.
func (c Code) Level() Level { return c.level }

// String prints the raw meshcode integer.
func (c Code) String() string { return strconv.FormatUint(c.value, 10) }

// SW returns the cell's southwest corner.
func (c Code) SW() (lat, lon float64) {
	lat, lon, _ = Decode(c.value, 0, 0)
	return lat, lon
}

// NE returns the cell's northeast corner.
func (c Code) NE() (lat, lon float64) {
	lat, lon, _ = Decode(c.value, 1, 1)
	return lat, lon
}

// Center returns the cell's center point.
func (c Code) Center() (lat, lon float64) {
	lat, lon, _ = Decode(c.value, 0.5, 0.5)
	return lat, lon
}

// LowerLevel coarsens the code to an ancestor level. Only the pure
// Lv3 -> Lv2 -> Lv1 chain is supported; requesting any pair involving a
// multiplier level (or Lv4 and deeper) returns a ConversionError. A target
// equal to the code's own level returns the code unchanged.
func (c Code) LowerLevel(to Level) (Code, error) {
	if to == c.level {
		return c, nil
	}
	if to.Finer(c.level) {
		return Code{}, &LowerLevelError{From: c.level, To: to}
	}
	switch {
	case c.level == Lv2 && to == Lv1:
		return Code{value: c.value / 100, level: Lv1}, nil
	case c.level == Lv3 && to == Lv2:
		return Code{value: c.value / 100, level: Lv2}, nil
	case c.level == Lv3 && to == Lv1:
		return Code{value: c.value / 10000, level: Lv1}, nil
	default:
		return Code{}, &ConversionError{From: c.level, To: to}
	}
}

// Contains reports whether c's cell contains o's cell. Same-level codes
// contain each other only when equal; a finer cell never contains a coarser
// one. Coarser-side containment is decided by coarsening o to c's level,
// so it is only decidable along the pure Lv1/Lv2/Lv3 chain.
func (c Code) Contains(o Code) bool {
	if c.level == o.level {
		return c.value == o.value
	}
	if o.level.Finer(c.level) {
		lowered, err := o.LowerLevel(c.level)
		return err == nil && lowered.value == c.value
	}
	return false
}

// Intersects reports whether the two cells overlap: true when either side
// contains the other.
func (c Code) Intersects(o Code) bool {
	return c.Contains(o) || o.Contains(c)
}
