package jismesh

import "fmt"

// LatitudeError reports a latitude outside the valid mesh domain.
type LatitudeError struct {
	Value float64
}

func (e *LatitudeError) Error() string {
	return fmt.Sprintf("jismesh: latitude %v is out of bounds (0 <= lat < 66.66)", e.Value)
}

// LongitudeError reports a longitude outside the valid mesh domain.
type LongitudeError struct {
	Value float64
}

func (e *LongitudeError) Error() string {
	return fmt.Sprintf("jismesh: longitude %v is out of bounds (100 <= lon < 180)", e.Value)
}

// UnknownLevelError reports a code whose digit count maps to no level, or a
// zero code.
type UnknownLevelError struct {
	Code uint64
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("jismesh: cannot determine level for meshcode %d", e.Code)
}

// InvalidCodeError reports a code whose digit count is ambiguous but whose
// disambiguating digit is outside the valid set for that position.
type InvalidCodeError struct {
	Digits int
	Code   uint64
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("jismesh: invalid %d-digit meshcode %d", e.Digits, e.Code)
}

// InvalidTagError reports a numeric level tag with no defined level.
type InvalidTagError struct {
	Tag uint64
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("jismesh: invalid mesh level tag %d", e.Tag)
}

// LowerLevelError reports an ancestor derivation whose target is finer than
// the source.
type LowerLevelError struct {
	From, To Level
}

func (e *LowerLevelError) Error() string {
	return fmt.Sprintf("jismesh: %s is not lower than %s", e.To, e.From)
}

// ConversionError reports an ancestor derivation between levels with no
// defined relationship, such as multiplier levels.
type ConversionError struct {
	From, To Level
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("jismesh: unsupported level conversion from %s to %s", e.From, e.To)
}

// MismatchedLevelsError reports an envelope whose corner codes are at
// different levels.
type MismatchedLevelsError struct {
	SW, NE Level
}

func (e *MismatchedLevelsError) Error() string {
	return fmt.Sprintf("jismesh: mismatched levels: %s != %s", e.SW, e.NE)
}

// ParseError reports malformed textual level or code input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jismesh: cannot parse %q", e.Input)
}
