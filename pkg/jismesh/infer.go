package jismesh

// ambiguousDigit maps a total digit count to the 0-indexed position of the
// digit that disambiguates the level, and the levels selected by its value.
// Values 1-4 always select the first entry (quadrant digits); 5, 6, and 7
// select the marker-digit levels. Kept as data so inference and decoding
// cannot drift apart.
var ambiguousDigit = map[int]struct {
	pos     int
	quad    Level   // digit value 1-4
	markers []Level // digit values 5, 6, 7 in order; absent entries invalid
}{
	7:  {pos: 6, quad: X5, markers: []Level{X20, X8, X16}},
	9:  {pos: 8, quad: Lv4, markers: []Level{X2, X2_5, X4}},
	10: {pos: 9, quad: Lv5},
	11: {pos: 10, quad: Lv6},
}

// InferLevel determines the mesh level of a raw code from its digit count
// and, for ambiguous digit counts, the disambiguating digit value.
func InferLevel(code uint64) (Level, error) {
	if code == 0 {
		return 0, &UnknownLevelError{Code: 0}
	}

	n := numDigits(code)
	switch n {
	case 4:
		return Lv1, nil
	case 5:
		return X40, nil
	case 6:
		return Lv2, nil
	case 8:
		return Lv3, nil
	case 7, 9, 10, 11:
		rule := ambiguousDigit[n]
		d := digitSpan(code, rule.pos, rule.pos+1)
		switch {
		case 1 <= d && d <= 4:
			return rule.quad, nil
		case 5 <= d && d <= 7 && int(d-5) < len(rule.markers):
			return rule.markers[d-5], nil
		default:
			return 0, &InvalidCodeError{Digits: n, Code: code}
		}
	default:
		return 0, &UnknownLevelError{Code: code}
	}
}

// ToMeshlevel determines the mesh level of each code. The first invalid
// element fails the whole batch.
func ToMeshlevel(codes []uint64) ([]Level, error) {
	levels := make([]Level, len(codes))
	for i, code := range codes {
		level, err := InferLevel(code)
		if err != nil {
			return nil, err
		}
		levels[i] = level
	}
	return levels, nil
}
