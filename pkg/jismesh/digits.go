package jismesh

var pow10 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000,
	10000000, 100000000, 1000000000, 10000000000, 100000000000,
}

// numDigits returns the number of decimal digits in code. Zero has one digit.
func numDigits(code uint64) int {
	n := 1
	for code >= 10 {
		code /= 10
		n++
	}
	return n
}

// digitSpan extracts the decimal digit group of code between position start
// (0 = most significant digit) and stop (exclusive). If code has fewer
// digits than stop requires the result is 0, so the extractor is total over
// codes of any length up to 11 digits.
func digitSpan(code uint64, start, stop int) uint8 {
	n := numDigits(code)
	if n < stop {
		return 0
	}
	return uint8(code % pow10[n-start] / pow10[n-stop])
}

// codeDigits holds the named digit groups at their canonical positions.
// ab and cd form the Lv1 base; the rest are single trailing digits consumed
// by progressively finer levels.
type codeDigits struct {
	ab, cd     uint8
	e, f, g, h uint8
	i, j, k    uint8
}

func splitDigits(code uint64) codeDigits {
	return codeDigits{
		ab: digitSpan(code, 0, 2),
		cd: digitSpan(code, 2, 4),
		e:  digitSpan(code, 4, 5),
		f:  digitSpan(code, 5, 6),
		g:  digitSpan(code, 6, 7),
		h:  digitSpan(code, 7, 8),
		i:  digitSpan(code, 8, 9),
		j:  digitSpan(code, 9, 10),
		k:  digitSpan(code, 10, 11),
	}
}
