package jismesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        uint64
		start, stop int
		want        uint8
	}{
		{name: "leftmost digit", code: 12345, start: 0, stop: 1, want: 1},
		{name: "second digit", code: 12345, start: 1, stop: 2, want: 2},
		{name: "rightmost digit", code: 12345, start: 4, stop: 5, want: 5},
		{name: "two leftmost digits", code: 12345, start: 0, stop: 2, want: 12},
		{name: "two rightmost digits", code: 12345, start: 3, stop: 5, want: 45},
		{name: "zero code", code: 0, start: 0, stop: 1, want: 0},
		{name: "single digit", code: 5, start: 0, stop: 1, want: 5},
		{name: "empty span", code: 5, start: 2, stop: 2, want: 0},
		{name: "beyond available digits", code: 12345, start: 6, stop: 7, want: 0},
		{name: "eleven digit code", code: 53393599212, start: 10, stop: 11, want: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, digitSpan(tt.code, tt.start, tt.stop))
		})
	}
}

func TestNumDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, numDigits(0))
	assert.Equal(t, 1, numDigits(9))
	assert.Equal(t, 4, numDigits(5339))
	assert.Equal(t, 11, numDigits(53393599212))
}
