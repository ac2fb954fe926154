package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30", "14:30:00"},
		{"14:30:59", "14:30:59"},
		{"9:5", "09:05:00"},
		{"00:00:00", "00:00:00"},
		{"23:59:59", "23:59:59"},
		// malformed → default, never an error
		{"", "00:00:00"},
		{"25:00", "00:00:00"},
		{"12:61", "00:00:00"},
		{"12:30:61", "00:00:00"},
		{"garbage", "00:00:00"},
		{"12", "00:00:00"},
		{"-1:30", "00:00:00"},
		{"12:30:45:10", "00:00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeClockTime(tc.in), "time %q", tc.in)
	}
}

func TestRoundCoord(t *testing.T) {
	assert.Nil(t, RoundCoord(nil))

	f := func(v float64) *float64 { return &v }
	assert.Equal(t, 13.756331, *RoundCoord(f(13.7563309)))
	assert.Equal(t, 100.501765, *RoundCoord(f(100.50176521)))
	assert.Equal(t, -1.5, *RoundCoord(f(-1.5)))
}

func TestNormalizeAccuracy(t *testing.T) {
	assert.Nil(t, NormalizeAccuracy(nil))

	f := func(v float64) *float64 { return &v }

	// clamp to the numeric(6,2) range
	assert.Equal(t, 0.0, *NormalizeAccuracy(f(-3)))
	assert.Equal(t, 9999.99, *NormalizeAccuracy(f(123456)))

	// round to 2 decimals
	assert.Equal(t, 10.12, *NormalizeAccuracy(f(10.123)))
	assert.Equal(t, 10.13, *NormalizeAccuracy(f(10.126)))
	assert.Equal(t, 25.0, *NormalizeAccuracy(f(25)))
}
