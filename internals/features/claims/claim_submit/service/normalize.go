package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeClockTime coerces the submitted time into HH:mm:ss.
// Accepts "HH:mm" and "HH:mm:ss"; anything malformed falls back to
// "00:00:00" rather than failing the whole submission.
func NormalizeClockTime(raw string) string {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "00:00:00"
	}

	h, err := parseTimePart(parts[0], 23)
	if err != nil {
		return "00:00:00"
	}
	m, err := parseTimePart(parts[1], 59)
	if err != nil {
		return "00:00:00"
	}
	s := 0
	if len(parts) == 3 {
		if s, err = parseTimePart(parts[2], 59); err != nil {
			return "00:00:00"
		}
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func parseTimePart(p string, max int) (int, error) {
	p = strings.TrimSpace(p)
	v, err := strconv.Atoi(p)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > max {
		return 0, fmt.Errorf("out of range: %d", v)
	}
	return v, nil
}

// RoundCoord rounds a latitude/longitude to 6 decimal places
// (~0.11m, more than GPS precision).
func RoundCoord(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*1e6) / 1e6
	return &r
}

// NormalizeAccuracy clamps GPS accuracy into the numeric(6,2) column
// range and rounds to 2 decimals.
func NormalizeAccuracy(v *float64) *float64 {
	if v == nil {
		return nil
	}
	a := *v
	if a < 0 {
		a = 0
	}
	if a > 9999.99 {
		a = 9999.99
	}
	a = math.Round(a*100) / 100
	return &a
}
