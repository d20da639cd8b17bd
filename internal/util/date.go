package util

import (
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// DateString formats a time as a day-granularity date key.
func DateString(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a day-granularity date key. The zero time is returned for
// anything unparsable.
func ParseDay(s string) time.Time {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysBetween returns the whole-day distance between two date keys.
func DaysBetween(from, to string) int {
	a := ParseDay(from)
	b := ParseDay(to)
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return int(math.Abs(b.Sub(a).Hours()) / 24)
}

// Round2 rounds to two decimal places; percentages throughout the scoring
// and analytics paths are reported at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
