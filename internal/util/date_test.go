package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateStringRoundTrip(t *testing.T) {
	day := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", DateString(day))
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), ParseDay("2026-08-31"))
}

func TestParseDayInvalid(t *testing.T) {
	assert.True(t, ParseDay("yesterday").IsZero())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween("2026-08-30", "2026-08-31"))
	assert.Equal(t, 3, DaysBetween("2026-08-28", "2026-08-31"))
	assert.Equal(t, 1, DaysBetween("2026-08-31", "2026-08-30"))
	assert.Equal(t, 0, DaysBetween("garbage", "2026-08-31"))
	// Month boundary
	assert.Equal(t, 1, DaysBetween("2026-08-31", "2026-09-01"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 50.0, Round2(50))
}
