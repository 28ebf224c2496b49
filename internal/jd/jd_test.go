package jd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	original := time.Date(2025, 4, 9, 20, 51, 0, 0, time.FixedZone("IST", 5*3600+30*60))
	j := FromTime(original)
	back := ToTime(j)

	assert.Equal(t, original.UTC().Year(), back.Year())
	assert.Equal(t, original.UTC().Month(), back.Month())
	assert.Equal(t, original.UTC().Day(), back.Day())
	assert.Equal(t, original.UTC().Hour(), back.Hour())
}

func TestFromCivil(t *testing.T) {
	j := FromCivil(2025, 4, 9, 20, 51, 0, 5.5)
	expected := FromTime(time.Date(2025, 4, 9, 20, 51, 0, 0, time.FixedZone("", int(5.5*3600))))
	assert.InDelta(t, float64(expected), float64(j), 1e-6)
}

func TestVaraOf(t *testing.T) {
	// 2000-01-01 was a Saturday.
	j := FromCivil(2000, 1, 1, 12, 0, 0, 0)
	assert.Equal(t, Saturday, VaraOf(j))
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 6, MondayIndex(Sunday))
	assert.Equal(t, 0, MondayIndex(Monday))
	assert.Equal(t, 5, MondayIndex(Saturday))
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Unknown", Weekday(99).String())
}
