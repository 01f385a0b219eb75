package rrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2000))
	assert.True(t, isLeapYear(1996))
	assert.False(t, isLeapYear(1900))
	assert.False(t, isLeapYear(1997))
}

func TestYeardayDateRoundTrip(t *testing.T) {
	for _, year := range []int{1997, 2000, 2024} {
		for yd := 0; yd < yearLen(year); yd++ {
			month, day := yeardayToDate(year, yd)
			assert.Equal(t, yd, dateToYearday(year, month, day), "year=%d yd=%d", year, yd)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, daysUntil(Monday, Monday))
	assert.Equal(t, 1, daysUntil(Monday, Tuesday))
	assert.Equal(t, 6, daysUntil(Tuesday, Monday))
}

func TestWeekdayOfYearday(t *testing.T) {
	// Jan 1 1997 was a Wednesday.
	assert.Equal(t, Wednesday, weekdayOfYearday(1997, 0))
	// Aug 5 1997 was a Tuesday.
	assert.Equal(t, Tuesday, weekdayOfYearday(1997, dateToYearday(1997, 8, 5)))
}

func TestYeardayToDateAcrossYears(t *testing.T) {
	y, m, d := yeardayToDateAcrossYears(1997, -1)
	assert.Equal(t, 1996, y)
	assert.Equal(t, 12, m)
	assert.Equal(t, 31, d)

	y, m, d = yeardayToDateAcrossYears(1997, yearLen(1997))
	assert.Equal(t, 1998, y)
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, d)
}
