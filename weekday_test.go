package rrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByDayAllWeekdaysInMonth(t *testing.T) {
	// September 1997 Fridays: 5, 12, 19, 26.
	yds := All(Friday).daysInMonth(1997, 9)
	require := []int{5, 12, 19, 26}
	for i, want := range require {
		_, day := yeardayToDate(1997, yds[i])
		assert.Equal(t, want, day)
	}
	assert.Len(t, yds, 4)
}

func TestByDayNthInMonth(t *testing.T) {
	yd, ok := nthWeekdayInMonth(1997, 9, Friday, 1)
	assert.True(t, ok)
	_, day := yeardayToDate(1997, yd)
	assert.Equal(t, 5, day)

	yd, ok = nthWeekdayInMonth(1997, 9, Sunday, -1)
	assert.True(t, ok)
	_, day = yeardayToDate(1997, yd)
	assert.Equal(t, 28, day)
}

func TestByDayNthOutOfRange(t *testing.T) {
	_, ok := nthWeekdayInMonth(1997, 9, Friday, 6)
	assert.False(t, ok)
}

func TestWeekdayStringAndValid(t *testing.T) {
	assert.Equal(t, "MO", Monday.String())
	assert.Equal(t, "SU", Sunday.String())
	assert.True(t, Friday.IsValid())
	assert.False(t, Weekday(99).IsValid())
}
