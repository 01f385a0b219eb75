package bizcal

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrulekit/rrule"
)

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestObservingIterator_ShiftWeekend(t *testing.T) {
	base, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Daily,
		Dtstart: rrule.NewUTCDateTime(2025, 6, 21, 0, 0, 0), // Saturday
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{ShiftOffWeekend: true})
	require.NoError(t, err)

	next, ok := oi.After(utc(2025, 6, 21, 0, 0, 0), true)
	require.True(t, ok)
	assert.Equal(t, utc(2025, 6, 23, 0, 0, 0), next) // shifted to Monday
}

func TestObservingIterator_HolidaySkip(t *testing.T) {
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(us.ThanksgivingDay)

	base, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Yearly,
		Dtstart: rrule.NewUTCDateTime(2025, 11, 27, 0, 0, 0), // Thanksgiving 2025
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{
		ShiftOffHolidays: true,
		Calendar:         calendar,
	})
	require.NoError(t, err)

	next, ok := oi.After(utc(2025, 11, 27, 0, 0, 0), true)
	require.True(t, ok)
	assert.Equal(t, utc(2025, 11, 28, 0, 0, 0), next)
}

func TestObservingIterator_NextBizDayObservance(t *testing.T) {
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(us.NewYear)

	base, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Yearly,
		Dtstart: rrule.NewUTCDateTime(2028, 1, 1, 0, 0, 0), // New Year's on Saturday
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{
		Observance: ObservanceNextBizDay,
		Calendar:   calendar,
	})
	require.NoError(t, err)

	next, ok := oi.After(utc(2028, 1, 1, 0, 0, 0), true)
	require.True(t, ok)
	assert.Equal(t, utc(2028, 1, 3, 0, 0, 0), next) // skips weekend, lands Monday
}

func TestObservingIterator_CustomFilter(t *testing.T) {
	base, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Daily,
		Dtstart: rrule.NewUTCDateTime(2025, 6, 23, 0, 0, 0), // Monday
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{
		CustomFilter: func(t time.Time) bool {
			return t.Weekday() == time.Tuesday
		},
	})
	require.NoError(t, err)

	next, ok := oi.After(utc(2025, 6, 23, 0, 0, 0), true)
	require.True(t, ok)
	assert.Equal(t, utc(2025, 6, 24, 0, 0, 0), next)
}

func TestObservingIterator_QuarterlyWithISOCode(t *testing.T) {
	start := utc(2025, 7, 1, 9, 0, 0) // Tuesday, not a holiday

	base, err := rrule.NewRule(rrule.ROption{
		Freq:     rrule.Monthly,
		Interval: 3,
		Dtstart:  rrule.NewUTCDateTime(2025, 7, 1, 9, 0, 0),
		Count:    4,
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{
		ShiftOffHolidays: true,
		ShiftOffWeekend:  true,
		Observance:       ObservanceNextBizDay,
		ISOCode:          "us",
	})
	require.NoError(t, err)

	expected := []time.Time{
		utc(2025, 7, 1, 9, 0, 0),
		utc(2025, 10, 1, 9, 0, 0),
		utc(2026, 1, 2, 9, 0, 0), // Jan 1 is New Year's Day -> shift to Jan 2
		utc(2026, 4, 1, 9, 0, 0),
	}

	var actual []time.Time
	cursor := start.Add(-time.Second)
	for range expected {
		next, ok := oi.After(cursor, false)
		require.True(t, ok)
		actual = append(actual, next)
		cursor = next.Add(time.Second)
	}

	assert.Equal(t, expected, actual)
}

func TestObservingIterator_InactivePassesThrough(t *testing.T) {
	base, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Daily,
		Dtstart: rrule.NewUTCDateTime(2025, 6, 21, 0, 0, 0),
		Count:   3,
	})
	require.NoError(t, err)

	oi, err := NewObservingIterator(base, Options{})
	require.NoError(t, err)

	assert.False(t, oi.Active())

	next, ok := oi.After(utc(2025, 6, 21, 0, 0, 0), true)
	require.True(t, ok)
	assert.Equal(t, utc(2025, 6, 21, 0, 0, 0), next)
}
