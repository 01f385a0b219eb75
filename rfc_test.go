package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(year, month, day, hour, min, sec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
}

// TestRFCScenarios exercises the classic RFC 5545 recurrence examples
// named in this module's specification (S1-S7), grounded on
// original_source/tests/rfc.rs's equivalent cases.
func TestRFCScenarios(t *testing.T) {
	t.Run("S1 daily count 10", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:    Daily,
			Dtstart: NewUTCDateTime(1997, 9, 2, 9, 0, 0),
			Count:   10,
		})
		require.NoError(t, err)

		got := rule.All()
		require.Len(t, got, 10)
		assert.Equal(t, utc(1997, 9, 2, 9, 0, 0), got[0])
		assert.Equal(t, utc(1997, 9, 11, 9, 0, 0), got[9])
	})

	t.Run("S2 daily interval 10 count 5", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:     Daily,
			Dtstart:  NewUTCDateTime(1997, 9, 2, 9, 0, 0),
			Interval: 10,
			Count:    5,
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 9, 2, 9, 0, 0),
			utc(1997, 9, 12, 9, 0, 0),
			utc(1997, 9, 22, 9, 0, 0),
			utc(1997, 10, 2, 9, 0, 0),
			utc(1997, 10, 12, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S3 monthly first friday", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:    Monthly,
			Dtstart: NewUTCDateTime(1997, 9, 5, 9, 0, 0),
			Count:   10,
			ByDay:   []ByDay{Nth(Friday, 1)},
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 9, 5, 9, 0, 0),
			utc(1997, 10, 3, 9, 0, 0),
			utc(1997, 11, 7, 9, 0, 0),
			utc(1997, 12, 5, 9, 0, 0),
			utc(1998, 1, 2, 9, 0, 0),
			utc(1998, 2, 6, 9, 0, 0),
			utc(1998, 3, 6, 9, 0, 0),
			utc(1998, 4, 3, 9, 0, 0),
			utc(1998, 5, 1, 9, 0, 0),
			utc(1998, 6, 5, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S4 monthly interval 2 first and last sunday", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:     Monthly,
			Dtstart:  NewUTCDateTime(1997, 9, 7, 9, 0, 0),
			Interval: 2,
			Count:    10,
			ByDay:    []ByDay{Nth(Sunday, 1), Nth(Sunday, -1)},
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 9, 7, 9, 0, 0),
			utc(1997, 9, 28, 9, 0, 0),
			utc(1997, 11, 2, 9, 0, 0),
			utc(1997, 11, 30, 9, 0, 0),
			utc(1998, 1, 4, 9, 0, 0),
			utc(1998, 1, 25, 9, 0, 0),
			utc(1998, 3, 1, 9, 0, 0),
			utc(1998, 3, 29, 9, 0, 0),
			utc(1998, 5, 3, 9, 0, 0),
			utc(1998, 5, 31, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S5 monthly friday the 13th", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:       Monthly,
			Dtstart:    NewUTCDateTime(1997, 9, 2, 9, 0, 0),
			Count:      5,
			ByDay:      []ByDay{All(Friday)},
			ByMonthDay: []int{13},
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1998, 2, 13, 9, 0, 0),
			utc(1998, 3, 13, 9, 0, 0),
			utc(1998, 11, 13, 9, 0, 0),
			utc(1999, 8, 13, 9, 0, 0),
			utc(2000, 10, 13, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S6 minutely interval 90 count 4", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:     Minutely,
			Dtstart:  NewUTCDateTime(1997, 9, 2, 9, 0, 0),
			Interval: 90,
			Count:    4,
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 9, 2, 9, 0, 0),
			utc(1997, 9, 2, 10, 30, 0),
			utc(1997, 9, 2, 12, 0, 0),
			utc(1997, 9, 2, 13, 30, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S7 weekly interval 2 wkst SU", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:     Weekly,
			Dtstart:  NewUTCDateTime(1997, 8, 5, 9, 0, 0),
			Interval: 2,
			Count:    4,
			ByDay:    []ByDay{All(Tuesday), All(Sunday)},
			Wkst:     Sunday,
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 8, 5, 9, 0, 0),
			utc(1997, 8, 17, 9, 0, 0),
			utc(1997, 8, 19, 9, 0, 0),
			utc(1997, 8, 31, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})

	t.Run("S7 variant with WKST=MO yields a different set", func(t *testing.T) {
		rule, err := NewRule(ROption{
			Freq:     Weekly,
			Dtstart:  NewUTCDateTime(1997, 8, 5, 9, 0, 0),
			Interval: 2,
			Count:    4,
			ByDay:    []ByDay{All(Tuesday), All(Sunday)},
			Wkst:     Monday,
		})
		require.NoError(t, err)

		want := []time.Time{
			utc(1997, 8, 5, 9, 0, 0),
			utc(1997, 8, 10, 9, 0, 0),
			utc(1997, 8, 19, 9, 0, 0),
			utc(1997, 8, 24, 9, 0, 0),
		}
		assert.Equal(t, want, rule.All())
	})
}
