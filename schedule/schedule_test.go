package schedule

import (
	"testing"
	"time"

	robfigcron "github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrulekit/rrule"
)

func TestRRuleSchedule_Next(t *testing.T) {
	rule, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Daily,
		Dtstart: rrule.NewUTCDateTime(1997, 9, 2, 9, 0, 0),
		Count:   3,
	})
	require.NoError(t, err)

	sched := New(rule)

	var impl robfigcron.Schedule = sched
	next := impl.Next(time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(1997, 9, 3, 9, 0, 0, 0, time.UTC), next)
}

func TestRRuleSchedule_NextExhausted(t *testing.T) {
	rule, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Daily,
		Dtstart: rrule.NewUTCDateTime(1997, 9, 2, 9, 0, 0),
		Count:   1,
	})
	require.NoError(t, err)

	sched := New(rule)
	next := sched.Next(time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())
}

func TestNextRunAfter(t *testing.T) {
	rule, err := rrule.NewRule(rrule.ROption{
		Freq:    rrule.Weekly,
		Dtstart: rrule.NewUTCDateTime(1997, 9, 2, 9, 0, 0),
		Count:   5,
	})
	require.NoError(t, err)

	next, ok := NextRunAfter(rule, time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, time.Date(1997, 9, 9, 9, 0, 0, 0, time.UTC), next)
}
