// Package schedule adapts an rrule.Rule to the cron.Schedule interface so
// an expanded RRULE can be dropped into any github.com/robfig/cron-based
// scheduler alongside ordinary crontab entries.
package schedule

import (
	"time"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/rrulekit/rrule"
)

// RRuleSchedule implements robfigcron.Schedule over a recurrence rule.
type RRuleSchedule struct {
	rule *rrule.Rule
}

var _ robfigcron.Schedule = (*RRuleSchedule)(nil)

// New wraps rule as a cron.Schedule.
func New(rule *rrule.Rule) *RRuleSchedule {
	return &RRuleSchedule{rule: rule}
}

// Next returns the first occurrence strictly after t, or the zero Time if
// the rule has no further occurrences (COUNT/UNTIL exhausted). This
// matches cron.Schedule's contract, under which a zero Time tells the
// scheduler's runner to stop scheduling the entry.
func (s *RRuleSchedule) Next(t time.Time) time.Time {
	next, ok := NextRunAfter(s.rule, t)
	if !ok {
		return time.Time{}
	}
	return next
}

// NextRunAfter returns the first occurrence of rule strictly after t.
func NextRunAfter(rule *rrule.Rule, t time.Time) (time.Time, bool) {
	return rule.After(t, false)
}
