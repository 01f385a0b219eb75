package bizcal

import (
	"time"

	"github.com/google/uuid"

	"github.com/rrulekit/rrule"
)

// Options extends a core recurrence with business-calendar observance
// policy: weekend/holiday shifting, holiday-only or weekend-only
// restriction, a fallback Observance rule, and an escape-hatch
// CustomFilter for anything the built-in policies don't cover.
type Options struct {
	ShiftOffWeekend     bool
	ShiftOffHolidays    bool
	ValidOnlyOnHolidays bool
	ValidOnlyOnWeekends bool
	ISOCode             string
	Observance          ObservanceMode
	CustomFilter        func(time.Time) bool
	Calendar            ICalendar
}

// ObservingIterator wraps a core rrule.Rule, filtering and shifting its
// raw occurrences according to Options. The raw recurrence math is left
// entirely to rrule.Rule; this type only ever post-processes what it
// returns.
type ObservingIterator struct {
	id       uuid.UUID
	base     *rrule.Rule
	calendar ICalendar
	opts     Options
}

// NewObservingIterator builds an ObservingIterator over base. If
// opts.Calendar is nil and opts.ISOCode is set, the calendar is resolved
// (and cached) from the process-wide registry.
func NewObservingIterator(base *rrule.Rule, opts Options) (*ObservingIterator, error) {
	calendar := opts.Calendar
	if calendar == nil && opts.ISOCode != "" {
		c, err := GetCalendar(opts.ISOCode)
		if err != nil || c == nil {
			c, err = NewCalendar(opts.ISOCode)
			if err != nil {
				return nil, err
			}
			SetCalendar(opts.ISOCode, c)
		}
		calendar = c
	}

	return &ObservingIterator{
		id:       uuid.New(),
		base:     base,
		calendar: calendar,
		opts:     opts,
	}, nil
}

// ID returns the correlation id used in debug log lines.
func (oi *ObservingIterator) ID() uuid.UUID {
	return oi.id
}

// Active reports whether any observance policy is actually in effect. When
// false, every method here is a pure pass-through to the base rule.
func (oi *ObservingIterator) Active() bool {
	opt := oi.opts
	return opt.ShiftOffWeekend ||
		opt.ShiftOffHolidays ||
		opt.ValidOnlyOnHolidays ||
		opt.ValidOnlyOnWeekends ||
		!opt.Observance.IsEmpty() ||
		opt.CustomFilter != nil ||
		opt.ISOCode != ""
}

func (oi *ObservingIterator) isHoliday(t time.Time) bool {
	if oi.calendar == nil {
		return false
	}
	actual, observed, _ := oi.calendar.IsHoliday(t)
	return actual || observed
}

// isValid reports whether t satisfies the configured constraints after any
// shift has already been applied.
func (oi *ObservingIterator) isValid(t time.Time) bool {
	opt := oi.opts

	if opt.CustomFilter != nil && !opt.CustomFilter(t) {
		return false
	}

	weekend := isWeekend(t)
	holiday := oi.isHoliday(t)

	if opt.ValidOnlyOnWeekends && !weekend {
		return false
	}
	if opt.ValidOnlyOnHolidays && !holiday {
		return false
	}
	if weekend && !opt.ShiftOffWeekend && !opt.ValidOnlyOnWeekends {
		return false
	}
	if holiday && !opt.ShiftOffHolidays && !opt.ValidOnlyOnHolidays {
		return false
	}

	return true
}

// applyShift relocates t per ShiftOffWeekend, ShiftOffHolidays, and
// Observance, in that order.
func (oi *ObservingIterator) applyShift(t time.Time) time.Time {
	opt := oi.opts

	if opt.ShiftOffWeekend {
		switch t.Weekday() {
		case time.Saturday:
			t = t.AddDate(0, 0, 2)
		case time.Sunday:
			t = t.AddDate(0, 0, 1)
		}
	}

	if opt.ShiftOffHolidays {
		for oi.isHoliday(t) {
			t = t.AddDate(0, 0, 1)
		}
	}

	switch opt.Observance {
	case ObservanceNextBizDay:
		for oi.isHoliday(t) || isWeekend(t) {
			t = t.AddDate(0, 0, 1)
		}
	case ObservancePreviousBizDay:
		for oi.isHoliday(t) || isWeekend(t) {
			t = t.AddDate(0, 0, -1)
		}
	}

	return t
}

// scanAttempts bounds how many raw occurrences scan will walk past before
// giving up; a rule whose constraints can never be satisfied (e.g.
// ValidOnlyOnHolidays with an empty calendar) must still terminate.
const scanAttempts = 1000

func (oi *ObservingIterator) scan(forward bool, t time.Time, inclusive bool) (time.Time, bool) {
	cursor := t
	step := time.Second
	if !forward {
		step = -step
	}

	for attempt := 0; attempt < scanAttempts; attempt++ {
		var (
			next time.Time
			ok   bool
		)
		if forward {
			next, ok = oi.base.After(cursor, inclusive)
		} else {
			next, ok = oi.base.Before(cursor, inclusive)
		}
		if !ok {
			return time.Time{}, false
		}

		adjusted := oi.applyShift(next)
		if oi.isValid(adjusted) {
			return adjusted, true
		}

		cursor = next.Add(step)
		inclusive = false
	}
	return time.Time{}, false
}

// After returns the first observance-adjusted occurrence strictly after t
// (or at-or-after, when inclusive).
func (oi *ObservingIterator) After(t time.Time, inclusive bool) (time.Time, bool) {
	if !oi.Active() {
		return oi.base.After(t, inclusive)
	}
	return oi.scan(true, t, inclusive)
}

// Before returns the last observance-adjusted occurrence strictly before t
// (or at-or-before, when inclusive).
func (oi *ObservingIterator) Before(t time.Time, inclusive bool) (time.Time, bool) {
	if !oi.Active() {
		return oi.base.Before(t, inclusive)
	}
	return oi.scan(false, t, inclusive)
}

// Between takes the base rule's occurrences between after and before (the
// bounds included when inclusive is true), shifts and filters them, and
// re-clamps the shifted times to [after, before] since a shift can push an
// occurrence outside the window.
func (oi *ObservingIterator) Between(after, before time.Time, inclusive bool) []time.Time {
	if !oi.Active() {
		return oi.base.Between(after, before, inclusive)
	}

	raw := oi.base.Between(after, before, inclusive)
	results := make([]time.Time, 0, len(raw))
	for _, t := range raw {
		adjusted := oi.applyShift(t)
		if !oi.isValid(adjusted) {
			continue
		}
		if adjusted.Before(after) || adjusted.After(before) {
			continue
		}
		results = append(results, adjusted)
	}
	return results
}
