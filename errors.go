package rrule

import "errors"

// Sentinel errors returned by Validate/NewRule. Callers can match on these
// with errors.Is; some are returned bare, others wrapped with additional
// detail via fmt.Errorf("%w: ...", sentinel, ...).
var (
	// ErrInvalidInterval is returned when INTERVAL is negative. A zero
	// INTERVAL is the unset value: Validate accepts it and NewRule
	// replaces it with 1.
	ErrInvalidInterval = errors.New("rrule: INTERVAL must be a positive integer")

	// ErrUntilTypeMismatch is returned when UNTIL's value type (date vs.
	// date-time, floating vs. zoned) disagrees with DTSTART's.
	ErrUntilTypeMismatch = errors.New("rrule: UNTIL value type must match DTSTART")

	// ErrByDayNthNotAllowed is returned when a Nth ByDay term is used
	// under a frequency other than Monthly or Yearly.
	ErrByDayNthNotAllowed = errors.New("rrule: BYDAY nth offset only allowed with FREQ=MONTHLY or FREQ=YEARLY")

	// ErrByDayNthWithWeekNo is returned when a Nth ByDay term is combined
	// with BYWEEKNO under FREQ=YEARLY.
	ErrByDayNthWithWeekNo = errors.New("rrule: BYDAY nth offset not allowed together with BYWEEKNO")

	// ErrByMonthDayNotAllowed is returned when BYMONTHDAY is used under
	// FREQ=WEEKLY.
	ErrByMonthDayNotAllowed = errors.New("rrule: BYMONTHDAY not allowed with FREQ=WEEKLY")

	// ErrByYearDayNotAllowed is returned when BYYEARDAY is used under
	// FREQ=DAILY, WEEKLY, or MONTHLY.
	ErrByYearDayNotAllowed = errors.New("rrule: BYYEARDAY not allowed with FREQ=DAILY, WEEKLY, or MONTHLY")

	// ErrByWeekNoNotAllowed is returned when BYWEEKNO is used under any
	// frequency other than YEARLY.
	ErrByWeekNoNotAllowed = errors.New("rrule: BYWEEKNO only allowed with FREQ=YEARLY")

	// ErrOutOfRange is returned when a BYxxx numeric value falls outside
	// the bounds defined by RFC 5545 (see Validate for the field-specific
	// bound).
	ErrOutOfRange = errors.New("rrule: value out of range")

	// ErrInvalidFrequency is returned when Freq is not one of the seven
	// defined Frequency values.
	ErrInvalidFrequency = errors.New("rrule: invalid FREQ")
)
