package rrule

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ROption is the user-facing, mutable construction options for a Rule
// (component C3). It mirrors the shape of an RFC 5545 RRULE plus its
// paired DTSTART, before sort_and_dedup and validation freeze it into a
// Rule.
type ROption struct {
	Freq     Frequency
	Dtstart  Dt
	Interval int
	Wkst     Weekday
	Count    int
	Until    *Dt

	BySecond   []int `validate:"dive,gte=0,lte=59"`
	ByMinute   []int `validate:"dive,gte=0,lte=59"`
	ByHour     []int `validate:"dive,gte=0,lte=23"`
	ByDay      []ByDay
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByMonth    []int `validate:"dive,gte=1,lte=12"`
	BySetPos   []int
}

// Rule is the immutable, normalized recurrence rule consumed by an
// Iterator. It is produced exclusively by NewRule, which validates its
// ROption and sorts/dedups every BYxxx list (spec §4.3's sort_and_dedup).
type Rule struct {
	opt ROption
}

// NewRule validates opt against RFC 5545's structural constraints (spec
// §6) and, if valid, returns an immutable Rule ready for iteration. The
// returned Rule owns a defensively-cloned, sorted, deduplicated copy of
// opt; later mutation of opt has no effect on it.
func NewRule(opt ROption) (*Rule, error) {
	if opt.Interval == 0 {
		opt.Interval = 1
	}
	if !opt.Wkst.IsValid() {
		opt.Wkst = Monday
	}

	if err := Validate(opt); err != nil {
		return nil, err
	}

	opt.BySecond = sortDedupInts(opt.BySecond)
	opt.ByMinute = sortDedupInts(opt.ByMinute)
	opt.ByHour = sortDedupInts(opt.ByHour)
	opt.ByMonthDay = sortDedupInts(opt.ByMonthDay)
	opt.ByYearDay = sortDedupInts(opt.ByYearDay)
	opt.ByWeekNo = sortDedupInts(opt.ByWeekNo)
	opt.ByMonth = sortDedupInts(opt.ByMonth)
	opt.BySetPos = sortDedupInts(opt.BySetPos)
	opt.ByDay = sortDedupByDay(opt.ByDay)

	return &Rule{opt: opt}, nil
}

// Validate checks opt against the RFC 5545 structural constraints
// enumerated in spec §6, grounded on original_source/src/rrule.rs's
// RRule::verify. It does not mutate opt.
func Validate(opt ROption) error {
	if !opt.Freq.IsValid() {
		return ErrInvalidFrequency
	}
	if opt.Interval < 0 {
		return ErrInvalidInterval
	}

	if err := validate.Struct(opt); err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}

	if opt.Until != nil {
		if err := validateUntil(opt); err != nil {
			return err
		}
	}

	byDayHasNth := false
	for _, bd := range opt.ByDay {
		if bd.IsNth() {
			byDayHasNth = true
			if bd.N < -53 || bd.N > 53 || bd.N == 0 {
				return fmt.Errorf("%w: BYDAY nth %d", ErrOutOfRange, bd.N)
			}
		}
	}
	if byDayHasNth && opt.Freq != Monthly && opt.Freq != Yearly {
		return ErrByDayNthNotAllowed
	}
	if byDayHasNth && opt.Freq == Yearly && len(opt.ByWeekNo) > 0 {
		return ErrByDayNthWithWeekNo
	}

	if err := validatePlusMinus("BYMONTHDAY", opt.ByMonthDay, 1, 31); err != nil {
		return err
	}
	if opt.Freq == Weekly && len(opt.ByMonthDay) > 0 {
		return ErrByMonthDayNotAllowed
	}

	if err := validatePlusMinus("BYYEARDAY", opt.ByYearDay, 1, 366); err != nil {
		return err
	}
	if len(opt.ByYearDay) > 0 && (opt.Freq == Daily || opt.Freq == Weekly || opt.Freq == Monthly) {
		return ErrByYearDayNotAllowed
	}

	if err := validatePlusMinus("BYWEEKNO", opt.ByWeekNo, 1, 53); err != nil {
		return err
	}
	if len(opt.ByWeekNo) > 0 && opt.Freq != Yearly {
		return ErrByWeekNoNotAllowed
	}

	if err := validatePlusMinus("BYSETPOS", opt.BySetPos, 1, 366); err != nil {
		return err
	}

	return nil
}

func validateUntil(opt ROption) error {
	until := *opt.Until
	if until.isDateOnly() != opt.Dtstart.isDateOnly() {
		return fmt.Errorf("%w: UNTIL is date-only=%v, DTSTART is date-only=%v", ErrUntilTypeMismatch, until.isDateOnly(), opt.Dtstart.isDateOnly())
	}

	dtFloating := opt.Dtstart.isFloating()
	dtZoned := opt.Dtstart.Kind == KindFloating && opt.Dtstart.Zone != nil
	dtUTC := opt.Dtstart.Kind == KindUTC

	untilFloating := until.isFloating()
	untilUTC := until.Kind == KindUTC

	if dtFloating && !untilFloating && !until.isDateOnly() {
		return fmt.Errorf("%w: DTSTART is floating local time but UNTIL is not", ErrUntilTypeMismatch)
	}
	if (dtUTC || dtZoned) && !untilUTC && !until.isDateOnly() {
		return fmt.Errorf("%w: DTSTART is UTC/zoned but UNTIL is not UTC", ErrUntilTypeMismatch)
	}
	return nil
}

// validatePlusMinus checks that every value in vals is within [lo, hi] or
// its mirror [-hi, -lo], rejecting zero, per the ± numeric ranges spec §3
// assigns to BYMONTHDAY/BYYEARDAY/BYWEEKNO/BYSETPOS.
func validatePlusMinus(name string, vals []int, lo, hi int) error {
	for _, v := range vals {
		if v == 0 || v < -hi || v > hi || (v > 0 && v < lo) || (v < 0 && v > -lo) {
			return fmt.Errorf("%w: %s value %d must be in [%d,%d] or [%d,%d]", ErrOutOfRange, name, v, lo, hi, -hi, -lo)
		}
	}
	return nil
}

func sortDedupInts(vals []int) []int {
	if len(vals) == 0 {
		return nil
	}
	out := append([]int(nil), vals...)
	insertionSortInts(out)
	return dedupSortedInts(out)
}

func insertionSortInts(vals []int) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}

func dedupSortedInts(vals []int) []int {
	if len(vals) == 0 {
		return vals
	}
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func sortDedupByDay(vals []ByDay) []ByDay {
	if len(vals) == 0 {
		return nil
	}
	out := append([]ByDay(nil), vals...)
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i - 1
		for j >= 0 && compareByDay(out[j], v) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = v
	}
	dedup := out[:1]
	for _, v := range out[1:] {
		if v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// dtstartTime returns DTSTART resolved to a concrete instant and whether
// it is floating, per Dt.resolve.
func (r *Rule) dtstartTime() (time.Time, bool) {
	return r.opt.Dtstart.resolve()
}
