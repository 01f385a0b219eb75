package rrule

import "fmt"

// Weekday is an ordered enum Monday..Sunday (index 0..6), matching RFC
// 5545's MO..SU tokens and independent of time.Weekday's Sunday=0 scheme.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) String() string {
	switch w {
	case Monday:
		return "MO"
	case Tuesday:
		return "TU"
	case Wednesday:
		return "WE"
	case Thursday:
		return "TH"
	case Friday:
		return "FR"
	case Saturday:
		return "SA"
	case Sunday:
		return "SU"
	default:
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
}

// IsValid reports whether w is one of the seven defined weekdays.
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// ByDay is a single BYDAY term: either "every occurrence of this weekday"
// (All) or "the Nth occurrence of this weekday within the containing
// month or year" (Nth), per spec §3's tagged-variant ByDay term.
//
// N is zero for All terms. For Nth terms N is in [-53,-1] ∪ [1,53];
// positive counts from the start of the period, negative from the end.
type ByDay struct {
	Weekday Weekday
	N       int
}

// All constructs a ByDay term matching every occurrence of wd.
func All(wd Weekday) ByDay {
	return ByDay{Weekday: wd}
}

// Nth constructs a ByDay term matching the nth occurrence of wd within
// whatever period (month or year) it is evaluated against. A zero n
// yields the same value as All(wd).
func Nth(wd Weekday, n int) ByDay {
	return ByDay{Weekday: wd, N: n}
}

// IsNth reports whether this term carries an explicit nth offset.
func (b ByDay) IsNth() bool {
	return b.N != 0
}

func (b ByDay) String() string {
	if b.N == 0 {
		return b.Weekday.String()
	}
	return fmt.Sprintf("%d%s", b.N, b.Weekday)
}

// compareByDay gives ByDay terms a total, deterministic order so that
// sort_and_dedup (spec §4.3) is stable: ordered by N first (so bare `All`
// terms, N==0, sort after negative offsets and before positive ones),
// then by Weekday. The tie-break only keeps output deterministic; it
// carries no RFC significance.
func compareByDay(a, b ByDay) int {
	if a.N != b.N {
		if a.N < b.N {
			return -1
		}
		return 1
	}
	if a.Weekday != b.Weekday {
		if a.Weekday < b.Weekday {
			return -1
		}
		return 1
	}
	return 0
}

// daysInMonth enumerates, in ascending order, the 0-based yeardays within
// the given 1-based month of year that satisfy this ByDay term (spec
// §4.2's days_in_month).
func (b ByDay) daysInMonth(year, month1 int) []int {
	if !b.IsNth() {
		return allWeekdaysInMonth(year, month1, b.Weekday)
	}
	yd, ok := nthWeekdayInMonth(year, month1, b.Weekday, b.N)
	if !ok {
		return nil
	}
	return []int{yd}
}

// daysInYear enumerates, in ascending order, the 0-based yeardays within
// year that satisfy this ByDay term, ignoring month boundaries (spec
// §4.2's days_in_year).
func (b ByDay) daysInYear(year int) []int {
	if !b.IsNth() {
		return allWeekdaysInYear(year, b.Weekday)
	}
	yd, ok := nthWeekdayInYear(year, b.Weekday, b.N)
	if !ok {
		return nil
	}
	return []int{yd}
}

func allWeekdaysInMonth(year, month1 int, wd Weekday) []int {
	start, end := monthYeardayRange(year, month1)
	first := weekdayOfYearday(year, start)
	offset := daysUntil(first, wd)
	var out []int
	for yd := start + offset; yd < end; yd += daysPerWeek {
		out = append(out, yd)
	}
	return out
}

func allWeekdaysInYear(year int, wd Weekday) []int {
	first := weekdayOfYearday(year, 0)
	offset := daysUntil(first, wd)
	yl := yearLen(year)
	var out []int
	for yd := offset; yd < yl; yd += daysPerWeek {
		out = append(out, yd)
	}
	return out
}

// nthWeekdayInMonth implements spec §4.2's Nth algorithm: base = first
// (or last) of month, offset to the requested weekday, then step by
// (n-1)*7 days from the front or mirrored from the back. The candidate is
// rejected if it spills into the neighboring month.
func nthWeekdayInMonth(year, month1 int, wd Weekday, n int) (int, bool) {
	start, end := monthYeardayRange(year, month1)
	if n > 0 {
		first := weekdayOfYearday(year, start)
		offset := daysUntil(first, wd)
		yd := start + offset + (n-1)*daysPerWeek
		if yd >= start && yd < end {
			return yd, true
		}
		return 0, false
	}
	last := end - 1
	lastWd := weekdayOfYearday(year, last)
	offset := daysUntil(wd, lastWd)
	yd := last - offset - (-n-1)*daysPerWeek
	if yd >= start && yd < end {
		return yd, true
	}
	return 0, false
}

// nthWeekdayInYear mirrors nthWeekdayInMonth but relative to Jan 1 / Dec 31.
func nthWeekdayInYear(year int, wd Weekday, n int) (int, bool) {
	yl := yearLen(year)
	if n > 0 {
		first := weekdayOfYearday(year, 0)
		offset := daysUntil(first, wd)
		yd := offset + (n-1)*daysPerWeek
		if yd >= 0 && yd < yl {
			return yd, true
		}
		return 0, false
	}
	last := yl - 1
	lastWd := weekdayOfYearday(year, last)
	offset := daysUntil(wd, lastWd)
	yd := last - offset - (-n-1)*daysPerWeek
	if yd >= 0 && yd < yl {
		return yd, true
	}
	return 0, false
}
