package rrule

import "time"

// Calendar primitives (component C1): pure functions over (year, yearday)
// with a 0-based yearday, backed by two static lookup tables (normal and
// leap years) so date arithmetic during iteration never has to re-derive
// month lengths.

const daysPerWeek = 7

var (
	// yeardayToMonth[leap][yearday] is the 1-based month containing that
	// 0-based yearday.
	yeardayToMonth [2][]int
	// yeardayToMonthday[leap][yearday] is the 1-based day-of-month.
	yeardayToMonthday [2][]int
	// monthToYeardayRange[leap][month1-1] is the half-open [start, end)
	// range of 0-based yeardays belonging to that month.
	monthToYeardayRange [2][][2]int
)

func init() {
	normalLens := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leapLens := normalLens
	leapLens[1] = 29

	for leap, lens := range [2][12]int{normalLens, leapLens} {
		var months, mdays []int
		var ranges [][2]int
		yd := 0
		for m := 0; m < 12; m++ {
			start := yd
			for d := 1; d <= lens[m]; d++ {
				months = append(months, m+1)
				mdays = append(mdays, d)
				yd++
			}
			ranges = append(ranges, [2]int{start, yd})
		}
		yeardayToMonth[leap] = months
		yeardayToMonthday[leap] = mdays
		monthToYeardayRange[leap] = ranges
	}
}

// isLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func leapIndex(year int) int {
	if isLeapYear(year) {
		return 1
	}
	return 0
}

// yearLen returns the number of days in year.
func yearLen(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// daysInMonth returns the number of days in the given 1-based month of year.
func daysInMonth(year, month1 int) int {
	r := monthToYeardayRange[leapIndex(year)][month1-1]
	return r[1] - r[0]
}

// monthYeardayRange returns the half-open [start, end) range of 0-based
// yeardays for month1 (1-based) in year.
func monthYeardayRange(year, month1 int) (start, end int) {
	r := monthToYeardayRange[leapIndex(year)][month1-1]
	return r[0], r[1]
}

// yeardayToDate converts a 0-based yearday in [0, yearLen(year)) to a
// 1-based (month, day) pair.
func yeardayToDate(year, yearday int) (month, day int) {
	l := leapIndex(year)
	return yeardayToMonth[l][yearday], yeardayToMonthday[l][yearday]
}

// dateToYearday is the inverse of yeardayToDate.
func dateToYearday(year, month, day int) int {
	start, _ := monthYeardayRange(year, month)
	return start + day - 1
}

// weekdayOfYearday returns the Weekday of the given 0-based yearday in year.
func weekdayOfYearday(year, yearday int) Weekday {
	jan1 := toWeekday(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
	return Weekday((int(jan1) + yearday) % daysPerWeek)
}

// daysUntil returns the number of days to add to `from` to reach `to`,
// both Weekday indices 0..6, always in [0, 7).
func daysUntil(from, to Weekday) int {
	d := (int(to) - int(from)) % daysPerWeek
	if d < 0 {
		d += daysPerWeek
	}
	return d
}

// toWeekday converts a time.Weekday (Sunday=0) to our Monday=0 indexing.
func toWeekday(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// yeardayToDateAcrossYears resolves a yearday that may have borrowed from
// the previous or next calendar year (as produced by a BYWEEKNO or BYDAY
// expansion near a year boundary) to its actual (year, month, day).
func yeardayToDateAcrossYears(year, yd int) (actualYear, month, day int) {
	switch {
	case yd < 0:
		actualYear = year - 1
		yd += yearLen(actualYear)
	case yd >= yearLen(year):
		actualYear = year + 1
		yd -= yearLen(year)
	default:
		actualYear = year
	}
	month, day = yeardayToDate(actualYear, yd)
	return
}
