package rrule

// Component C5: given a Rule and a candidate year, build the sorted,
// deduplicated set of 0-based yeardays (possibly negative, meaning a day
// borrowed from the previous year, or ≥ yearLen, borrowed from the next)
// that satisfy the rule for that year. Dispatch is by frequency; each
// frequency has its own builder file (dayset_yearly.go, dayset_monthly.go,
// dayset_weekly.go, dayset_daily.go, dayset_subday.go for
// Hourly/Minutely/Secondly, which share the Daily builder plus a
// BYYEARDAY filter per spec §4.5.5).

// rebuildDays recomputes it.days for it.year, retrying subsequent years
// (per frequency-specific stepping) until a non-empty set is found or the
// safety cap on year advancement is hit (spec §4.5.8).
func (it *Iterator) rebuildDays() {
	for {
		if it.year > maxIterationYear {
			it.logger.Debug("rrule: safety cap reached", map[string]interface{}{
				"iterator": it.id.String(),
				"year":     it.year,
			})
			it.done = true
			return
		}

		it.days = it.days[:0]

		switch it.rule.opt.Freq {
		case Yearly:
			it.addDaysYearly()
		case Monthly:
			it.addDaysMonthly()
		case Weekly:
			it.addDaysWeekly()
		case Daily:
			it.addDaysDaily()
		case Hourly, Minutely, Secondly:
			it.addDaysSubDay()
		}

		it.days = sortDedupYeardays(it.days)

		if len(it.days) > 0 {
			return
		}

		if it.rule.opt.Freq == Yearly {
			it.year += it.interval
		} else {
			it.year++
		}
	}
}

// maxIterationYear bounds the year-skipping safety net (spec §4.5.8 /
// §5): some valid rules (FREQ=YEARLY;BYMONTHDAY=29;BYMONTH=2;BYDAY=SU) can
// skip many years before matching; this caps the search rather than
// spinning forever.
const maxIterationYear = 9999

func sortDedupYeardays(days []int) []int {
	insertionSortInts(days)
	return dedupSortedInts(days)
}

// months returns the 1-based months to iterate: byMonth if non-empty,
// else every month 1..12 (spec §4.5.2/.4/.5's "BYMONTH or 1..12").
func months(byMonth []int) []int {
	if len(byMonth) > 0 {
		return byMonth
	}
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
}

// yearDayToActual converts a ±1..366 BYYEARDAY/BYSETPOS-style value to a
// 0-based yearday, reporting false if it falls outside the year's actual
// length.
func yearDayToActual(year, signed int) (int, bool) {
	yl := yearLen(year)
	if signed > 0 {
		yd := signed - 1
		return yd, yd < yl
	}
	yd := yl + signed
	return yd, yd >= 0
}

// monthDayToActual converts a ±1..31 BYMONTHDAY value within month1 of
// year to a 1-based day-of-month, reporting false if out of range.
func monthDayToActual(year, month1, signed int) (int, bool) {
	dim := daysInMonth(year, month1)
	if signed > 0 {
		return signed, signed <= dim
	}
	day := dim + signed + 1
	return day, day >= 1
}

// byMonthFilter reports whether yd's month passes byMonth (empty list
// always passes).
func byMonthFilter(year int, yd int, byMonth []int) bool {
	if len(byMonth) == 0 {
		return true
	}
	m, _ := yeardayToDate(year, normalizeYD(year, yd))
	return containsInt(byMonth, m)
}

// byYearDayFilter reports whether yd passes byYearDay (empty list always
// passes).
func byYearDayFilter(year int, yd int, byYearDay []int) bool {
	if len(byYearDay) == 0 {
		return true
	}
	for _, signed := range byYearDay {
		actual, ok := yearDayToActual(year, signed)
		if ok && actual == yd {
			return true
		}
	}
	return false
}

// byMonthDayFilter reports whether yd passes byMonthDay (empty list
// always passes). yd is resolved to its containing month first.
func byMonthDayFilter(year int, yd int, byMonthDay []int) bool {
	if len(byMonthDay) == 0 {
		return true
	}
	nyd := normalizeYD(year, yd)
	month1, day := yeardayToDate(year, nyd)
	for _, signed := range byMonthDay {
		actual, ok := monthDayToActual(year, month1, signed)
		if ok && actual == day {
			return true
		}
	}
	return false
}

// byDayAllowsInMonth reports whether yd (already resolved into year's
// yearday space) passes byDay when byDay is evaluated relative to the
// month containing yd (spec §4.2's days_in_month enumeration). An empty
// byDay always passes.
func byDayAllowsInMonth(year, month1, yd int, byDay []ByDay) bool {
	if len(byDay) == 0 {
		return true
	}
	for _, bd := range byDay {
		for _, cand := range bd.daysInMonth(year, month1) {
			if cand == yd {
				return true
			}
		}
	}
	return false
}

// normalizeYD folds a possibly out-of-range yearday (from a cross-year
// week/BYDAY expansion) back into [0, yearLen(year)) by borrowing from
// the neighbor year's calendar tables; callers needing the actual
// containing year use yeardayToDateAcrossYears instead. This helper is
// only safe when the caller already knows yd belongs, in spirit, to
// `year` (e.g. a freshly computed BYMONTH/BYMONTHDAY candidate), and
// exists to keep the §4.5.6 filters working against the same year's
// lookup tables even when a ByDay term briefly overshoots a month
// boundary by at most one week.
func normalizeYD(year, yd int) int {
	yl := yearLen(year)
	if yd < 0 {
		return yd + yearLen(year-1)
	}
	if yd >= yl {
		return yd - yl
	}
	return yd
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// weeksInYear computes §4.5.7's week numbering: the 0-based yearday at
// which week 1 starts (possibly negative, meaning it starts in the prior
// year) and the total number of weeks, relative to weekStart.
func weeksInYear(year int, weekStart Weekday) (week1Start, weekCount int) {
	offsetThis := daysUntil(weekdayOfYearday(year, 0), weekStart)
	if offsetThis >= 4 {
		offsetThis -= daysPerWeek
	}

	offsetNext := daysUntil(weekdayOfYearday(year+1, 0), weekStart)
	if offsetNext >= 4 {
		offsetNext -= daysPerWeek
	}
	offsetNext += yearLen(year)

	return offsetThis, (offsetNext - offsetThis) / daysPerWeek
}

// byWeekNoToIndex converts a ±1..53 BYWEEKNO value to a 1-based week
// index within [1, weekCount], or false if out of range.
func byWeekNoToIndex(weekCount, signed int) (int, bool) {
	if signed > 0 {
		return signed, signed <= weekCount
	}
	idx := weekCount + signed + 1
	return idx, idx >= 1
}
