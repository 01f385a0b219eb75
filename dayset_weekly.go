package rrule

import "time"

// addDaysWeekly implements spec §4.5.3: the FREQ=WEEKLY expansion over
// weeks starting on the rule's WKST, stepping INTERVAL weeks from the week
// containing DTSTART. Validate already rejects Nth BYDAY terms under
// Weekly, so every ByDay term here is an All-variant. Grounded on
// original_source/src/iter/weekly.rs's add_days_weekly.
func (it *Iterator) addDaysWeekly() {
	opt := &it.rule.opt
	year := it.year

	targets := make([]Weekday, 0, len(opt.ByDay))
	for _, bd := range opt.ByDay {
		targets = append(targets, bd.Weekday)
	}
	if len(targets) == 0 {
		targets = []Weekday{toWeekday(it.dtStart.Weekday())}
	}

	dtWeekStartAbs := weekStartAbsDay(it.dtStart.Year(), dateToYearday(it.dtStart.Year(), int(it.dtStart.Month()), it.dtStart.Day()), it.weekStart)
	floor, hasFloor := it.dtStartYeardayFloor()

	yd := weekStartYeardayOfYear(year, it.weekStart)
	yl := yearLen(year)
	for yd < yl+daysPerWeek {
		weekAbs := absoluteDay(year, yd)
		if onWeeklyInterval(weekAbs, dtWeekStartAbs, it.interval) {
			for _, wd := range targets {
				off := daysUntil(it.weekStart, wd)
				cand := yd + off
				if cand < 0 || cand >= yl {
					continue
				}
				if hasFloor && cand < floor {
					continue
				}
				if !byMonthFilter(year, cand, opt.ByMonth) {
					continue
				}
				it.days = append(it.days, cand)
			}
		}
		yd += daysPerWeek
	}
}

// weekStartYeardayOfYear returns the 0-based yearday (possibly negative)
// on which the first weekStart-aligned week boundary at or before Jan 1
// falls.
func weekStartYeardayOfYear(year int, weekStart Weekday) int {
	jan1Wd := weekdayOfYearday(year, 0)
	return -daysUntil(weekStart, jan1Wd)
}

// weekStartAbsDay returns the absolute day number of the weekStart-aligned
// week boundary at or before the given (year, yearday).
func weekStartAbsDay(year, yearday int, weekStart Weekday) int {
	wd := weekdayOfYearday(year, yearday)
	return absoluteDay(year, yearday) - daysUntil(weekStart, wd)
}

// absoluteDay converts a (year, 0-based yearday) pair, which may lie
// outside [0, yearLen(year)), to a day count with an arbitrary but
// consistent epoch, for comparing week boundaries across years.
func absoluteDay(year, yearday int) int {
	t := time.Date(year, time.January, 1+yearday, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / 86400)
}

// onWeeklyInterval reports whether the week starting at weekAbs lies on
// the INTERVAL-week lattice anchored at dtWeekStartAbs.
func onWeeklyInterval(weekAbs, dtWeekStartAbs, interval int) bool {
	if interval <= 1 {
		return true
	}
	delta := weekAbs - dtWeekStartAbs
	return delta >= 0 && (delta/daysPerWeek)%interval == 0
}
