package rrule

// addDaysDaily implements spec §4.5.4: the FREQ=DAILY expansion, one
// candidate per calendar day filtered by BYMONTH/BYMONTHDAY/BYDAY and
// stepped on the INTERVAL-day lattice anchored at DTSTART. Grounded on
// original_source/src/iter/daily.rs's add_days_daily.
func (it *Iterator) addDaysDaily() {
	dtAbs := absoluteDay(it.dtStart.Year(), dateToYearday(it.dtStart.Year(), int(it.dtStart.Month()), it.dtStart.Day()))
	it.collectDailyCandidates(func(yd int) {
		if it.interval > 1 {
			delta := absoluteDay(it.year, yd) - dtAbs
			if delta < 0 || delta%it.interval != 0 {
				return
			}
		}
		it.days = append(it.days, yd)
	})
}

// collectDailyCandidates walks every 0-based yearday in it.year that
// passes BYMONTH/BYMONTHDAY/BYDAY and the DTSTART floor, invoking emit
// for each. Shared by addDaysDaily and addDaysSubDay. INTERVAL is NOT
// applied here: for Daily, addDaysDaily applies it itself at day
// granularity; for Hourly/Minutely/Secondly, INTERVAL instead steps the
// time-of-day cursor (spec §4.6), since a sub-day interval can span a day
// boundary in ways a per-day filter cannot express.
func (it *Iterator) collectDailyCandidates(emit func(yd int)) {
	opt := &it.rule.opt
	year := it.year
	floor, hasFloor := it.dtStartYeardayFloor()

	for _, month1 := range months(opt.ByMonth) {
		start, end := monthYeardayRange(year, month1)
		for yd := start; yd < end; yd++ {
			if hasFloor && yd < floor {
				continue
			}
			if !byMonthDayFilter(year, yd, opt.ByMonthDay) {
				continue
			}
			if !byDayAllowsInMonth(year, month1, yd, opt.ByDay) {
				continue
			}
			emit(yd)
		}
	}
}
