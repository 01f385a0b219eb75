package rrule

// addDaysSubDay implements spec §4.5.5: the day-set for FREQ=HOURLY,
// MINUTELY, and SECONDLY shares the Daily builder's day candidates (the
// sub-day stepping itself lives in the time-of-day cursor, component C6)
// but additionally applies BYYEARDAY, which Daily frequency forbids.
// Grounded on original_source/src/iter/hms_ly.rs's add_days_hms_ly.
func (it *Iterator) addDaysSubDay() {
	opt := &it.rule.opt
	year := it.year
	it.collectDailyCandidates(func(yd int) {
		if !byYearDayFilter(year, yd, opt.ByYearDay) {
			return
		}
		it.days = append(it.days, yd)
	})
}
