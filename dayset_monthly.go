package rrule

// addDaysMonthly implements spec §4.5.2: the FREQ=MONTHLY expansion,
// stepping INTERVAL months from DTSTART's month and, for each qualifying
// month, applying BYMONTHDAY/BYDAY per the rules below. Grounded on
// original_source/src/iter/monthly.rs's add_days_monthly.
func (it *Iterator) addDaysMonthly() {
	opt := &it.rule.opt
	year := it.year
	dtMonth := int(it.dtStart.Month())
	dtDay := it.dtStart.Day()
	dtYear := it.dtStart.Year()

	for month1 := 1; month1 <= 12; month1++ {
		if year == dtYear && month1 < dtMonth {
			continue
		}
		if !monthOnInterval(year, month1, dtYear, dtMonth, it.interval) {
			continue
		}
		if len(opt.ByMonth) > 0 && !containsInt(opt.ByMonth, month1) {
			continue
		}

		switch {
		case len(opt.ByMonthDay) == 0 && len(opt.ByDay) == 0:
			if dtDay <= daysInMonth(year, month1) {
				it.days = append(it.days, dateToYearday(year, month1, dtDay))
			}
		case len(opt.ByMonthDay) == 0:
			for _, bd := range opt.ByDay {
				it.days = append(it.days, bd.daysInMonth(year, month1)...)
			}
		default:
			for _, signed := range opt.ByMonthDay {
				day, ok := monthDayToActual(year, month1, signed)
				if !ok {
					continue
				}
				yd := dateToYearday(year, month1, day)
				if !byDayAllowsInMonth(year, month1, yd, opt.ByDay) {
					continue
				}
				it.days = append(it.days, yd)
			}
		}
	}
}

// monthOnInterval reports whether month1 of year is INTERVAL months after
// dtMonth of dtYear (i.e. lies on the monthly stepping lattice anchored at
// DTSTART).
func monthOnInterval(year, month1, dtYear, dtMonth, interval int) bool {
	if interval <= 1 {
		return true
	}
	elapsed := (year-dtYear)*12 + (month1 - dtMonth)
	return elapsed >= 0 && elapsed%interval == 0
}
