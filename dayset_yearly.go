package rrule

// addDaysYearly implements spec §4.5.1: the six FREQ=YEARLY expansion
// rules, unioned here and then sorted and deduped by rebuildDays. Grounded on
// original_source/src/iter/yearly.rs's add_days_yearly, adapted to this
// package's filter helpers.
func (it *Iterator) addDaysYearly() {
	opt := &it.rule.opt
	year := it.year
	floor, hasFloor := it.dtStartYeardayFloor()
	dtStartMonthday := it.dtStart.Day()

	week1Start, weekCount := weeksInYear(year, it.weekStart)

	passesCommon := func(yd int) bool {
		if hasFloor && yd < floor {
			return false
		}
		if len(opt.ByWeekNo) > 0 {
			if !ydInSelectedWeeks(year, yd, opt.ByWeekNo, week1Start, weekCount) {
				return false
			}
		}
		if !byYearDayFilter(year, yd, opt.ByYearDay) {
			return false
		}
		return true
	}

	// 1. BYMONTH expansion.
	for _, month1 := range opt.ByMonth {
		if len(opt.ByDay) == 0 {
			day := dtStartMonthday
			if day > daysInMonth(year, month1) {
				continue
			}
			yd := dateToYearday(year, month1, day)
			if !passesCommon(yd) {
				continue
			}
			if !byMonthDayFilter(year, yd, opt.ByMonthDay) {
				continue
			}
			it.days = append(it.days, yd)
		} else {
			for _, bd := range opt.ByDay {
				for _, yd := range bd.daysInMonth(year, month1) {
					if !passesCommon(yd) {
						continue
					}
					if !byMonthDayFilter(year, yd, opt.ByMonthDay) {
						continue
					}
					it.days = append(it.days, yd)
				}
			}
		}
	}

	// 2. BYWEEKNO expansion.
	for _, signed := range opt.ByWeekNo {
		idx, ok := byWeekNoToIndex(weekCount, signed)
		if !ok {
			continue
		}
		weekStart := week1Start + (idx-1)*daysPerWeek
		for yd := weekStart; yd < weekStart+daysPerWeek; yd++ {
			if hasFloor && yd < floor {
				continue
			}
			if !byMonthFilter(year, yd, opt.ByMonth) {
				continue
			}
			if !byYearDayFilter(year, yd, opt.ByYearDay) {
				continue
			}
			if !byMonthDayFilter(year, yd, opt.ByMonthDay) {
				continue
			}
			if len(opt.ByDay) == 0 {
				it.days = append(it.days, yd)
				continue
			}
			wd := weekdayOfYearday(year, normalizeYD(year, yd))
			for _, bd := range opt.ByDay {
				if !bd.IsNth() && bd.Weekday == wd {
					it.days = append(it.days, yd)
					break
				}
			}
		}
	}

	if len(opt.ByMonth) == 0 && len(opt.ByWeekNo) == 0 && len(opt.ByMonthDay) == 0 {
		// 3. Bare BYYEARDAY.
		for _, signed := range opt.ByYearDay {
			yd, ok := yearDayToActual(year, signed)
			if !ok {
				continue
			}
			if hasFloor && yd < floor {
				continue
			}
			it.days = append(it.days, yd)
		}
	}

	if len(opt.ByMonth) == 0 && len(opt.ByWeekNo) == 0 {
		// 4. BYMONTHDAY.
		for _, signed := range opt.ByMonthDay {
			for _, month1 := range months(nil) {
				day, ok := monthDayToActual(year, month1, signed)
				if !ok {
					continue
				}
				yd := dateToYearday(year, month1, day)
				if hasFloor && yd < floor {
					continue
				}
				if !byDayAllowsInMonth(year, month1, yd, opt.ByDay) {
					continue
				}
				it.days = append(it.days, yd)
			}
		}
	}

	if len(opt.ByMonth) == 0 && len(opt.ByWeekNo) == 0 && len(opt.ByMonthDay) == 0 && len(opt.ByYearDay) == 0 {
		// 5. Bare BYDAY.
		if len(opt.ByDay) > 0 {
			for _, bd := range opt.ByDay {
				for _, yd := range bd.daysInYear(year) {
					if hasFloor && yd < floor {
						continue
					}
					it.days = append(it.days, yd)
				}
			}
		} else if len(opt.ByMonthDay) == 0 {
			// 6. Fallback: DTSTART's (month, monthday) in the current year.
			dtMonth := int(it.dtStart.Month())
			if dtStartMonthday <= daysInMonth(year, dtMonth) {
				yd := dateToYearday(year, dtMonth, dtStartMonthday)
				if !hasFloor || yd >= floor {
					it.days = append(it.days, yd)
				}
			}
		}
	}
}

// ydInSelectedWeeks reports whether yd falls within one of the week
// numbers selected by byWeekNo.
func ydInSelectedWeeks(year, yd int, byWeekNo []int, week1Start, weekCount int) bool {
	if yd < week1Start {
		return false
	}
	idx := (yd-week1Start)/daysPerWeek + 1
	for _, signed := range byWeekNo {
		want, ok := byWeekNoToIndex(weekCount, signed)
		if ok && want == idx {
			return true
		}
	}
	return false
}
