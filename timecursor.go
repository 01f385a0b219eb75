package rrule

// Component C6: the time-of-day lattice an Iterator steps through for
// every qualifying day, built once from a Rule's BYHOUR/BYMINUTE/BYSECOND
// (or frequency-appropriate defaults) and independent of the calendar
// year. Grounded on original_source/src/iter/mod.rs's hours/minutes/
// seconds construction in RRuleIter::new.

// clockTime is one (hour, minute, second) point in the lattice.
type clockTime struct {
	hour, minute, second int
}

// occurrence pairs a 0-based yearday (relative to the Iterator's current
// year, per dayset.go's convention) with a clockTime, identifying one
// candidate instant before BYSETPOS selection and DTSTART/UNTIL/COUNT
// filtering.
type occurrence struct {
	yd int
	clockTime
}

var fullSeconds = rangeInts(0, 59)
var fullMinutes = rangeInts(0, 59)
var fullHours = rangeInts(0, 23)

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

// buildTimeLattice constructs the sorted cross product of hours, minutes,
// and seconds a Rule iterates within each qualifying day. Each unit comes
// from its BYxxx list when given; otherwise it expands to the full 0..N
// range when FREQ is at least as fine-grained as that unit, or else
// collapses to DTSTART's own value (the coarser-frequency "keep the
// clock fixed" case, e.g. FREQ=DAILY with no BYHOUR).
func buildTimeLattice(freq Frequency, dtHour, dtMinute, dtSecond int, byHour, byMinute, bySecond []int) []clockTime {
	hours := resolveUnit(byHour, dtHour, fullHours, freq <= Hourly)
	minutes := resolveUnit(byMinute, dtMinute, fullMinutes, freq <= Minutely)
	seconds := resolveUnit(bySecond, dtSecond, fullSeconds, freq <= Secondly)

	lattice := make([]clockTime, 0, len(hours)*len(minutes)*len(seconds))
	for _, h := range hours {
		for _, m := range minutes {
			for _, s := range seconds {
				lattice = append(lattice, clockTime{h, m, s})
			}
		}
	}
	return lattice
}

func resolveUnit(vals []int, dtVal int, full []int, expand bool) []int {
	if len(vals) > 0 {
		return vals
	}
	if expand {
		return full
	}
	return []int{dtVal}
}

// periodKey maps a yearday to the BYSETPOS grouping period appropriate to
// freq (spec §4.7's "day-set + time-set cross product, grouped by the
// rule's own period, then selected"): the whole year for Yearly, the
// month for Monthly, the week for Weekly, and the day itself for
// Daily/Hourly/Minutely/Secondly.
func (it *Iterator) periodKey(yd int) int {
	switch it.rule.opt.Freq {
	case Yearly:
		return 0
	case Monthly:
		_, month, _ := yeardayToDateAcrossYears(it.year, yd)
		return month
	case Weekly:
		base := weekStartYeardayOfYear(it.year, it.weekStart)
		return (yd - base) / daysPerWeek
	default:
		return yd
	}
}

// setPosToIndex converts a ±1..366 BYSETPOS value to a 0-based index into
// a period's n-element candidate list, or false if out of range.
func setPosToIndex(n, signed int) (int, bool) {
	if signed > 0 {
		idx := signed - 1
		return idx, idx < n
	}
	idx := n + signed
	return idx, idx >= 0
}

// buildInstantsForYear cross-products it.days with it.lattice, applies
// the sub-day INTERVAL stride (Hourly/Minutely/Secondly only; every other
// frequency already applied INTERVAL while building it.days) and
// BYSETPOS per period when set, storing the result in chronological
// order in it.instants.
func (it *Iterator) buildInstantsForYear() {
	cross := make([]occurrence, 0, len(it.days)*len(it.lattice))
	for _, yd := range it.days {
		for _, ct := range it.lattice {
			cross = append(cross, occurrence{yd: yd, clockTime: ct})
		}
	}
	cross = it.applyHMSInterval(cross)

	if len(it.rule.opt.BySetPos) == 0 {
		it.instants = cross
		return
	}

	it.instants = it.instants[:0]

	var groupKeys []int
	groups := make(map[int][]occurrence)
	for _, occ := range cross {
		k := it.periodKey(occ.yd)
		if _, ok := groups[k]; !ok {
			groupKeys = append(groupKeys, k)
		}
		groups[k] = append(groups[k], occ)
	}
	insertionSortInts(groupKeys)

	for _, k := range groupKeys {
		group := groups[k]
		for _, pos := range it.rule.opt.BySetPos {
			idx, ok := setPosToIndex(len(group), pos)
			if ok {
				it.instants = append(it.instants, group[idx])
			}
		}
	}

	sortOccurrences(it.instants)
}

// applyHMSInterval steps FREQ=HOURLY/MINUTELY/SECONDLY by INTERVAL units
// of the cursor's own granularity (spec §4.6), selecting every
// INTERVAL-th entry of the chronological candidate sequence rather than
// filtering whole days, since the step can straddle a day boundary (e.g.
// FREQ=MINUTELY;INTERVAL=90). The running ordinal is anchored so DTSTART's
// own candidate lands on the lattice (ordinal 0) the first time this is
// called, then carried across year rebuilds so spacing stays correct.
func (it *Iterator) applyHMSInterval(cross []occurrence) []occurrence {
	freq := it.rule.opt.Freq
	if it.interval <= 1 || (freq != Hourly && freq != Minutely && freq != Secondly) {
		return cross
	}

	if !it.hmsAnchored {
		dtYd := dateToYearday(it.dtStart.Year(), int(it.dtStart.Month()), it.dtStart.Day())
		dtCt := clockTime{it.dtStart.Hour(), it.dtStart.Minute(), it.dtStart.Second()}
		for i, occ := range cross {
			if occ.yd == dtYd && occ.clockTime == dtCt {
				it.hmsOrdinal = -i
				break
			}
		}
		it.hmsAnchored = true
	}

	out := make([]occurrence, 0, len(cross)/it.interval+1)
	for i, occ := range cross {
		if mod(it.hmsOrdinal+i, it.interval) == 0 {
			out = append(out, occ)
		}
	}
	it.hmsOrdinal += len(cross)
	return out
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func sortOccurrences(occs []occurrence) {
	for i := 1; i < len(occs); i++ {
		v := occs[i]
		j := i - 1
		for j >= 0 && occurrenceLess(v, occs[j]) {
			occs[j+1] = occs[j]
			j--
		}
		occs[j+1] = v
	}
}

func occurrenceLess(a, b occurrence) bool {
	if a.yd != b.yd {
		return a.yd < b.yd
	}
	if a.hour != b.hour {
		return a.hour < b.hour
	}
	if a.minute != b.minute {
		return a.minute < b.minute
	}
	return a.second < b.second
}
