package rrule

import (
	"time"

	"github.com/google/uuid"
)

// Iterator is the stateful driver over a Rule (component C7): each call to
// Next advances through the rule's occurrences in chronological order,
// rebuilding the per-year day-set (component C5) and time-of-day lattice
// (component C6) on demand as it crosses year boundaries. Grounded on
// original_source/src/iter/mod.rs's RRuleIter and, for the overall
// generate/advance shape, standup-raven-rrule-go's rIterator.
type Iterator struct {
	rule   *Rule
	id     uuid.UUID
	logger Logger

	dtStart   time.Time
	until     *time.Time
	interval  int
	weekStart Weekday

	lattice []clockTime

	year     int
	days     []int
	instants []occurrence
	instIdx  int

	hmsOrdinal  int
	hmsAnchored bool

	hasCount       bool
	countRemaining int

	done bool
}

// maxAllResults bounds All() for rules with neither COUNT nor UNTIL, which
// would otherwise walk every year up to maxIterationYear, and bounds every
// Between() result.
const maxAllResults = 10000

// NewIterator constructs an Iterator over rule, resolving its DTSTART and
// building the time-of-day lattice once up front.
func NewIterator(rule *Rule) *Iterator {
	return newIteratorWithLogger(rule, noopLogger{})
}

// NewIteratorWithLogger is NewIterator with an explicit diagnostic Logger.
func NewIteratorWithLogger(rule *Rule, logger Logger) *Iterator {
	if logger == nil {
		logger = noopLogger{}
	}
	return newIteratorWithLogger(rule, logger)
}

func newIteratorWithLogger(rule *Rule, logger Logger) *Iterator {
	dtStart, _ := rule.dtstartTime()
	opt := rule.opt

	var until *time.Time
	if opt.Until != nil {
		u, _ := opt.Until.resolve()
		until = &u
	}

	it := &Iterator{
		rule:      rule,
		id:        uuid.New(),
		logger:    logger,
		dtStart:   dtStart,
		until:     until,
		interval:  opt.Interval,
		weekStart: opt.Wkst,
		year:      dtStart.Year(),
		hasCount:  opt.Count > 0,
	}
	if it.hasCount {
		it.countRemaining = opt.Count
	}
	it.lattice = buildTimeLattice(opt.Freq, dtStart.Hour(), dtStart.Minute(), dtStart.Second(), opt.ByHour, opt.ByMinute, opt.BySecond)
	return it
}

// ID returns the Iterator's correlation id, surfaced for diagnostic
// logging only; it carries no meaning for recurrence semantics.
func (it *Iterator) ID() uuid.UUID { return it.id }

// Floating reports whether this Iterator's DTSTART is a floating local
// date-time, for callers that need to decide whether to present emitted
// instants in a specific zone.
func (it *Iterator) Floating() bool { return it.rule.opt.Dtstart.isFloating() }

// dtStartYeardayFloor returns the 0-based yearday of DTSTART when it.year
// is DTSTART's own year, and whether that floor applies. Builders use
// this to avoid emitting occurrences before DTSTART within its own year;
// later years have no such floor.
func (it *Iterator) dtStartYeardayFloor() (int, bool) {
	if it.year == it.dtStart.Year() {
		return dateToYearday(it.year, int(it.dtStart.Month()), it.dtStart.Day()), true
	}
	return 0, false
}

func (it *Iterator) occurrenceTime(occ occurrence) time.Time {
	actualYear, month, day := yeardayToDateAcrossYears(it.year, occ.yd)
	loc := it.dtStart.Location()
	return time.Date(actualYear, time.Month(month), day, occ.hour, occ.minute, occ.second, 0, loc)
}

// Next returns the next occurrence in chronological order, or ok=false
// once the rule is exhausted (COUNT reached, UNTIL passed, or the
// safety-capped year search found nothing further).
func (it *Iterator) Next() (time.Time, bool) {
	if it.done {
		return time.Time{}, false
	}
	if it.hasCount && it.countRemaining <= 0 {
		it.done = true
		return time.Time{}, false
	}

	for {
		if it.instIdx >= len(it.instants) {
			if len(it.days) > 0 {
				// The current year is used up: step to the next year on
				// the rule's lattice before rebuilding.
				if it.rule.opt.Freq == Yearly {
					it.year += it.interval
				} else {
					it.year++
				}
			}
			it.rebuildDays()
			if it.done {
				return time.Time{}, false
			}
			it.logger.Debug("rrule: rebuilt day-set", map[string]interface{}{
				"iterator": it.id.String(),
				"year":     it.year,
				"days":     len(it.days),
			})
			it.buildInstantsForYear()
			it.instIdx = 0
			if len(it.instants) == 0 {
				continue
			}
		}

		occ := it.instants[it.instIdx]
		it.instIdx++
		t := it.occurrenceTime(occ)

		if t.Before(it.dtStart) {
			continue
		}
		if it.until != nil && t.After(*it.until) {
			it.done = true
			return time.Time{}, false
		}
		if it.hasCount {
			it.countRemaining--
		}
		return t, true
	}
}

// All materializes every occurrence. Rules with neither COUNT nor UNTIL
// are capped at maxAllResults to avoid an effectively unbounded result.
func (it *Iterator) All() []time.Time {
	var out []time.Time
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, t)
		if !it.hasCount && it.until == nil && len(out) >= maxAllResults {
			return out
		}
	}
}

// Between returns every occurrence in [after, before], or (after, before)
// when inclusive is false.
func (it *Iterator) Between(after, before time.Time, inclusive bool) []time.Time {
	var out []time.Time
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		if t.After(before) || (!inclusive && t.Equal(before)) {
			return out
		}
		if t.Before(after) || (!inclusive && t.Equal(after)) {
			continue
		}
		out = append(out, t)
		if len(out) >= maxAllResults {
			return out
		}
	}
}

// Before returns the last occurrence strictly before dt (or at-or-before
// when inclusive is true), and whether one exists.
func (it *Iterator) Before(dt time.Time, inclusive bool) (time.Time, bool) {
	var last time.Time
	found := false
	for {
		t, ok := it.Next()
		if !ok {
			return last, found
		}
		if t.After(dt) || (!inclusive && t.Equal(dt)) {
			return last, found
		}
		last, found = t, true
	}
}

// After returns the first occurrence strictly after dt (or at-or-after
// when inclusive is true), and whether one exists.
func (it *Iterator) After(dt time.Time, inclusive bool) (time.Time, bool) {
	for {
		t, ok := it.Next()
		if !ok {
			return time.Time{}, false
		}
		if t.After(dt) || (inclusive && t.Equal(dt)) {
			return t, true
		}
	}
}

// Iterator returns a fresh Iterator positioned at DTSTART, matching the
// rIterator-per-call convention standup-raven-rrule-go's RRule.Iterator
// uses for each of All/Between/Before/After.
func (r *Rule) Iterator() *Iterator { return NewIterator(r) }

// All returns every occurrence of r, from a fresh Iterator.
func (r *Rule) All() []time.Time { return r.Iterator().All() }

// Between returns every occurrence of r in [after, before] (or the open
// interval when inclusive is false), from a fresh Iterator.
func (r *Rule) Between(after, before time.Time, inclusive bool) []time.Time {
	return r.Iterator().Between(after, before, inclusive)
}

// Before returns the last occurrence of r before dt, from a fresh Iterator.
func (r *Rule) Before(dt time.Time, inclusive bool) (time.Time, bool) {
	return r.Iterator().Before(dt, inclusive)
}

// After returns the first occurrence of r after dt, from a fresh Iterator.
func (r *Rule) After(dt time.Time, inclusive bool) (time.Time, bool) {
	return r.Iterator().After(dt, inclusive)
}
