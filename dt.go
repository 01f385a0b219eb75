package rrule

import "time"

// DtKind tags the three shapes a DTSTART/UNTIL value can take, per spec
// §3's Dt variant.
type DtKind int

const (
	// KindDate is a date-only value (RFC 5545 VALUE=DATE); the iterator
	// emits occurrences with hour/minute/second all zero.
	KindDate DtKind = iota
	// KindFloating is a local date-time with no attached zone identifier,
	// or one with a zone identifier attached (see Dt.Zone).
	KindFloating
	// KindUTC is a date-time already expressed in UTC (RFC 5545's
	// trailing "Z").
	KindUTC
)

// Dt is a start/until value: a calendar date, a floating local date-time
// (optionally anchored to a named zone), or a UTC date-time. Component
// C4 resolves a Dt to a concrete zoned instant plus a floating/zoned flag
// that the iterator carries through to each emitted occurrence.
type Dt struct {
	Kind                   DtKind
	Year, Month, Day       int
	Hour, Minute, Second   int
	// Zone is only meaningful for KindFloating. If set, the floating
	// wall-clock value is interpreted in this zone (earliest-valid
	// wall-clock rule on DST gaps) and occurrences are emitted zoned. If
	// nil, the value is floating: interpreted as UTC internally but
	// flagged so callers receive bare local date-times.
	Zone *time.Location
}

// NewDate constructs a date-only Dt (VALUE=DATE).
func NewDate(year, month, day int) Dt {
	return Dt{Kind: KindDate, Year: year, Month: month, Day: day}
}

// NewFloatingDateTime constructs a floating local date-time with no zone.
func NewFloatingDateTime(year, month, day, hour, minute, second int) Dt {
	return Dt{Kind: KindFloating, Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

// NewZonedDateTime constructs a local date-time interpreted in the given
// zone (RFC 5545's DTSTART;TZID=...).
func NewZonedDateTime(year, month, day, hour, minute, second int, zone *time.Location) Dt {
	return Dt{Kind: KindFloating, Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second, Zone: zone}
}

// NewUTCDateTime constructs a DateTimeUtc value.
func NewUTCDateTime(year, month, day, hour, minute, second int) Dt {
	return Dt{Kind: KindUTC, Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

// isDateOnly reports whether this Dt was specified as VALUE=DATE.
func (d Dt) isDateOnly() bool {
	return d.Kind == KindDate
}

// isFloating reports whether this Dt denotes a floating local date-time
// (no zone attached and not UTC).
func (d Dt) isFloating() bool {
	return d.Kind == KindFloating && d.Zone == nil
}

// resolve normalizes d to a concrete time.Time anchored in a location, per
// spec §4.4:
//
//   - Date            -> midnight UTC
//   - Floating+Zone   -> wall-clock in that zone, earliest-valid on a DST gap
//   - Floating (bare) -> wall-clock treated as UTC internally
//   - UTC             -> used directly
//
// The returned bool reports whether the resolved instant should be
// emitted as a floating (zone-less) local date-time rather than a zoned
// one.
func (d Dt) resolve() (t time.Time, floating bool) {
	switch d.Kind {
	case KindDate:
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), false
	case KindUTC:
		return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC), false
	case KindFloating:
		if d.Zone != nil {
			// time.Date resolves a wall-clock time that falls in a DST
			// gap to the earliest instant with a consistent offset,
			// matching the "earliest-valid wall-clock" rule.
			return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, d.Zone), false
		}
		return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}
