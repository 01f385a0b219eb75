// Package bizcal layers holiday and weekend observance on top of the core
// rrule.Iterator. The core engine stays free of any calendar-of-holidays
// knowledge; this package is strictly additive.
package bizcal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
	cal_us "github.com/rickar/cal/v2/us"
)

// ICalendar defines the expected calendar interface for holiday support.
type ICalendar interface {
	AddHoliday(holiday ...*cal.Holiday)
	IsHoliday(date time.Time) (actual, observed bool, h *cal.Holiday)
}

var (
	calendarRegistry = make(map[string]ICalendar)
	registryMutex    sync.RWMutex
)

// NewCalendar builds a business calendar for the given ISO code. Only "us"
// is wired today; other codes return an error rather than silently
// producing a holiday-free calendar.
func NewCalendar(iso string) (ICalendar, error) {
	iso = CleanISO(iso)
	if iso == "" {
		return nil, fmt.Errorf("bizcal: empty ISO code")
	}

	bc := cal.NewBusinessCalendar()

	switch iso {
	case "us":
		bc.AddHoliday(cal_us.Holidays...)
	default:
		return nil, fmt.Errorf("bizcal: iso code not supported: %s", iso)
	}

	return bc, nil
}

// GetCalendar retrieves a calendar from the process-wide registry.
func GetCalendar(iso string) (ICalendar, error) {
	iso = CleanISO(iso)

	registryMutex.RLock()
	defer registryMutex.RUnlock()

	c, ok := calendarRegistry[iso]
	if !ok {
		return nil, fmt.Errorf("bizcal: calendar not found for ISO code: %s", iso)
	}
	return c, nil
}

// SetCalendar registers a calendar under a normalized ISO code so that
// repeated ObservingIterator construction for the same region reuses it.
func SetCalendar(iso string, c ICalendar) {
	iso = CleanISO(iso)

	registryMutex.Lock()
	defer registryMutex.Unlock()
	calendarRegistry[iso] = c
}

// CleanISO normalizes ISO codes to lowercase and trims whitespace.
func CleanISO(code string) string {
	return strings.TrimSpace(strings.ToLower(code))
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
