package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDtResolveDate(t *testing.T) {
	d := NewDate(1997, 9, 2)
	tm, floating := d.resolve()
	assert.False(t, floating)
	assert.Equal(t, time.Date(1997, 9, 2, 0, 0, 0, 0, time.UTC), tm)
	assert.True(t, d.isDateOnly())
}

func TestDtResolveUTC(t *testing.T) {
	d := NewUTCDateTime(1997, 9, 2, 9, 0, 0)
	tm, floating := d.resolve()
	assert.False(t, floating)
	assert.Equal(t, time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC), tm)
}

func TestDtResolveFloating(t *testing.T) {
	d := NewFloatingDateTime(1997, 9, 2, 9, 0, 0)
	tm, floating := d.resolve()
	assert.True(t, floating)
	assert.True(t, d.isFloating())
	assert.Equal(t, 1997, tm.Year())
}

func TestDtResolveZoned(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable:", err)
	}
	d := NewZonedDateTime(2024, 3, 10, 2, 30, 0, loc)
	tm, floating := d.resolve()
	assert.False(t, floating)
	assert.Equal(t, loc, tm.Location())
}
