// Package astrotime implements the two time scales needed for positional
// astronomy: Universal Time (UT), which follows the Earth's actual rotation,
// and Terrestrial Time (TT), a uniform scale used for orbital mechanics.
// The two are reconciled through an empirical delta-T table.
//
// It also computes the orientation of the Earth's axis (nutation, obliquity)
// and apparent sidereal time, which depend on both scales.
package astrotime

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// j2000Day is the Julian day number of the J2000 epoch, noon UTC on
// 1 January 2000, the zero point of both day counts used throughout this
// module.
const j2000Day = 2451545

// dayNumber returns the Julian day number of a proleptic Gregorian calendar
// date: the count of days, starting at noon UTC, since the Julian epoch.
// Calendar conversions go through day numbers rather than time.Duration
// arithmetic, which saturates a few hundred years from J2000.
func dayNumber(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	d := int64(day)
	a := (m - 14) / 12
	return (1461*(y+4800+a))/4 +
		(367*(m-2-12*a))/12 -
		(3*((y+4900+a)/100))/4 +
		d - 32075
}

// calendarDate converts a Julian day number back to its proleptic Gregorian
// calendar date.
func calendarDate(jdn int64) (year, month, day int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461 * i) / 4
	l += 31
	j := (80 * l) / 2447
	day = int(l - (2447*j)/80)
	l = j / 11
	month = int(j + 2 - 12*l)
	year = int(100*(n-49) + i + l)
	return year, month, day
}

// Time is an instant expressed on both time scales. The zero value is the
// J2000 epoch. Construct values with FromDays, Make, FromTime or Now;
// a hand-built Time{} is valid but has an empty tilt cache.
type Time struct {
	ut float64
	tt float64

	// tilt memoizes the expensive Earth-tilt computation. All copies of a
	// Time share the same cell, so the series is summed at most once per
	// constructed instant, even across goroutines.
	tilt *tiltCache
}

type tiltCache struct {
	once sync.Once
	tilt Tilt
}

// FromDays creates a Time from a count of UT days since the J2000 epoch.
func FromDays(ut float64) Time {
	return Time{
		ut:   ut,
		tt:   terrestrialTime(ut),
		tilt: &tiltCache{},
	}
}

// Make creates a Time from a UTC calendar date and real-valued second.
func Make(year, month, day, hour, minute int, second float64) Time {
	whole := math.Floor(second)
	nanos := int(math.Round((second - whole) * 1e9))
	d := time.Date(year, time.Month(month), day, hour, minute, int(whole), nanos, time.UTC)
	return FromTime(d)
}

// FromTime converts a standard library time.Time to a Time.
func FromTime(t time.Time) Time {
	u := t.UTC()
	y, m, d := u.Date()
	days := float64(dayNumber(y, int(m), d) - j2000Day)
	clock := (float64(u.Hour())-12.0)/24.0 +
		float64(u.Minute())/1440.0 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/86400.0
	return FromDays(days + clock)
}

// Now returns the current instant according to the system clock.
func Now() Time {
	return FromTime(time.Now())
}

// UT returns days of Universal Time since the J2000 epoch. Use this scale
// for anything tied to the Earth's rotation: sidereal time, hour angles,
// rise and set times.
func (t Time) UT() float64 { return t.ut }

// TT returns days of Terrestrial Time since the J2000 epoch. Use this scale
// for orbital mechanics, where days are uniform SI-second days.
func (t Time) TT() float64 { return t.tt }

// AddDays returns a new Time offset by the given number of UT days.
// The TT value of the result is recomputed through the delta-T model.
func (t Time) AddDays(days float64) Time {
	return FromDays(t.ut + days)
}

// Utc converts the instant back to a standard library time.Time in UTC.
func (t Time) Utc() time.Time {
	// Split into a whole calendar day and the time since its midnight. Day
	// numbers label days starting at noon, so shift by half a day first.
	x := t.ut + 0.5
	day := math.Floor(x)
	nanos := math.Round((x - day) * 86400e9)
	y, m, d := calendarDate(j2000Day + int64(day))
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Add(time.Duration(nanos))
}

// String formats the instant as UTC with millisecond precision.
func (t Time) String() string {
	n := t.Utc().Round(time.Millisecond)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		n.Year(), int(n.Month()), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond()/1e6)
}

// Tilt returns the Earth orientation snapshot for this instant, computing it
// on first use and caching it for the lifetime of the Time value.
func (t Time) Tilt() Tilt {
	if t.tilt == nil {
		// Hand-built zero value; compute without caching.
		return computeTilt(t.tt)
	}
	t.tilt.once.Do(func() {
		t.tilt.tilt = computeTilt(t.tt)
	})
	return t.tilt.tilt
}
