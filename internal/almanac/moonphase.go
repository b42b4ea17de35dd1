package almanac

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// MoonPhase returns the Moon's phase as an angle in degrees in [0, 360):
// the Moon's geocentric ecliptic longitude relative to the Sun's.
// 0 is new moon, 90 first quarter, 180 full moon, 270 third quarter.
func MoonPhase(t astrotime.Time) (float64, error) {
	return ephem.LongitudeFromSun(ephem.Moon, t)
}

func moonOffset(targetLon float64, t astrotime.Time) (float64, error) {
	angle, err := MoonPhase(t)
	if err != nil {
		return 0, err
	}
	return astro.LongitudeOffset(angle - targetLon), nil
}

// SearchMoonPhase finds the next time the Moon reaches the phase angle
// targetLon, within limitDays after startTime. Returns (nil, nil) when the
// phase cannot occur inside the window.
func SearchMoonPhase(targetLon float64, startTime astrotime.Time, limitDays float64) (*astrotime.Time, error) {
	// Every phase repeats roughly every synodic month, but orbital
	// eccentricity shifts the actual event by up to about 0.8 days from the
	// uniform prediction. Predict the event time and search a +/-0.9 day
	// window around it.
	const uncertainty = 0.9
	ya, err := moonOffset(targetLon, startTime)
	if err != nil {
		return nil, err
	}
	if ya > 0.0 {
		ya -= 360.0 // force searching forward in time
	}
	estDT := -(ephem.MeanSynodicMonth * ya) / 360.0
	dt1 := estDT - uncertainty
	if dt1 > limitDays {
		return nil, nil
	}
	dt2 := math.Min(limitDays, estDT+uncertainty)
	f := func(t astrotime.Time) (float64, error) {
		return moonOffset(targetLon, t)
	}
	return search.Search(f, startTime.AddDays(dt1), startTime.AddDays(dt2), 1.0)
}

// MoonQuarter is one of the four major lunar phases and when it occurs.
// Quarter is 0 for new moon, 1 for first quarter, 2 for full moon and 3 for
// third quarter.
type MoonQuarter struct {
	Quarter int
	Time    astrotime.Time
}

// SearchMoonQuarter finds the first lunar quarter after startTime. Use
// NextMoonQuarter to keep iterating through consecutive quarters.
func SearchMoonQuarter(startTime astrotime.Time) (MoonQuarter, error) {
	angle, err := MoonPhase(startTime)
	if err != nil {
		return MoonQuarter{}, err
	}
	quarter := (1 + int(math.Floor(angle/90.0))) % 4
	t, err := SearchMoonPhase(90.0*float64(quarter), startTime, 10.0)
	if err != nil {
		return MoonQuarter{}, err
	}
	if t == nil {
		// Another lunar quarter always exists within 10 days.
		return MoonQuarter{}, ErrInternal
	}
	return MoonQuarter{Quarter: quarter, Time: *t}, nil
}

// NextMoonQuarter finds the lunar quarter that follows mq. Consecutive
// quarters are between 6.5 and 8.3 days apart, so skipping 6 days ahead
// always lands before the next one.
func NextMoonQuarter(mq MoonQuarter) (MoonQuarter, error) {
	next, err := SearchMoonQuarter(mq.Time.AddDays(6.0))
	if err != nil {
		return MoonQuarter{}, err
	}
	if next.Quarter != (1+mq.Quarter)%4 {
		return MoonQuarter{}, ErrInternal
	}
	return next, nil
}
