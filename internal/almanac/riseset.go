package almanac

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// refractionNearHorizon is the typical atmospheric lift of a body sitting on
// the horizon, in degrees.
const refractionNearHorizon = 34.0 / 60.0

// Direction selects whether a rise or a set event is sought.
type Direction int

const (
	Rise Direction = +1
	Set  Direction = -1
)

func (d Direction) String() string {
	if d == Rise {
		return "rise"
	}
	return "set"
}

// peakAltitude returns the altitude of the body's upper limb relative to the
// refracted horizon, signed so that the sought event is an ascending zero
// crossing for both rise and set searches.
func peakAltitude(body ephem.Body, direction Direction, observer astro.Observer, bodyRadiusAU float64, t astrotime.Time) (float64, error) {
	ofdate, err := ephem.Equator(body, t, observer, true, true)
	if err != nil {
		return 0, err
	}

	// Compute the airless altitude and add the fixed horizon refraction,
	// rather than refracting at every sample.
	hor := astro.Horizon(t, observer, ofdate.RA, ofdate.Dec, astro.NoRefraction)
	alt := hor.Altitude + (180.0/math.Pi)*(bodyRadiusAU/ofdate.Dist)
	return float64(direction) * (alt + refractionNearHorizon), nil
}

// SearchRiseSet finds the next time the body rises or sets for the observer,
// within limitDays after startTime. Rise is the moment the body's upper limb
// first appears above the horizon, corrected for typical refraction; set is
// when it vanishes below. Near the poles a body can stay above or below the
// horizon for months, so the result is (nil, nil) when no event occurs in
// the window.
func SearchRiseSet(body ephem.Body, observer astro.Observer, direction Direction, startTime astrotime.Time, limitDays float64) (*astrotime.Time, error) {
	var bodyRadius float64
	switch body {
	case ephem.Earth:
		return nil, ephem.ErrEarthNotAllowed
	case ephem.Sun:
		bodyRadius = ephem.SunRadiusAU
	case ephem.Moon:
		bodyRadius = ephem.MoonRadiusAU
	}

	// The altitude function crosses zero going upward somewhere between the
	// body's lowest point and its culmination (for rises; the hour angles
	// swap for sets). Bracket with consecutive hour angle events.
	var haBefore, haAfter float64
	switch direction {
	case Rise:
		haBefore = 12.0 // bottom happens before the body rises
		haAfter = 0.0   // culmination happens after
	case Set:
		haBefore = 0.0 // culmination happens before the body sets
		haAfter = 12.0 // bottom happens after
	default:
		return nil, ErrInternal
	}

	f := func(t astrotime.Time) (float64, error) {
		return peakAltitude(body, direction, observer, bodyRadius, t)
	}

	timeStart := startTime
	timeBefore := timeStart
	altBefore, err := f(timeStart)
	if err != nil {
		return nil, err
	}
	if altBefore > 0.0 {
		// Already past the sought event; wait for the next "before" event.
		evtBefore, err := SearchHourAngle(body, observer, haBefore, timeStart)
		if err != nil {
			return nil, err
		}
		timeBefore = evtBefore.Time
		if altBefore, err = f(timeBefore); err != nil {
			return nil, err
		}
	}

	evtAfter, err := SearchHourAngle(body, observer, haAfter, timeBefore)
	if err != nil {
		return nil, err
	}
	altAfter, err := f(evtAfter.Time)
	if err != nil {
		return nil, err
	}

	for {
		if altBefore <= 0.0 && altAfter > 0.0 {
			eventTime, err := search.Search(f, timeBefore, evtAfter.Time, 1.0)
			if err != nil {
				return nil, err
			}
			if eventTime != nil {
				return eventTime, nil
			}
		}

		// No event in this bracket; roll forward to the next one.
		evtBefore, err := SearchHourAngle(body, observer, haBefore, evtAfter.Time)
		if err != nil {
			return nil, err
		}
		evtAfter, err = SearchHourAngle(body, observer, haAfter, evtBefore.Time)
		if err != nil {
			return nil, err
		}
		if evtBefore.Time.UT() >= timeStart.UT()+limitDays {
			return nil, nil
		}
		timeBefore = evtBefore.Time
		if altBefore, err = f(evtBefore.Time); err != nil {
			return nil, err
		}
		if altAfter, err = f(evtAfter.Time); err != nil {
			return nil, err
		}
	}
}
