package almanac

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

func rlonOffset(body ephem.Body, t astrotime.Time, direction, targetRelLon float64) (float64, error) {
	plon, err := ephem.EclipticLongitude(body, t)
	if err != nil {
		return 0, err
	}
	elon, err := ephem.EclipticLongitude(ephem.Earth, t)
	if err != nil {
		return 0, err
	}
	return astro.LongitudeOffset(direction*(elon-plon) - targetRelLon), nil
}

// SearchRelativeLongitude finds the next time after startTime when the
// heliocentric ecliptic longitudes of the Earth and the given planet differ
// by targetRelLon degrees, measured from the planet to the Earth in the
// prograde direction. A relative longitude of 0 is inferior conjunction for
// Mercury and Venus and opposition for the outer planets; 180 is superior
// conjunction. The body must be a planet other than the Earth.
func SearchRelativeLongitude(body ephem.Body, targetRelLon float64, startTime astrotime.Time) (astrotime.Time, error) {
	if body == ephem.Earth {
		return astrotime.Time{}, ephem.ErrEarthNotAllowed
	}
	if body == ephem.Moon || body == ephem.Sun {
		return astrotime.Time{}, ephem.ErrInvalidBody
	}
	syn, err := ephem.SynodicPeriod(body)
	if err != nil {
		return astrotime.Time{}, err
	}
	direction := -1.0
	if ephem.IsSuperiorPlanet(body) {
		direction = +1.0
	}

	// The error angle is kept negative, meaning we trail the target relative
	// longitude and always step forward in time.
	errorAngle, err := rlonOffset(body, startTime, direction, targetRelLon)
	if err != nil {
		return astrotime.Time{}, err
	}
	if errorAngle > 0.0 {
		errorAngle -= 360.0
	}

	t := startTime
	for iter := 0; iter < 100; iter++ {
		// Estimate how many days ahead the target longitude lies.
		dayAdjust := (-errorAngle / 360.0) * syn
		t = t.AddDays(dayAdjust)
		if math.Abs(dayAdjust)*secondsPerDay < 1.0 {
			return t, nil
		}
		prevAngle := errorAngle
		errorAngle, err = rlonOffset(body, t, direction, targetRelLon)
		if err != nil {
			return astrotime.Time{}, err
		}
		if math.Abs(prevAngle) < 30.0 && prevAngle != errorAngle {
			// Mercury and Mars move at visibly uneven speeds along their
			// eccentric orbits. Rescale the synodic period to match the
			// local speed and converge faster.
			ratio := prevAngle / (prevAngle - errorAngle)
			if ratio > 0.5 && ratio < 2.0 {
				syn *= ratio
			}
		}
	}
	return astrotime.Time{}, &ephem.NoConvergeError{Op: "relative longitude search"}
}
