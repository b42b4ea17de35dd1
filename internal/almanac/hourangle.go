package almanac

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// solarDaysPerSiderealDay converts an offset in sidereal time to solar days.
const solarDaysPerSiderealDay = 0.9972695717592592

// ErrHourAngleRange reports an hour angle outside [0, 24).
var ErrHourAngleRange = errors.New("almanac: hour angle must be in the range [0, 24)")

// HourAngleEvent is a body crossing a specific hour angle, with its apparent
// horizontal coordinates at that moment.
type HourAngleEvent struct {
	Time astrotime.Time
	Hor  astro.Horizontal
}

// SearchHourAngle finds the next time after startTime that the body reaches
// the given hour angle for the observer. The hour angle is 0 when the body
// culminates and grows by one unit per sidereal hour, so 12 marks the body's
// lowest point in the sky. Near the poles a culminating body may still be
// below the horizon; the caller cannot assume visibility.
func SearchHourAngle(body ephem.Body, observer astro.Observer, hourAngle float64, startTime astrotime.Time) (HourAngleEvent, error) {
	if body == ephem.Earth {
		return HourAngleEvent{}, ephem.ErrEarthNotAllowed
	}
	if hourAngle < 0.0 || hourAngle >= 24.0 {
		return HourAngleEvent{}, ErrHourAngleRange
	}

	t := startTime
	for iter := 1; ; iter++ {
		gast := astrotime.SiderealTime(t)
		ofdate, err := ephem.Equator(body, t, observer, true, true)
		if err != nil {
			return HourAngleEvent{}, err
		}

		// Sidereal hours between the current hour angle and the target.
		deltaSiderealHours := math.Mod(hourAngle+ofdate.RA-observer.Longitude/15-gast, 24.0)
		if iter == 1 {
			// Always search forward on the first pass.
			if deltaSiderealHours < 0.0 {
				deltaSiderealHours += 24.0
			}
		} else {
			// Afterwards take the smallest step in either direction.
			if deltaSiderealHours < -12.0 {
				deltaSiderealHours += 24.0
			} else if deltaSiderealHours > +12.0 {
				deltaSiderealHours -= 24.0
			}
		}

		if math.Abs(deltaSiderealHours)*3600.0 < 0.1 {
			hor := astro.Horizon(t, observer, ofdate.RA, ofdate.Dec, astro.NormalRefraction)
			return HourAngleEvent{Time: t, Hor: hor}, nil
		}

		t = t.AddDays((deltaSiderealHours / 24.0) * solarDaysPerSiderealDay)
	}
}
