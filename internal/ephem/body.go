// Package ephem computes heliocentric and geocentric positions of the Sun,
// Moon and planets from built-in series models: truncated VSOP87 for the
// planets, an adaptation of Brown's lunar theory for the Moon, and a
// piecewise Chebyshev fit for Pluto. Geocentric positions are corrected for
// light travel time and, optionally, aberration.
package ephem

import (
	"errors"
	"fmt"
)

// Body identifies a celestial body. The planet values index the VSOP table.
type Body int

const (
	Invalid Body = -1
	Mercury Body = 0
	Venus   Body = 1
	Earth   Body = 2
	Mars    Body = 3
	Jupiter Body = 4
	Saturn  Body = 5
	Uranus  Body = 6
	Neptune Body = 7
	Pluto   Body = 8
	Sun     Body = 9
	Moon    Body = 10
)

var bodyNames = map[Body]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
	Pluto:   "Pluto",
	Sun:     "Sun",
	Moon:    "Moon",
}

// String returns the body's English name.
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return "Invalid"
}

// BodyFromName finds the Body for a common English name, or Invalid.
func BodyFromName(name string) Body {
	for b, n := range bodyNames {
		if n == name {
			return b
		}
	}
	return Invalid
}

// Errors reported by position and search functions. NoConvergeError and
// range failures are fatal to the current call; callers may retry with an
// adjusted time or window.
var (
	ErrInvalidBody     = errors.New("ephem: invalid celestial body")
	ErrEarthNotAllowed = errors.New("ephem: the Earth is not allowed as the body")
	ErrPlutoRange      = errors.New("ephem: time is outside the range of the Pluto model")
)

// NoConvergeError indicates an iterative numeric solver exceeded its step cap.
type NoConvergeError struct {
	Op string
}

func (e *NoConvergeError) Error() string {
	return fmt.Sprintf("ephem: %s did not converge", e.Op)
}

const (
	// MeanSynodicMonth is the average number of days between consecutive
	// identical lunar phases.
	MeanSynodicMonth = 29.530588

	// EarthOrbitalPeriod is the sidereal year in days.
	EarthOrbitalPeriod = 365.256

	// SpeedOfLightAUPerDay is the speed of light expressed in AU per day.
	SpeedOfLightAUPerDay = 173.1446326846693

	// SunRadiusAU and MoonRadiusAU are the body radii used to find rise and
	// set times of the upper limb.
	SunRadiusAU  = 4.6505e-3
	MoonRadiusAU = 1.15717e-5
)

// planetOrbitalPeriod gives each planet's sidereal orbital period in days,
// indexed by Body value.
var planetOrbitalPeriod = []float64{
	87.969,
	224.701,
	EarthOrbitalPeriod,
	686.980,
	4332.589,
	10759.22,
	30685.4,
	60189.0,
	90560.0,
}

// IsSuperiorPlanet reports whether the body orbits farther from the Sun than
// the Earth does.
func IsSuperiorPlanet(body Body) bool {
	switch body {
	case Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return true
	}
	return false
}

// SynodicPeriod returns the average number of days between successive
// identical Earth-relative configurations of the body (conjunctions for
// planets, new moons for the Moon).
func SynodicPeriod(body Body) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	if body == Moon {
		return MeanSynodicMonth, nil
	}
	if body < 0 || int(body) >= len(planetOrbitalPeriod) {
		return 0, ErrInvalidBody
	}
	period := planetOrbitalPeriod[body]
	return abs(EarthOrbitalPeriod / (EarthOrbitalPeriod/period - 1.0)), nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
