package ephem

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// HelioVector returns the body's heliocentric position in J2000 equatorial
// AU, uncorrected for light travel time or aberration. Pluto is only valid
// within its Chebyshev model's span (roughly the years 1700..2200).
func HelioVector(body Body, t astrotime.Time) (astro.Vector, error) {
	switch {
	case body == Pluto:
		return calcChebyshev(plutoTable, t)
	case body >= Mercury && int(body) < len(vsopTable):
		return calcVsop(vsopTable[body], t), nil
	case body == Sun:
		return astro.Vector{T: t}, nil
	case body == Moon:
		e := calcEarth(t)
		return e.Add(GeoMoon(t)), nil
	}
	return astro.Vector{}, ErrInvalidBody
}

// GeoVector returns the body's geocentric position in J2000 equatorial AU.
// The position is always corrected for light travel time: a fixed-point
// iteration backdates the body until the light arrival time converges to
// within 1e-9 days. When aberration is requested, the Earth's own position
// is backdated by the same amount, a first-order approximation that holds
// for solar-system distances. The iteration is capped at 10 steps; reaching
// the cap is a hard failure, not a degraded result.
func GeoVector(body Body, t astrotime.Time, aberration bool) (astro.Vector, error) {
	switch body {
	case Moon:
		return GeoMoon(t), nil
	case Earth:
		return astro.Vector{T: t}, nil
	}

	var earth astro.Vector
	if !aberration {
		// Without aberration the Earth is only needed at the observation time.
		earth = calcEarth(t)
	}

	ltime := t
	for iter := 0; iter < 10; iter++ {
		h, err := HelioVector(body, ltime)
		if err != nil {
			return astro.Vector{}, err
		}
		if aberration {
			earth = calcEarth(ltime)
		}

		geo := astro.Vector{X: h.X - earth.X, Y: h.Y - earth.Y, Z: h.Z - earth.Z, T: t}
		if body == Sun {
			// The Sun's heliocentric position is the origin; nothing to iterate.
			return geo, nil
		}

		ltime2 := t.AddDays(-geo.Length() / SpeedOfLightAUPerDay)
		if abs(ltime2.TT()-ltime.TT()) < 1.0e-9 {
			return geo, nil
		}
		ltime = ltime2
	}
	return astro.Vector{}, &NoConvergeError{Op: "light-travel time solver"}
}

// Equator returns topocentric equatorial coordinates of a body for a surface
// observer, corrected for light travel time, parallax and (optionally)
// aberration. With ofdate true the result is referred to the true equator
// and equinox of date; otherwise it stays in the J2000 frame. The Earth is
// not a valid body.
func Equator(body Body, t astrotime.Time, obs astro.Observer, ofdate, aberration bool) (astro.Equatorial, error) {
	if body == Earth {
		return astro.Equatorial{}, ErrEarthNotAllowed
	}
	gcObserver := astro.GeoPos(t, obs)
	gc, err := GeoVector(body, t, aberration)
	if err != nil {
		return astro.Equatorial{}, err
	}
	j2000 := gc.Sub(gcObserver)
	if !ofdate {
		return astro.ToEquatorial(j2000)
	}
	temp := astro.Precession(0, j2000, t.TT())
	datevect := astro.Nutation(t, astro.Forward, temp)
	return astro.ToEquatorial(datevect)
}
