package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// SunPosition returns geocentric ecliptic coordinates of the Sun referred to
// the true equinox of date. The light travel time from the Sun is folded in
// by backdating the Earth about 8 minutes; season calculations depend on this
// correction.
func SunPosition(t astrotime.Time) astro.Ecliptic {
	adjusted := t.AddDays(-1.0 / SpeedOfLightAUPerDay)
	earth := calcEarth(adjusted)
	sun2000 := astro.Vector{X: -earth.X, Y: -earth.Y, Z: -earth.Z, T: adjusted}

	// Equatorial J2000 to equatorial of date, then to the ecliptic using the
	// true obliquity at the adjusted time.
	stemp := astro.Precession(0.0, sun2000, adjusted.TT())
	sunOfDate := astro.Nutation(adjusted, astro.Forward, stemp)
	trueObliq := adjusted.Tilt().TrueObl * (math.Pi / 180.0)
	return astro.EquToEcl(sunOfDate, trueObliq)
}

// EclipticLongitude returns the heliocentric ecliptic longitude of a body in
// degrees, measured prograde from the J2000 equinox, in the range [0, 360).
// The Sun has no heliocentric longitude and yields ErrInvalidBody.
func EclipticLongitude(body Body, t astrotime.Time) (float64, error) {
	if body == Sun {
		return 0, ErrInvalidBody
	}
	hv, err := HelioVector(body, t)
	if err != nil {
		return 0, err
	}
	return astro.EquToEclJ2000(hv).Elon, nil
}

// AngleFromSun returns the angle in degrees between the body and the Sun as
// seen from the center of the Earth.
func AngleFromSun(body Body, t astrotime.Time) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	sv, err := GeoVector(Sun, t, true)
	if err != nil {
		return 0, err
	}
	bv, err := GeoVector(body, t, true)
	if err != nil {
		return 0, err
	}
	return astro.AngleBetween(sv, bv)
}

// LongitudeFromSun returns the body's geocentric ecliptic longitude relative
// to the Sun's, in degrees in the range [0, 360). Zero means the body and the
// Sun share an ecliptic longitude; 180 means they appear on opposite sides of
// the sky. Values below 180 place the body in the evening sky, values above
// in the morning sky.
func LongitudeFromSun(body Body, t astrotime.Time) (float64, error) {
	if body == Earth {
		return 0, ErrEarthNotAllowed
	}
	sv, err := GeoVector(Sun, t, true)
	if err != nil {
		return 0, err
	}
	bv, err := GeoVector(body, t, true)
	if err != nil {
		return 0, err
	}
	se := astro.EquToEclJ2000(sv)
	be := astro.EquToEclJ2000(bv)
	return astro.NormalizeLongitude(be.Elon - se.Elon), nil
}

// Visibility indicates whether a body is best seen in the morning before
// sunrise or in the evening after sunset.
type Visibility int

const (
	Morning Visibility = iota
	Evening
)

func (v Visibility) String() string {
	if v == Morning {
		return "morning"
	}
	return "evening"
}

// ElongationEvent describes a body's visibility relative to the Sun at an
// instant: its angular separation from the Sun in degrees (always [0, 180])
// and the absolute ecliptic longitude difference in degrees (also [0, 180]).
type ElongationEvent struct {
	Time               astrotime.Time
	Visibility         Visibility
	Elongation         float64
	EclipticSeparation float64
}

// Elongation reports the body's visibility relative to the Sun at the given
// time.
func Elongation(body Body, t astrotime.Time) (ElongationEvent, error) {
	angle, err := LongitudeFromSun(body, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	var vis Visibility
	var esep float64
	if angle > 180.0 {
		vis = Morning
		esep = 360.0 - angle
	} else {
		vis = Evening
		esep = angle
	}
	angle, err = AngleFromSun(body, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	return ElongationEvent{Time: t, Visibility: vis, Elongation: angle, EclipticSeparation: esep}, nil
}
