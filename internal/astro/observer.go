package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// Observer is a fixed location on or near the surface of the Earth.
type Observer struct {
	Latitude  float64 // degrees north of the equator
	Longitude float64 // degrees east of Greenwich
	Height    float64 // meters above mean sea level
}

// terra computes the Earth-fixed geocentric position of an observer in AU,
// modeling the Earth as an oblate ellipsoid. st is apparent sidereal time in
// hours, which orients the observer's meridian within the frame of date.
func terra(obs Observer, st float64) Vector {
	eradKm := EarthRadiusMeters / 1000.0
	const df = 1.0 - 0.003352819697896 // Earth flattening
	df2 := df * df
	phi := radians(obs.Latitude)
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)
	c := 1.0 / math.Sqrt(cosphi*cosphi+df2*sinphi*sinphi)
	s := df2 * c
	htKm := obs.Height / 1000.0
	ach := eradKm*c + htKm
	ash := eradKm*s + htKm
	stlocl := radians(15.0*st + obs.Longitude)
	sinst, cosst := math.Sin(stlocl), math.Cos(stlocl)
	return Vector{
		X: ach * cosphi * cosst / KmPerAU,
		Y: ach * cosphi * sinst / KmPerAU,
		Z: ash * sinphi / KmPerAU,
	}
}

// GeoPos returns the observer's geocentric position in J2000 equatorial
// coordinates: the Earth-fixed position oriented by apparent sidereal time,
// then carried through the inverse nutation and precession rotations.
// Subtracting it from a geocentric body position yields the topocentric
// position with parallax accounted for.
func GeoPos(t astrotime.Time, obs Observer) Vector {
	gast := astrotime.SiderealTime(t)
	pos := terra(obs, gast)
	pos.T = t
	pos = Nutation(t, Inverse, pos)
	return Precession(t.TT(), pos, 0.0)
}
