package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// Ecliptic holds both Cartesian and angular ecliptic coordinates.
// Longitude is degrees prograde from the equinox in [0, 360); latitude is
// degrees north (positive) or south of the ecliptic plane.
type Ecliptic struct {
	Ex, Ey, Ez float64
	Elat, Elon float64
}

// obliquityJ2000 is the mean obliquity of the J2000 ecliptic in radians.
const obliquityJ2000 = 0.40909260059599012

// EclToEquOfDate rotates ecliptic-of-date coordinates into equatorial
// coordinates of date using the mean obliquity at the given instant.
func EclToEquOfDate(t astrotime.Time, ecl Vector) Vector {
	obl := radians(t.Tilt().MeanObl)
	c, s := math.Cos(obl), math.Sin(obl)
	return Vector{
		X: ecl.X,
		Y: ecl.Y*c - ecl.Z*s,
		Z: ecl.Y*s + ecl.Z*c,
		T: ecl.T,
	}
}

// EquToEcl rotates equatorial coordinates into ecliptic coordinates about
// the x-axis by the given obliquity and reports both Cartesian and angular
// forms.
func EquToEcl(pos Vector, obliqRadians float64) Ecliptic {
	c, s := math.Cos(obliqRadians), math.Sin(obliqRadians)
	ex := +pos.X
	ey := +pos.Y*c + pos.Z*s
	ez := -pos.Y*s + pos.Z*c
	xyproj := math.Sqrt(ex*ex + ey*ey)
	elon := 0.0
	if xyproj > 0.0 {
		elon = degrees(math.Atan2(ey, ex))
		if elon < 0.0 {
			elon += 360.0
		}
	}
	elat := degrees(math.Atan2(ez, xyproj))
	return Ecliptic{Ex: ex, Ey: ey, Ez: ez, Elat: elat, Elon: elon}
}

// EquToEclJ2000 converts J2000 equatorial coordinates to J2000 ecliptic
// coordinates.
func EquToEclJ2000(pos Vector) Ecliptic {
	return EquToEcl(pos, obliquityJ2000)
}
