package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// Horizontal holds the apparent position of a body relative to an observer's
// horizon, together with the equatorial coordinates it was derived from.
// Azimuth is measured clockwise from north; altitude is degrees above the
// horizon. When refraction is applied, RA and Dec are re-projected along the
// vertical circle; azimuth is never refracted.
type Horizontal struct {
	Azimuth  float64
	Altitude float64
	RA       float64
	Dec      float64
}

// Horizon converts true-equator-of-date coordinates (ra in sidereal hours,
// dec in degrees) to horizontal coordinates for the given observer, applying
// the selected refraction correction to the altitude.
func Horizon(t astrotime.Time, obs Observer, ra, dec float64, refraction RefractionKind) Horizontal {
	latrad := radians(obs.Latitude)
	lonrad := radians(obs.Longitude)
	decrad := radians(dec)
	rarad := radians(ra * 15.0)

	sinlat, coslat := math.Sin(latrad), math.Cos(latrad)
	sinlon, coslon := math.Sin(lonrad), math.Cos(lonrad)
	sindc, cosdc := math.Sin(decrad), math.Cos(decrad)
	sinra, cosra := math.Sin(rarad), math.Cos(rarad)

	// Observer's local zenith, north and west directions in the Earth-fixed
	// frame, spun into the frame of date by apparent sidereal time.
	uze := Vector{X: coslat * coslon, Y: coslat * sinlon, Z: sinlat}
	une := Vector{X: -sinlat * coslon, Y: -sinlat * sinlon, Z: coslat}
	uwe := Vector{X: sinlon, Y: -coslon, Z: 0.0}

	angle := -15.0 * astrotime.SiderealTime(t)
	uz := Spin(angle, uze)
	un := Spin(angle, une)
	uw := Spin(angle, uwe)

	p := Vector{X: cosdc * cosra, Y: cosdc * sinra, Z: sindc}

	pz := p.X*uz.X + p.Y*uz.Y + p.Z*uz.Z
	pn := p.X*un.X + p.Y*un.Y + p.Z*un.Z
	pw := p.X*uw.X + p.Y*uw.Y + p.Z*uw.Z

	proj := math.Sqrt(pn*pn + pw*pw)
	az := 0.0
	if proj > 0.0 {
		az = -degrees(math.Atan2(pw, pn))
		if az < 0 {
			az += 360
		}
		if az >= 360 {
			az -= 360
		}
	}
	zd := degrees(math.Atan2(proj, pz))
	horRA, horDec := ra, dec

	if refraction != NoRefraction {
		zd0 := zd
		refr := RefractionAngle(refraction, 90.0-zd)
		zd -= refr
		if refr > 0.0 && zd > 3.0e-4 {
			// Shift the unit vector along the vertical circle and read the
			// refracted RA/Dec back out of it.
			zdrad := radians(zd)
			sinzd, coszd := math.Sin(zdrad), math.Cos(zdrad)
			zd0rad := radians(zd0)
			sinzd0, coszd0 := math.Sin(zd0rad), math.Cos(zd0rad)

			prX := ((p.X-coszd0*uz.X)/sinzd0)*sinzd + uz.X*coszd
			prY := ((p.Y-coszd0*uz.Y)/sinzd0)*sinzd + uz.Y*coszd
			prZ := ((p.Z-coszd0*uz.Z)/sinzd0)*sinzd + uz.Z*coszd
			proj = math.Sqrt(prX*prX + prY*prY)
			if proj > 0 {
				horRA = degrees(math.Atan2(prY, prX)) / 15
				if horRA < 0 {
					horRA += 24
				}
				if horRA >= 24 {
					horRA -= 24
				}
			} else {
				horRA = 0
			}
			horDec = degrees(math.Atan2(prZ, proj))
		}
	}

	return Horizontal{Azimuth: az, Altitude: 90.0 - zd, RA: horRA, Dec: horDec}
}
