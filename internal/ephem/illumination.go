package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// auPerParsec converts between parsecs and AU.
const auPerParsec = (180.0 * 60.0 * 60.0) / math.Pi

// IlluminationInfo reports how bright a body appears from the Earth and the
// geometry behind it. Mag is apparent visual magnitude (smaller is brighter).
// PhaseAngle is the Sun-body-Earth angle in degrees; PhaseFraction the
// illuminated fraction of the apparent disc. RingTilt is nonzero only for
// Saturn, where it gives the tilt of the rings in degrees as seen from the
// Earth.
type IlluminationInfo struct {
	Time          astrotime.Time
	Mag           float64
	PhaseAngle    float64
	PhaseFraction float64
	HelioDist     float64
	GeoDist       float64
	RingTilt      float64
}

func moonMagnitude(phase, helioDist, geoDist float64) float64 {
	rad := phase * (math.Pi / 180.0)
	mag := -12.717 + 1.49*math.Abs(rad) + 0.0431*(rad*rad*rad*rad)
	moonMeanDistanceAU := 385000.6 / astro.KmPerAU
	geoAU := geoDist / moonMeanDistanceAU
	return mag + 5.0*math.Log10(helioDist*geoAU)
}

// saturnMagnitude includes the ring contribution, which dominates Saturn's
// brightness variation. Formulas by Paul Schlyter.
func saturnMagnitude(phase, helioDist, geoDist float64, gc astro.Vector, t astrotime.Time) (mag, ringTilt float64) {
	eclip := astro.EquToEclJ2000(gc)

	ir := 28.06 * (math.Pi / 180.0)                     // tilt of the rings to the ecliptic
	nr := (169.51 + 3.82e-5*t.TT()) * (math.Pi / 180.0) // ascending node of the rings

	lat := eclip.Elat * (math.Pi / 180.0)
	lon := eclip.Elon * (math.Pi / 180.0)
	tilt := math.Asin(math.Sin(lat)*math.Cos(ir) - math.Cos(lat)*math.Sin(ir)*math.Sin(lon-nr))
	sinTilt := math.Sin(math.Abs(tilt))

	mag = -9.0 + 0.044*phase
	mag += sinTilt * (-2.6 + 1.2*sinTilt)
	mag += 5.0 * math.Log10(helioDist*geoDist)
	return mag, tilt * (180.0 / math.Pi)
}

func visualMagnitude(body Body, phase, helioDist, geoDist float64) (float64, error) {
	var c0, c1, c2, c3 float64
	switch body {
	case Mercury:
		c0, c1, c2, c3 = -0.60, +4.98, -4.88, +3.02
	case Venus:
		if phase < 163.6 {
			c0, c1, c2, c3 = -4.47, +1.03, +0.57, +0.13
		} else {
			c0, c1 = +0.98, -1.02
		}
	case Mars:
		c0, c1 = -1.52, +1.60
	case Jupiter:
		c0, c1 = -9.40, +0.50
	case Uranus:
		c0, c1 = -7.19, +0.25
	case Neptune:
		c0 = -6.87
	case Pluto:
		c0, c1 = -1.00, +4.00
	default:
		return 0, ErrInvalidBody
	}
	x := phase / 100.0
	mag := c0 + x*(c1+x*(c2+x*c3))
	return mag + 5.0*math.Log10(helioDist*geoDist), nil
}

// Illumination finds the visual magnitude, phase angle and illuminated
// fraction of the Sun, Moon or a planet other than the Earth. The Sun's phase
// angle is reported as 0; it emits light rather than reflecting it.
func Illumination(body Body, t astrotime.Time) (IlluminationInfo, error) {
	if body == Earth {
		return IlluminationInfo{}, ErrEarthNotAllowed
	}
	earth := calcEarth(t)

	var gc, hc astro.Vector
	var phase float64
	switch body {
	case Sun:
		gc = astro.Vector{X: -earth.X, Y: -earth.Y, Z: -earth.Z, T: t}
		hc = astro.Vector{T: t}
	case Moon:
		// The geocentric moon formula is more precise than differencing
		// two heliocentric vectors.
		gc = GeoMoon(t)
		hc = earth.Add(gc)
	default:
		h, err := HelioVector(body, t)
		if err != nil {
			return IlluminationInfo{}, err
		}
		hc = h
		gc = hc.Sub(earth)
		gc.T = t
	}
	if body != Sun {
		p, err := astro.AngleBetween(gc, hc)
		if err != nil {
			return IlluminationInfo{}, err
		}
		phase = p
	}

	geoDist := gc.Length()
	helioDist := hc.Length()

	var mag, ringTilt float64
	var err error
	switch body {
	case Sun:
		mag = -0.17 + 5.0*math.Log10(geoDist/auPerParsec)
	case Moon:
		mag = moonMagnitude(phase, helioDist, geoDist)
	case Saturn:
		mag, ringTilt = saturnMagnitude(phase, helioDist, geoDist, gc, t)
	default:
		mag, err = visualMagnitude(body, phase, helioDist, geoDist)
		if err != nil {
			return IlluminationInfo{}, err
		}
	}

	return IlluminationInfo{
		Time:          t,
		Mag:           mag,
		PhaseAngle:    phase,
		PhaseFraction: (1.0 + math.Cos(phase*(math.Pi/180.0))) / 2.0,
		HelioDist:     helioDist,
		GeoDist:       geoDist,
		RingTilt:      ringTilt,
	}, nil
}
