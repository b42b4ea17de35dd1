package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// calcVsop evaluates a truncated VSOP87 model at the given instant and
// returns the planet's heliocentric position in J2000 equatorial AU.
func calcVsop(model vsopModel, t astrotime.Time) astro.Vector {
	tm := t.TT() / 365250.0 // millennia since J2000

	var spher [3]float64
	for i, formula := range model {
		tpower := 1.0
		coord := 0.0
		for _, series := range formula {
			sum := 0.0
			for _, term := range series {
				sum += term.a * math.Cos(term.b+term.c*tm)
			}
			coord += tpower * sum
			tpower *= tm
		}
		spher[i] = coord
	}

	// Spherical (lon, lat, r) to ecliptic Cartesian.
	rCoslat := spher[2] * math.Cos(spher[1])
	ex := rCoslat * math.Cos(spher[0])
	ey := rCoslat * math.Sin(spher[0])
	ez := spher[2] * math.Sin(spher[1])

	// Ecliptic Cartesian to J2000 equatorial Cartesian (fixed VSOP rotation).
	return astro.Vector{
		X: ex + 0.000000440360*ey - 0.000000190919*ez,
		Y: -0.000000479966*ex + 0.917482137087*ey - 0.397776982902*ez,
		Z: 0.397776982902*ey + 0.917482137087*ez,
		T: t,
	}
}

// calcEarth returns the Earth's heliocentric position in J2000 equatorial AU.
func calcEarth(t astrotime.Time) astro.Vector {
	return calcVsop(vsopTable[Earth], t)
}
