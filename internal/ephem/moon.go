package ephem

import (
	"math"
	"math/cmplx"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// arc is the number of arcseconds per radian.
const arc = 3600.0 * 180.0 / math.Pi

// moonResult is the Moon's geocentric ecliptic position of date.
type moonResult struct {
	geoEclipLon float64 // radians
	geoEclipLat float64 // radians
	distanceAU  float64
}

// calcMoon evaluates the lunar theory of the Improved Lunar Ephemeris
// (E. W. Brown, as adapted by Montenbruck and Pfleger) at the given instant.
// The periodic terms live in moondata.go; the fundamental arguments and the
// complex-exponential machinery that the terms multiply are built here.
func calcMoon(t astrotime.Time) moonResult {
	T := t.TT() / 36525.0
	T2 := T * T

	sine := func(phi float64) float64 { return math.Sin(2 * math.Pi * phi) }
	frac := func(x float64) float64 { return x - math.Floor(x) }

	dlam := 0.0
	ds := 0.0
	gam1c := 0.0
	sinpi := 3422.7000

	// Long-period perturbations of the mean elements.
	s1 := sine(0.19833 + 0.05611*T)
	s2 := sine(0.27869 + 0.04508*T)
	s3 := sine(0.16827 - 0.36903*T)
	s4 := sine(0.34734 - 5.37261*T)
	s5 := sine(0.10498 - 5.37899*T)
	s6 := sine(0.42681 - 0.41855*T)
	s7 := sine(0.14943 - 5.37511*T)
	dl0 := 0.84*s1 + 0.31*s2 + 14.27*s3 + 7.26*s4 + 0.28*s5 + 0.24*s6
	dl := 2.94*s1 + 0.31*s2 + 14.27*s3 + 9.34*s4 + 1.12*s5 + 0.83*s6
	dls := -6.40*s1 - 1.89*s6
	df := 0.21*s1 + 0.31*s2 + 14.27*s3 - 88.70*s4 - 15.30*s5 + 0.24*s6 - 1.86*s7
	dd := dl0 - dls
	dgam := -3332e-9*sine(0.59734-5.37261*T) -
		539e-9*sine(0.35498-5.37899*T) -
		64e-9*sine(0.39943-5.37511*T)

	// Mean arguments: mean longitude L0 and the Delaunay-like angles
	// l (Moon's anomaly), l' (Sun's anomaly), F and D, all in radians.
	l0 := 2*math.Pi*frac(0.60643382+1336.85522467*T-0.00000313*T2) + dl0/arc
	l := 2*math.Pi*frac(0.37489701+1325.55240982*T+0.00002565*T2) + dl/arc
	ls := 2*math.Pi*frac(0.99312619+99.99735956*T-0.00000044*T2) + dls/arc
	f := 2*math.Pi*frac(0.25909118+1342.22782980*T-0.00000892*T2) + df/arc
	d := 2*math.Pi*frac(0.82736186+1236.85308708*T-0.00000397*T2) + dd/arc

	// ex[i][j+6] holds exp(i*j*arg_i) scaled by the eccentricity factor,
	// for argument index i in 1..4 (l, l', F, D) and powers j in -6..6.
	var ex [5][13]complex128
	fill := func(i int, arg float64, max int, fac float64) {
		ex[i][6] = complex(1, 0)
		ex[i][7] = complex(fac*math.Cos(arg), fac*math.Sin(arg))
		for j := 2; j <= max; j++ {
			ex[i][j+6] = ex[i][j+5] * ex[i][7]
		}
		for j := 1; j <= max; j++ {
			ex[i][6-j] = cmplx.Conj(ex[i][j+6])
		}
	}
	fill(1, l, 4, 1.000002208)
	fill(2, ls, 3, 0.997504612-0.002495388*T)
	fill(3, f, 4, 1.000002708+139.978*dgam)
	fill(4, d, 6, 1.0)

	expTerm := func(p, q, r, s int) complex128 {
		return ex[1][p+6] * ex[2][q+6] * ex[3][r+6] * ex[4][s+6]
	}

	for _, term := range moonSolarTerms {
		z := expTerm(term.p, term.q, term.r, term.s)
		dlam += term.cl * imag(z)
		ds += term.cs * imag(z)
		gam1c += term.cg * real(z)
		sinpi += term.cp * real(z)
	}

	n := 0.0
	for _, term := range moonNTerms {
		n += term.coeff * imag(expTerm(term.p, term.q, term.r, term.s))
	}

	// Planetary perturbations of the longitude.
	dlam += 0.82*sine(0.7736-62.5512*T) + 0.31*sine(0.0466-125.1025*T) +
		0.35*sine(0.5785-25.1042*T) + 0.66*sine(0.4591+1335.8075*T) +
		0.64*sine(0.3130-91.5680*T) + 1.14*sine(0.1480+1331.2898*T) +
		0.21*sine(0.5918+1056.5859*T) + 0.44*sine(0.5784+1322.8595*T) +
		0.24*sine(0.2275-5.7374*T) + 0.28*sine(0.2965+2.6929*T) +
		0.33*sine(0.3132+6.3368*T)

	s := f + ds/arc
	latSeconds := (1.000002708+139.978*dgam)*(18518.511+1.189+gam1c)*math.Sin(s) -
		6.24*math.Sin(3*s) + n

	return moonResult{
		geoEclipLon: 2 * math.Pi * frac((l0+dlam/arc)/(2*math.Pi)),
		geoEclipLat: (math.Pi / (180 * 3600)) * latSeconds,
		distanceAU:  arc * (astro.EarthRadiusMeters / 1.4959787069098932e+11) / (0.999953253 * sinpi),
	}
}

// GeoMoon returns the Moon's geocentric position in J2000 equatorial AU.
func GeoMoon(t astrotime.Time) astro.Vector {
	m := calcMoon(t)

	// Geocentric ecliptic spherical to Cartesian coordinates of date.
	distCosLat := m.distanceAU * math.Cos(m.geoEclipLat)
	gepos := astro.Vector{
		X: distCosLat * math.Cos(m.geoEclipLon),
		Y: distCosLat * math.Sin(m.geoEclipLon),
		Z: m.distanceAU * math.Sin(m.geoEclipLat),
		T: t,
	}

	// Ecliptic of date to equatorial of date, then back to J2000.
	mpos := astro.EclToEquOfDate(t, gepos)
	return astro.Precession(t.TT(), mpos, 0)
}

// MoonDistance returns the Moon's geocentric distance in AU.
func MoonDistance(t astrotime.Time) float64 {
	return calcMoon(t).distanceAU
}
