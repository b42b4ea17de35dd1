package astrotime

import "math"

const (
	asec360  = 1296000.0                 // arcseconds in a full circle
	asec2rad = 4.848136811095359935899141e-6 // arcseconds to radians
)

// Tilt describes the orientation of the Earth's axis at one instant:
// the nutation offsets, the obliquity of the ecliptic, and the equation of
// the equinoxes term used to convert mean to apparent sidereal time.
type Tilt struct {
	DPsi    float64 // nutation in longitude, arcseconds
	DEps    float64 // nutation in obliquity, arcseconds
	MeanObl float64 // mean obliquity of the ecliptic, degrees
	TrueObl float64 // true obliquity (mean + DEps), degrees
	EqEq    float64 // equation of the equinoxes, sidereal hours * 15
}

// nutation sums the IAU 2000B series and returns nutation in longitude and
// obliquity, both in arcseconds. tt is TT days since J2000.
func nutation(tt float64) (dpsi, deps float64) {
	t := tt / 36525.0

	// Fundamental lunisolar arguments (Delaunay arguments), radians.
	el := math.Mod(485868.249036+t*1717915923.2178, asec360) * asec2rad
	elp := math.Mod(1287104.79305+t*129596581.0481, asec360) * asec2rad
	f := math.Mod(335779.526232+t*1739527262.8478, asec360) * asec2rad
	d := math.Mod(1072260.70369+t*1602961601.2090, asec360) * asec2rad
	om := math.Mod(450160.398036-t*6962890.5431, asec360) * asec2rad

	var dp, de float64
	for _, term := range iau2000bSeries {
		arg := float64(term.nl)*el + float64(term.nlp)*elp +
			float64(term.nf)*f + float64(term.nd)*d + float64(term.nom)*om
		sarg, carg := math.Sin(arg), math.Cos(arg)
		dp += (term.ps+term.pst*t)*sarg + term.pc*carg
		de += (term.ec+term.ect*t)*carg + term.es*sarg
	}

	// Fixed offsets account for the truncated planetary terms.
	dpsi = -0.000135 + dp*1.0e-7
	deps = +0.000388 + de*1.0e-7
	return dpsi, deps
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees for the
// given TT days since J2000.
func meanObliquity(tt float64) float64 {
	t := tt / 36525.0
	asec := ((((-0.0000000434*t-
		0.000000576)*t+
		0.00200340)*t-
		0.0001831)*t-
		46.836769)*t + 84381.406
	return asec / 3600.0
}

func computeTilt(tt float64) Tilt {
	dpsi, deps := nutation(tt)
	mobl := meanObliquity(tt)
	return Tilt{
		DPsi:    dpsi,
		DEps:    deps,
		MeanObl: mobl,
		TrueObl: mobl + deps/3600.0,
		EqEq:    dpsi * math.Cos(mobl*math.Pi/180.0) / 15.0,
	}
}

// earthRotationAngle returns the ERA in degrees, reduced to [0, 360).
// It is a pure function of Universal Time.
func earthRotationAngle(ut float64) float64 {
	thet1 := 0.7790572732640 + 0.00273781191135448*ut
	thet3 := math.Mod(ut, 1.0)
	theta := 360.0 * math.Mod(thet1+thet3, 1.0)
	if theta < 0.0 {
		theta += 360.0
	}
	return theta
}

// SiderealTime returns apparent Greenwich sidereal time in hours [0, 24):
// the Earth rotation angle plus the precession-in-RA polynomial plus the
// equation of the equinoxes.
func SiderealTime(t Time) float64 {
	tc := t.TT() / 36525.0
	eqeq := 15.0 * t.Tilt().EqEq
	theta := earthRotationAngle(t.UT())
	st := eqeq + 0.014506 +
		((((-0.0000000368*tc-
			0.000029956)*tc-
			0.00000044)*tc+
			1.3915817)*tc+
			4612.156534)*tc
	gst := math.Mod(st/3600.0+theta, 360.0) / 15.0
	if gst < 0.0 {
		gst += 24.0
	}
	return gst
}
