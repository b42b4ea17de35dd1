package astro

import "math"

// RefractionKind selects if and how to correct altitudes for atmospheric
// refraction.
type RefractionKind int

const (
	// NoRefraction applies no correction.
	NoRefraction RefractionKind = iota
	// NormalRefraction applies the standard correction, tapered linearly to
	// zero toward the nadir so apparent altitude never drops below -90.
	NormalRefraction
	// JplHorizonsRefraction applies the uncapped variant, kept for
	// cross-validation against the JPL Horizons tool.
	JplHorizonsRefraction
)

// RefractionAngle returns the additive altitude correction in degrees for a
// body observed at the given true altitude. Inputs outside [-90, +90] return
// zero. Based on the Saemundsson formula from Meeus, with the argument
// clamped at -1 degree where the formula misbehaves.
func RefractionAngle(kind RefractionKind, altitude float64) float64 {
	if altitude < -90.0 || altitude > +90.0 {
		return 0.0
	}
	if kind != NormalRefraction && kind != JplHorizonsRefraction {
		return 0.0
	}
	hd := math.Max(altitude, -1.0)
	refr := (1.02 / math.Tan(radians(hd+10.3/(hd+5.11)))) / 60.0
	if kind == NormalRefraction && altitude < -1.0 {
		// Taper toward the nadir: factor 1 at -1 degree, 0 at -90.
		refr *= (altitude + 90.0) / 89.0
	}
	return refr
}

// InverseRefractionAngle recovers the correction that, added to the true
// altitude, produced the given apparent (refracted) altitude. The returned
// value is <= 0. The fixed-point iteration converges monotonically; it runs
// until the residual is below 1e-14 degrees.
func InverseRefractionAngle(kind RefractionKind, bentAltitude float64) float64 {
	if bentAltitude < -90.0 || bentAltitude > +90.0 {
		return 0.0
	}
	altitude := bentAltitude - RefractionAngle(kind, bentAltitude)
	for {
		diff := (altitude + RefractionAngle(kind, altitude)) - bentAltitude
		if math.Abs(diff) < 1.0e-14 {
			return altitude - bentAltitude
		}
		altitude -= diff
	}
}
