package astro

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// RotationMatrix is a 3x3 orthonormal rotation. Builders in this package
// return a matrix valid in one direction only; compose with Rotate and use
// the matching builder (or the Direction parameter) for the inverse.
type RotationMatrix struct {
	Rot [3][3]float64
}

// Rotate applies the rotation to a vector, preserving its time tag.
func (r RotationMatrix) Rotate(v Vector) Vector {
	return Vector{
		X: r.Rot[0][0]*v.X + r.Rot[1][0]*v.Y + r.Rot[2][0]*v.Z,
		Y: r.Rot[0][1]*v.X + r.Rot[1][1]*v.Y + r.Rot[2][1]*v.Z,
		Z: r.Rot[0][2]*v.X + r.Rot[1][2]*v.Y + r.Rot[2][2]*v.Z,
		T: v.T,
	}
}

// Direction selects which way a frame rotation is applied.
type Direction int

const (
	// Forward rotates from the mean frame into the true frame of date.
	Forward Direction = iota
	// Inverse rotates from the true frame of date back to the mean frame.
	Inverse
)

// PrecessionRot builds the rotation between the J2000 mean equator and the
// mean equator of another epoch. Exactly one of tt1, tt2 must be zero
// (the J2000 epoch); passing two non-zero epochs is a programming error and
// panics. With tt1 == 0 the matrix rotates J2000 -> date; with tt2 == 0 it
// rotates date -> J2000.
func PrecessionRot(tt1, tt2 float64) RotationMatrix {
	const eps0Asec = 84381.406
	if tt1 != 0 && tt2 != 0 {
		panic("astro: PrecessionRot requires one of (tt1, tt2) to be the J2000 epoch")
	}
	t := (tt2 - tt1) / 36525.0
	if tt2 == 0 {
		t = -t
	}

	psia := ((((-0.0000000951*t+
		0.000132851)*t-
		0.00114045)*t-
		1.0790069)*t +
		5038.481507) * t

	omegaa := ((((+0.0000003337*t-
		0.000000467)*t-
		0.00772503)*t+
		0.0512623)*t-
		0.025754)*t + eps0Asec

	chia := ((((-0.0000000560*t+
		0.000170663)*t-
		0.00121197)*t-
		2.3814292)*t +
		10.556403) * t

	eps0 := eps0Asec * asec2rad
	psia *= asec2rad
	omegaa *= asec2rad
	chia *= asec2rad

	sa, ca := math.Sin(eps0), math.Cos(eps0)
	sb, cb := math.Sin(-psia), math.Cos(-psia)
	sc, cc := math.Sin(-omegaa), math.Cos(-omegaa)
	sd, cd := math.Sin(chia), math.Cos(chia)

	xx := cd*cb - sb*sd*cc
	yx := cd*sb*ca + sd*cc*cb*ca - sa*sd*sc
	zx := cd*sb*sa + sd*cc*cb*sa + ca*sd*sc
	xy := -sd*cb - sb*cd*cc
	yy := -sd*sb*ca + cd*cc*cb*ca - sa*cd*sc
	zy := -sd*sb*sa + cd*cc*cb*sa + ca*cd*sc
	xz := sb * sc
	yz := -sc*cb*ca - sa*cc
	zz := -sc*cb*sa + cc*ca

	if tt2 == 0.0 {
		// Rotation from the other epoch to J2000.
		return RotationMatrix{Rot: [3][3]float64{
			{xx, yx, zx},
			{xy, yy, zy},
			{xz, yz, zz},
		}}
	}
	// Rotation from J2000 to the other epoch.
	return RotationMatrix{Rot: [3][3]float64{
		{xx, xy, xz},
		{yx, yy, yz},
		{zx, zy, zz},
	}}
}

// Precession rotates a position between the J2000 mean equator and the mean
// equator of date; see PrecessionRot for the epoch convention.
func Precession(tt1 float64, pos Vector, tt2 float64) Vector {
	return PrecessionRot(tt1, tt2).Rotate(pos)
}

// NutationRot builds the rotation between the mean and true equator of date
// from the instant's cached tilt snapshot.
func NutationRot(t astrotime.Time, dir Direction) RotationMatrix {
	tilt := t.Tilt()
	oblm := radians(tilt.MeanObl)
	oblt := radians(tilt.TrueObl)
	psi := tilt.DPsi * asec2rad

	cobm, sobm := math.Cos(oblm), math.Sin(oblm)
	cobt, sobt := math.Cos(oblt), math.Sin(oblt)
	cpsi, spsi := math.Cos(psi), math.Sin(psi)

	xx := cpsi
	yx := -spsi * cobm
	zx := -spsi * sobm
	xy := spsi * cobt
	yy := cpsi*cobm*cobt + sobm*sobt
	zy := cpsi*sobm*cobt - cobm*sobt
	xz := spsi * sobt
	yz := cpsi*cobm*sobt - sobm*cobt
	zz := cpsi*sobm*sobt + cobm*cobt

	if dir == Forward {
		return RotationMatrix{Rot: [3][3]float64{
			{xx, xy, xz},
			{yx, yy, yz},
			{zx, zy, zz},
		}}
	}
	return RotationMatrix{Rot: [3][3]float64{
		{xx, yx, zx},
		{xy, yy, zy},
		{xz, yz, zz},
	}}
}

// Nutation rotates a position between the mean and true equator of date.
func Nutation(t astrotime.Time, dir Direction, pos Vector) Vector {
	return NutationRot(t, dir).Rotate(pos)
}

// Spin rotates a vector by the given angle in degrees about the z-axis,
// in the direction that carries +x toward +y for negative angles. It is used
// with sidereal time to move between inertial and Earth-fixed frames.
func Spin(angleDeg float64, pos Vector) Vector {
	angr := radians(angleDeg)
	c, s := math.Cos(angr), math.Sin(angr)
	return Vector{
		X: +c*pos.X + s*pos.Y,
		Y: -s*pos.X + c*pos.Y,
		Z: pos.Z,
		T: pos.T,
	}
}

const asec2rad = 4.848136811095359935899141e-6
