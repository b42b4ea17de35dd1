// Package astro provides the reference-frame machinery for positional
// astronomy: Cartesian vectors tagged with an instant, rotation matrices for
// precession and nutation, topocentric observer positions, atmospheric
// refraction, and horizontal coordinates.
package astro

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// KmPerAU is the number of kilometers in one astronomical unit.
const KmPerAU = 1.4959787069098932e+8

// EarthRadiusMeters is the mean equatorial radius of the Earth.
const EarthRadiusMeters = 6378136.6

// ErrBadVector reports a vector whose magnitude is too small to define a
// direction in space.
var ErrBadVector = errors.New("astro: vector is too small to have a direction")

// Vector is a Cartesian position in AU tagged with the instant it is valid
// at. The orientation of the axes depends on context and must be tracked by
// the caller; vectors in different frames are never compared directly.
type Vector struct {
	X, Y, Z float64
	T       astrotime.Time
}

// Length returns the magnitude of the vector in AU.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the component-wise sum, keeping the receiver's time tag.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.T}
}

// Sub returns the component-wise difference, keeping the receiver's time tag.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.T}
}

// AngleBetween returns the angle in degrees between two vectors.
// Antiparallel vectors yield exactly 180 and parallel vectors exactly 0.
// Returns ErrBadVector when either magnitude is too small to carry direction.
func AngleBetween(a, b Vector) (float64, error) {
	r := a.Length() * b.Length()
	if r < 1.0e-8 {
		return 0, ErrBadVector
	}
	dot := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / r
	switch {
	case dot <= -1.0:
		return 180.0, nil
	case dot >= +1.0:
		return 0.0, nil
	}
	return degrees(math.Acos(dot)), nil
}

// Equatorial holds angular equatorial coordinates: right ascension in
// sidereal hours, declination in degrees and distance in AU.
type Equatorial struct {
	RA   float64
	Dec  float64
	Dist float64
}

// ToEquatorial converts a Cartesian vector to angular equatorial coordinates
// in the same frame. Returns ErrBadVector for a zero-length vector; a vector
// pointing exactly at a celestial pole yields RA 0 and Dec ±90.
func ToEquatorial(pos Vector) (Equatorial, error) {
	xyproj := pos.X*pos.X + pos.Y*pos.Y
	dist := math.Sqrt(xyproj + pos.Z*pos.Z)
	if xyproj == 0.0 {
		if pos.Z == 0.0 {
			return Equatorial{}, ErrBadVector
		}
		if pos.Z < 0.0 {
			return Equatorial{RA: 0, Dec: -90, Dist: dist}, nil
		}
		return Equatorial{RA: 0, Dec: +90, Dist: dist}, nil
	}
	ra := degrees(math.Atan2(pos.Y, pos.X)) / 15.0
	if ra < 0 {
		ra += 24
	}
	dec := degrees(math.Atan2(pos.Z, math.Sqrt(xyproj)))
	return Equatorial{RA: ra, Dec: dec, Dist: dist}, nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
