package astro

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func vecClose(t *testing.T, got, want Vector, tol float64, label string) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Errorf("%s: got (%v, %v, %v), want (%v, %v, %v)",
			label, got.X, got.Y, got.Z, want.X, want.Y, want.Z)
	}
}

func TestPrecessionRoundTrip(t *testing.T) {
	tm := astrotime.Make(2023, 5, 17, 3, 0, 0)
	v := Vector{X: 0.3, Y: -0.8, Z: 0.52, T: tm}

	fwd := Precession(0, v, tm.TT())
	back := Precession(tm.TT(), fwd, 0)
	vecClose(t, back, v, 1e-12, "precession round trip")
}

func TestPrecessionMovesEquinox(t *testing.T) {
	// Over 50 years the equinox precesses about 0.7 degrees; the rotated
	// x-axis must differ measurably from the input.
	tm := astrotime.Make(2050, 1, 1, 0, 0, 0)
	v := Vector{X: 1, Y: 0, Z: 0, T: tm}
	got := Precession(0, v, tm.TT())
	if math.Abs(got.Y) < 1e-4 {
		t.Errorf("precession over 50 years barely moved the x-axis: %+v", got)
	}
}

func TestPrecessionRequiresJ2000Endpoint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("PrecessionRot with two non-J2000 epochs did not panic")
		}
	}()
	PrecessionRot(100.5, 200.5)
}

func TestNutationRoundTrip(t *testing.T) {
	tm := astrotime.Make(2010, 11, 2, 12, 0, 0)
	v := Vector{X: -0.1, Y: 0.95, Z: 0.27, T: tm}

	fwd := Nutation(tm, Forward, v)
	back := Nutation(tm, Inverse, fwd)
	vecClose(t, back, v, 1e-12, "nutation round trip")

	// Nutation is a small rotation; the vector moves, but barely.
	d := fwd.Sub(v).Length()
	if d == 0 || d > 1e-3 {
		t.Errorf("nutation displacement = %v, want small and nonzero", d)
	}
}

func TestSpin(t *testing.T) {
	v := Vector{X: 1, Y: 0, Z: 0}

	// Spinning by 90 degrees about z maps +x onto -y for this convention.
	got := Spin(90, v)
	vecClose(t, got, Vector{X: 0, Y: -1, Z: 0}, 1e-12, "spin 90")

	// Full turn is the identity.
	vecClose(t, Spin(360, v), v, 1e-12, "spin 360")

	// Opposite spins cancel.
	vecClose(t, Spin(-37.5, Spin(37.5, v)), v, 1e-12, "spin inverse")
}

func TestGeoPosMagnitude(t *testing.T) {
	tm := astrotime.Make(2004, 8, 1, 18, 0, 0)
	obs := Observer{Latitude: 35, Longitude: -110, Height: 1000}
	pos := GeoPos(tm, obs)

	// The observer sits one Earth radius from the geocenter.
	earthRadiusAU := EarthRadiusMeters / (KmPerAU * 1000)
	if r := pos.Length(); math.Abs(r-earthRadiusAU) > earthRadiusAU*0.01 {
		t.Errorf("GeoPos length = %v AU, want ~%v", r, earthRadiusAU)
	}
}

func TestAngleBetween(t *testing.T) {
	a := Vector{X: 1, Y: 0, Z: 0}
	b := Vector{X: 0, Y: 2, Z: 0}
	got, err := AngleBetween(a, b)
	if err != nil {
		t.Fatalf("AngleBetween: %v", err)
	}
	if math.Abs(got-90) > 1e-12 {
		t.Errorf("AngleBetween orthogonal = %v, want 90", got)
	}

	anti := Vector{X: -3, Y: 0, Z: 0}
	got, err = AngleBetween(a, anti)
	if err != nil {
		t.Fatalf("AngleBetween: %v", err)
	}
	if got != 180 {
		t.Errorf("AngleBetween antiparallel = %v, want exactly 180", got)
	}

	if _, err := AngleBetween(a, Vector{}); err == nil {
		t.Errorf("AngleBetween with zero vector did not fail")
	}
}

func TestToEquatorialPoles(t *testing.T) {
	eq, err := ToEquatorial(Vector{X: 0, Y: 0, Z: 2.5})
	if err != nil {
		t.Fatalf("ToEquatorial: %v", err)
	}
	if eq.RA != 0 || eq.Dec != 90 || eq.Dist != 2.5 {
		t.Errorf("north pole vector gave %+v", eq)
	}

	if _, err := ToEquatorial(Vector{}); err == nil {
		t.Errorf("ToEquatorial of zero vector did not fail")
	}
}

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{-10, 350},
		{370, 10},
		{720, 0},
	}
	for _, c := range cases {
		if got := NormalizeLongitude(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLongitudeOffset(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{190, -170},
		{-190, 170},
		{180, 180},
	}
	for _, c := range cases {
		if got := LongitudeOffset(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("LongitudeOffset(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
