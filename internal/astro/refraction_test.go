package astro

import (
	"math"
	"testing"
)

func TestRefractionAngleHorizon(t *testing.T) {
	// At the horizon the atmosphere lifts a body by roughly half a degree.
	r := RefractionAngle(NormalRefraction, 0)
	if r < 0.4 || r > 0.6 {
		t.Errorf("refraction at altitude 0 = %v, want ~0.48", r)
	}

	// Refraction shrinks with altitude.
	prev := r
	for _, alt := range []float64{5, 15, 45, 85} {
		cur := RefractionAngle(NormalRefraction, alt)
		if cur <= 0 || cur >= prev {
			t.Errorf("refraction at %v = %v, want positive and below %v", alt, cur, prev)
		}
		prev = cur
	}
}

func TestRefractionAngleOutOfRange(t *testing.T) {
	if got := RefractionAngle(NormalRefraction, -90.001); got != 0 {
		t.Errorf("refraction below -90 = %v, want 0", got)
	}
	if got := RefractionAngle(NormalRefraction, 90.001); got != 0 {
		t.Errorf("refraction above +90 = %v, want 0", got)
	}
	if got := RefractionAngle(NoRefraction, 0); got != 0 {
		t.Errorf("airless refraction = %v, want 0", got)
	}
}

func TestRefractionTaperBelowHorizon(t *testing.T) {
	// Normal refraction tapers off below -1 degree instead of blowing up;
	// the JPL Horizons variant keeps the raw formula value.
	normal := RefractionAngle(NormalRefraction, -30)
	jpl := RefractionAngle(JplHorizonsRefraction, -30)
	if normal >= jpl {
		t.Errorf("tapered refraction %v not below raw %v", normal, jpl)
	}
	if got := RefractionAngle(NormalRefraction, -90); got != 0 {
		t.Errorf("tapered refraction at -90 = %v, want 0", got)
	}
}

func TestInverseRefractionRoundTrip(t *testing.T) {
	for alt := -1.0; alt <= 90.0; alt += 0.5 {
		bent := alt + RefractionAngle(NormalRefraction, alt)
		inv := InverseRefractionAngle(NormalRefraction, bent)
		back := bent + inv
		if math.Abs(back-alt) > 1e-9 {
			t.Errorf("inverse refraction at %v came back as %v", alt, back)
		}
	}
}
