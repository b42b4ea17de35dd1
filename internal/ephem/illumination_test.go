package ephem

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func TestIlluminationSun(t *testing.T) {
	info, err := Illumination(Sun, astrotime.Make(2002, 7, 7, 0, 0, 0))
	if err != nil {
		t.Fatalf("Illumination(Sun): %v", err)
	}
	if math.Abs(info.Mag-(-26.7)) > 0.3 {
		t.Errorf("Sun magnitude = %v, want ~-26.7", info.Mag)
	}
	if info.PhaseAngle != 0 {
		t.Errorf("Sun phase angle = %v, want 0", info.PhaseAngle)
	}
	if info.RingTilt != 0 {
		t.Errorf("Sun ring tilt = %v, want 0", info.RingTilt)
	}
}

func TestIlluminationVenus(t *testing.T) {
	info, err := Illumination(Venus, astrotime.Make(2000, 1, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("Illumination(Venus): %v", err)
	}
	// Venus always shines brighter than magnitude -3.5.
	if info.Mag > -3.5 || info.Mag < -5.0 {
		t.Errorf("Venus magnitude = %v, want in [-5, -3.5]", info.Mag)
	}
	if info.PhaseFraction < 0 || info.PhaseFraction > 1 {
		t.Errorf("phase fraction = %v outside [0, 1]", info.PhaseFraction)
	}
}

func TestIlluminationMoonFullVsNew(t *testing.T) {
	// Full moon 2000-01-21; new moon 2000-01-06.
	full, err := Illumination(Moon, astrotime.Make(2000, 1, 21, 4, 40, 0))
	if err != nil {
		t.Fatalf("Illumination(full Moon): %v", err)
	}
	nw, err := Illumination(Moon, astrotime.Make(2000, 1, 6, 18, 14, 0))
	if err != nil {
		t.Fatalf("Illumination(new Moon): %v", err)
	}
	if full.PhaseFraction < 0.98 {
		t.Errorf("full moon phase fraction = %v, want ~1", full.PhaseFraction)
	}
	if nw.PhaseFraction > 0.02 {
		t.Errorf("new moon phase fraction = %v, want ~0", nw.PhaseFraction)
	}
	if full.Mag > -11.5 {
		t.Errorf("full moon magnitude = %v, want brighter than -11.5", full.Mag)
	}
}

func TestIlluminationSaturnRingTilt(t *testing.T) {
	info, err := Illumination(Saturn, astrotime.Make(2005, 1, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("Illumination(Saturn): %v", err)
	}
	if info.RingTilt == 0 || math.Abs(info.RingTilt) > 28.1 {
		t.Errorf("Saturn ring tilt = %v, want nonzero within +/-28.1", info.RingTilt)
	}
	if info.Mag > 2 || info.Mag < -1 {
		t.Errorf("Saturn magnitude = %v, want in [-1, 2]", info.Mag)
	}
}

func TestIlluminationRejectsEarth(t *testing.T) {
	if _, err := Illumination(Earth, astrotime.FromDays(0)); !errors.Is(err, ErrEarthNotAllowed) {
		t.Errorf("Illumination(Earth) error = %v, want ErrEarthNotAllowed", err)
	}
}
