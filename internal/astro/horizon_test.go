package astro

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func TestHorizonCelestialPole(t *testing.T) {
	// From the north pole, the north celestial pole stands at the zenith.
	tm := astrotime.Make(2006, 6, 1, 0, 0, 0)
	obs := Observer{Latitude: 90, Longitude: 0, Height: 0}
	hor := Horizon(tm, obs, 0, 90, NoRefraction)
	if math.Abs(hor.Altitude-90) > 0.2 {
		t.Errorf("pole altitude from north pole = %v, want ~90", hor.Altitude)
	}
}

func TestHorizonEquatorPole(t *testing.T) {
	// From the equator, the celestial pole sits on the northern horizon.
	tm := astrotime.Make(2006, 6, 1, 0, 0, 0)
	obs := Observer{Latitude: 0, Longitude: -45, Height: 0}
	hor := Horizon(tm, obs, 6, 90, NoRefraction)
	if math.Abs(hor.Altitude) > 0.2 {
		t.Errorf("pole altitude from equator = %v, want ~0", hor.Altitude)
	}
	if math.Abs(hor.Azimuth-0) > 1.0 && math.Abs(hor.Azimuth-360) > 1.0 {
		t.Errorf("pole azimuth from equator = %v, want ~0 (north)", hor.Azimuth)
	}
}

func TestHorizonRefractionLiftsAltitude(t *testing.T) {
	tm := astrotime.Make(2010, 1, 1, 3, 0, 0)
	obs := Observer{Latitude: 20, Longitude: 100, Height: 0}

	airless := Horizon(tm, obs, 3, 10, NoRefraction)
	refracted := Horizon(tm, obs, 3, 10, NormalRefraction)

	if refracted.Altitude <= airless.Altitude {
		t.Errorf("refraction did not lift altitude: %v vs %v", refracted.Altitude, airless.Altitude)
	}
	// Azimuth is never refracted.
	if refracted.Azimuth != airless.Azimuth {
		t.Errorf("refraction changed azimuth: %v vs %v", refracted.Azimuth, airless.Azimuth)
	}
}
