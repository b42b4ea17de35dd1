package almanac

import (
	"errors"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

func TestSearchPeakMagnitudeVenus(t *testing.T) {
	start := astrotime.Make(2000, 1, 1, 0, 0, 0)
	info, err := SearchPeakMagnitude(ephem.Venus, start)
	if err != nil {
		t.Fatalf("SearchPeakMagnitude: %v", err)
	}
	// At greatest brilliancy Venus reaches about magnitude -4.6.
	if info.Mag > -4.2 || info.Mag < -5.0 {
		t.Errorf("Venus peak magnitude = %v, want near -4.6", info.Mag)
	}
	if info.Time.UT() <= start.UT() {
		t.Errorf("peak %v not after search start %v", info.Time, start)
	}
	// The peak is a local minimum in magnitude numbers.
	for _, dt := range []float64{-5.0, 5.0} {
		nearby, err := ephem.Illumination(ephem.Venus, info.Time.AddDays(dt))
		if err != nil {
			t.Fatalf("Illumination: %v", err)
		}
		if nearby.Mag < info.Mag {
			t.Errorf("magnitude %v at %+v days brighter than peak %v", nearby.Mag, dt, info.Mag)
		}
	}
}

func TestSearchPeakMagnitudeRejectsOthers(t *testing.T) {
	start := astrotime.FromDays(0)
	for _, body := range []ephem.Body{ephem.Mercury, ephem.Mars, ephem.Moon, ephem.Sun} {
		if _, err := SearchPeakMagnitude(body, start); !errors.Is(err, ephem.ErrInvalidBody) {
			t.Errorf("SearchPeakMagnitude(%v) error = %v, want ErrInvalidBody", body, err)
		}
	}
}
