package almanac

import (
	"errors"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

func TestSearchMaxElongationVenus(t *testing.T) {
	start := astrotime.Make(2000, 1, 1, 0, 0, 0)
	evt, err := SearchMaxElongation(ephem.Venus, start)
	if err != nil {
		t.Fatalf("SearchMaxElongation: %v", err)
	}
	// Venus's greatest elongation always falls between 45 and 48 degrees.
	if evt.Elongation < 44 || evt.Elongation > 48.5 {
		t.Errorf("Venus max elongation = %v degrees", evt.Elongation)
	}
	if evt.Time.UT() < start.UT() {
		t.Errorf("event %v before search start", evt.Time)
	}
	// The elongation at the event is a local maximum.
	for _, dt := range []float64{-2.0, 2.0} {
		nearby, err := ephem.AngleFromSun(ephem.Venus, evt.Time.AddDays(dt))
		if err != nil {
			t.Fatalf("AngleFromSun: %v", err)
		}
		if nearby > evt.Elongation {
			t.Errorf("elongation %v at %+v days exceeds peak %v", nearby, dt, evt.Elongation)
		}
	}
}

func TestSearchMaxElongationMercury(t *testing.T) {
	start := astrotime.Make(2010, 6, 1, 0, 0, 0)
	evt, err := SearchMaxElongation(ephem.Mercury, start)
	if err != nil {
		t.Fatalf("SearchMaxElongation: %v", err)
	}
	// Mercury's greatest elongation ranges from about 18 to 28 degrees.
	if evt.Elongation < 17 || evt.Elongation > 29 {
		t.Errorf("Mercury max elongation = %v degrees", evt.Elongation)
	}
	if evt.Time.UT()-start.UT() > 130 {
		t.Errorf("event %v more than one synodic period after start", evt.Time)
	}
	if evt.Visibility != ephem.Morning && evt.Visibility != ephem.Evening {
		t.Errorf("visibility = %v", evt.Visibility)
	}
}

func TestSearchMaxElongationRejectsOthers(t *testing.T) {
	start := astrotime.FromDays(0)
	for _, body := range []ephem.Body{ephem.Mars, ephem.Moon, ephem.Sun, ephem.Earth} {
		if _, err := SearchMaxElongation(body, start); !errors.Is(err, ephem.ErrInvalidBody) {
			t.Errorf("SearchMaxElongation(%v) error = %v, want ErrInvalidBody", body, err)
		}
	}
}
