package almanac

import (
	"errors"
	"testing"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

func TestSearchHourAngleSolarNoon(t *testing.T) {
	// At longitude zero the Sun culminates near 12:00 UTC, offset by the
	// equation of time (under 17 minutes).
	obs := astro.Observer{Latitude: 51.5, Longitude: 0, Height: 0}
	start := astrotime.Make(2000, 1, 1, 0, 0, 0)

	evt, err := SearchHourAngle(ephem.Sun, obs, 0, start)
	if err != nil {
		t.Fatalf("SearchHourAngle: %v", err)
	}
	utc := evt.Time.Utc()
	minutes := float64(utc.Hour())*60 + float64(utc.Minute())
	if minutes < 11*60+40 || minutes > 12*60+20 {
		t.Errorf("solar noon at %v, want near 12:00 UTC", evt.Time)
	}
	// At culmination the Sun stands at its highest, above the horizon
	// even in winter at this latitude.
	if evt.Hor.Altitude < 10 || evt.Hor.Altitude > 20 {
		t.Errorf("noon altitude = %v, want ~15 for London in January", evt.Hor.Altitude)
	}
}

func TestSearchHourAngleAntitransit(t *testing.T) {
	obs := astro.Observer{Latitude: 35, Longitude: -80, Height: 0}
	start := astrotime.Make(2010, 4, 1, 0, 0, 0)

	evt, err := SearchHourAngle(ephem.Sun, obs, 12, start)
	if err != nil {
		t.Fatalf("SearchHourAngle: %v", err)
	}
	if evt.Hor.Altitude > -10 {
		t.Errorf("antitransit altitude = %v, want well below horizon", evt.Hor.Altitude)
	}
	if evt.Time.UT() < start.UT() {
		t.Errorf("event %v before search start %v", evt.Time, start)
	}
}

func TestSearchHourAngleAlwaysForward(t *testing.T) {
	obs := astro.Observer{Latitude: 0, Longitude: 0, Height: 0}
	start := astrotime.Make(2015, 8, 10, 13, 0, 0)

	evt, err := SearchHourAngle(ephem.Moon, obs, 0, start)
	if err != nil {
		t.Fatalf("SearchHourAngle: %v", err)
	}
	fwd := evt.Time.UT() - start.UT()
	if fwd < 0 || fwd > 1.1 {
		t.Errorf("event %v days from start, want within one sidereal day ahead", fwd)
	}
}

func TestSearchHourAngleRejectsBadRange(t *testing.T) {
	obs := astro.Observer{Latitude: 0, Longitude: 0, Height: 0}
	if _, err := SearchHourAngle(ephem.Sun, obs, 24, astrotime.FromDays(0)); !errors.Is(err, ErrHourAngleRange) {
		t.Errorf("hour angle 24 error = %v, want ErrHourAngleRange", err)
	}
	if _, err := SearchHourAngle(ephem.Sun, obs, -0.5, astrotime.FromDays(0)); !errors.Is(err, ErrHourAngleRange) {
		t.Errorf("hour angle -0.5 error = %v, want ErrHourAngleRange", err)
	}
}
