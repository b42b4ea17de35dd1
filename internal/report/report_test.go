package report

import (
	"strings"
	"testing"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

func computeTestReport(t *testing.T) *Report {
	t.Helper()
	obs := astro.Observer{Latitude: 0, Longitude: 0, Height: 0}
	r, err := Compute(obs, astrotime.Make(2000, 1, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return r
}

func TestComputeEquator(t *testing.T) {
	r := computeTestReport(t)

	if r.Sun.Rise == nil || r.Sun.Set == nil {
		t.Fatal("equatorial sun rise/set missing")
	}
	if r.Moon.Rise == nil || r.Moon.Set == nil {
		t.Fatal("equatorial moon rise/set missing")
	}
	if r.SolarNoon == nil {
		t.Fatal("solar noon missing")
	}
	if r.SolarNoon.Hor.Altitude < 60 {
		t.Errorf("equatorial noon altitude = %v, want above 60", r.SolarNoon.Hor.Altitude)
	}

	if len(r.Quarters) != 4 {
		t.Fatalf("quarters = %d, want 4", len(r.Quarters))
	}
	for i := 1; i < 4; i++ {
		if r.Quarters[i].Quarter != (r.Quarters[i-1].Quarter+1)%4 {
			t.Errorf("quarter sequence broken at %d: %d then %d",
				i, r.Quarters[i-1].Quarter, r.Quarters[i].Quarter)
		}
	}

	if r.NextApsis.Time.UT() <= r.Time.UT() {
		t.Errorf("next apsis %v not after report time", r.NextApsis.Time)
	}
	if r.Seasons.MarEquinox.Utc().Year() != 2000 {
		t.Errorf("seasons computed for %d", r.Seasons.MarEquinox.Utc().Year())
	}

	if len(r.Planets) != 7 {
		t.Fatalf("planets = %d, want 7", len(r.Planets))
	}
	for _, p := range r.Planets {
		if p.Hor.Altitude < -90 || p.Hor.Altitude > 90 {
			t.Errorf("%v altitude = %v", p.Body, p.Hor.Altitude)
		}
		if p.Hor.Azimuth < 0 || p.Hor.Azimuth >= 360 {
			t.Errorf("%v azimuth = %v", p.Body, p.Hor.Azimuth)
		}
		if p.Elongation < 0 || p.Elongation > 180 {
			t.Errorf("%v elongation = %v", p.Body, p.Elongation)
		}
	}

	if r.MoonPhase.PhaseFraction < 0 || r.MoonPhase.PhaseFraction > 1 {
		t.Errorf("moon phase fraction = %v", r.MoonPhase.PhaseFraction)
	}
	if r.MoonPhase.DistanceKm < 356000 || r.MoonPhase.DistanceKm > 407000 {
		t.Errorf("moon distance = %v km", r.MoonPhase.DistanceKm)
	}
}

func TestWriteSummary(t *testing.T) {
	r := computeTestReport(t)

	var sb strings.Builder
	WriteSummary(&sb, r)
	out := sb.String()

	for _, want := range []string{"SUN", "MOON", "SEASONS", "PLANETS", "rise", "Mar equinox", "Venus"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestWriteSeasons(t *testing.T) {
	r := computeTestReport(t)

	var sb strings.Builder
	WriteSeasons(&sb, 2000, r.Seasons)
	out := sb.String()
	if !strings.Contains(out, "Seasons 2000") || !strings.Contains(out, "Dec solstice") {
		t.Errorf("season table output:\n%s", out)
	}
}
