package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/report"
	"github.com/litescript/ls-almanac/internal/state"
)

// testReport builds a small synthetic report so the view tests do not run the
// full almanac computation.
func testReport() *report.Report {
	rise := astrotime.Make(2000, 1, 1, 6, 0, 0)
	set := astrotime.Make(2000, 1, 1, 18, 0, 0)
	return &report.Report{
		Time:     astrotime.Make(2000, 1, 1, 12, 0, 0),
		Observer: astro.Observer{Latitude: 0, Longitude: 0},
		Sun:      report.RiseSet{Rise: &rise, Set: &set},
		Moon:     report.RiseSet{},
		MoonPhase: report.MoonInfo{
			PhaseAngle:    123.4,
			PhaseFraction: 0.78,
			Mag:           -11.0,
			DistanceKm:    384400,
		},
		Quarters: []almanac.MoonQuarter{
			{Quarter: 2, Time: astrotime.Make(2000, 1, 21, 4, 40, 0)},
		},
		NextApsis: almanac.Apsis{
			Time:   astrotime.Make(2000, 1, 19, 0, 0, 0),
			Kind:   almanac.Pericenter,
			DistKm: 357000,
		},
		Planets: []report.PlanetView{
			{Body: ephem.Venus, Mag: -4.0, Elongation: 40, Visibility: ephem.Evening,
				Hor: astro.Horizontal{Altitude: 25, Azimuth: 240}},
			{Body: ephem.Saturn, Mag: 0.5, Elongation: 120, Visibility: ephem.Morning,
				Hor: astro.Horizontal{Altitude: -10, Azimuth: 80}},
		},
	}
}

func TestDashboardViewWaiting(t *testing.T) {
	m := NewDashboardModel()
	if !strings.Contains(m.View(), "waiting for first almanac") {
		t.Error("empty dashboard missing waiting message")
	}
}

func TestDashboardViewWithReport(t *testing.T) {
	m := NewDashboardModel().UpdateData(state.Snapshot{Report: testReport()})
	out := m.View()

	for _, want := range []string{"SUN", "MOON", "LUNAR QUARTERS", "SEASONS", "Full Moon", "perigee", "384400 km"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	// The moon rise/set were left nil.
	if !strings.Contains(out, "none") {
		t.Error("dashboard does not mark missing events")
	}
}

func TestDashboardViewError(t *testing.T) {
	m := NewDashboardModel().SetError(errors.New("pluto out of range"))
	if !strings.Contains(m.View(), "pluto out of range") {
		t.Error("dashboard does not surface compute errors")
	}

	// A successful snapshot clears the error.
	m = m.UpdateData(state.Snapshot{Report: testReport()})
	if strings.Contains(m.View(), "pluto out of range") {
		t.Error("dashboard kept a stale error after good data")
	}
}

func TestSkyViewWithReport(t *testing.T) {
	m := NewSkyViewModel().UpdateData(state.Snapshot{Report: testReport()})
	out := m.View()

	for _, want := range []string{"PLANETS", "Venus", "Saturn", "evening", "morning"} {
		if !strings.Contains(out, want) {
			t.Errorf("sky view missing %q", want)
		}
	}
}

func TestSkyViewWaiting(t *testing.T) {
	m := NewSkyViewModel()
	if !strings.Contains(m.View(), "waiting for first almanac") {
		t.Error("empty sky view missing waiting message")
	}
}

func TestAltBarBounds(t *testing.T) {
	for _, alt := range []float64{-200, -90, 0, 45, 90, 200} {
		bar := altBar(alt)
		if bar == "" {
			t.Errorf("empty bar for altitude %v", alt)
		}
	}
}
