package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func within(t *testing.T, got astrotime.Time, want time.Time, tol time.Duration, label string) {
	t.Helper()
	diff := got.Utc().Sub(want)
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		t.Errorf("%s = %v, want %v within %v (off by %v)", label, got, want, tol, diff)
	}
}

func TestSeasons2000(t *testing.T) {
	// USNO times for 2000, expected within 2 minutes.
	info, err := Seasons(2000)
	if err != nil {
		t.Fatalf("Seasons(2000): %v", err)
	}
	tol := 2 * time.Minute
	within(t, info.MarEquinox, time.Date(2000, 3, 20, 7, 35, 0, 0, time.UTC), tol, "March equinox")
	within(t, info.JunSolstice, time.Date(2000, 6, 21, 1, 48, 0, 0, time.UTC), tol, "June solstice")
	within(t, info.SepEquinox, time.Date(2000, 9, 22, 17, 28, 0, 0, time.UTC), tol, "September equinox")
	within(t, info.DecSolstice, time.Date(2000, 12, 21, 13, 37, 0, 0, time.UTC), tol, "December solstice")
}

func TestSeasonsOrdering(t *testing.T) {
	info, err := Seasons(2015)
	if err != nil {
		t.Fatalf("Seasons(2015): %v", err)
	}
	events := []astrotime.Time{info.MarEquinox, info.JunSolstice, info.SepEquinox, info.DecSolstice}
	for i := 1; i < len(events); i++ {
		if events[i].UT() <= events[i-1].UT() {
			t.Errorf("season events out of order: %v then %v", events[i-1], events[i])
		}
	}
	// Consecutive events are roughly a quarter year apart.
	for i := 1; i < len(events); i++ {
		gap := events[i].UT() - events[i-1].UT()
		if gap < 85 || gap > 100 {
			t.Errorf("gap between season events = %v days", gap)
		}
	}
}

func TestSearchSunLongitudeNotFound(t *testing.T) {
	// The Sun cannot reach longitude 180 within 2 days of the March equinox.
	start := astrotime.Make(2000, 3, 19, 0, 0, 0)
	got, err := SearchSunLongitude(180, start, 2.0)
	if err != nil {
		t.Fatalf("SearchSunLongitude: %v", err)
	}
	if got != nil {
		t.Errorf("found longitude 180 at %v inside a 2-day March window", got)
	}
}

func TestSearchSunLongitudeMatchesSeason(t *testing.T) {
	start := astrotime.Make(2010, 6, 19, 0, 0, 0)
	got, err := SearchSunLongitude(90, start, 4.0)
	if err != nil {
		t.Fatalf("SearchSunLongitude: %v", err)
	}
	if got == nil {
		t.Fatal("no June solstice found in window")
	}
	info, err := Seasons(2010)
	if err != nil {
		t.Fatalf("Seasons(2010): %v", err)
	}
	if math.Abs(got.UT()-info.JunSolstice.UT())*86400 > 2 {
		t.Errorf("SearchSunLongitude(90) = %v, Seasons gave %v", got, info.JunSolstice)
	}
}
