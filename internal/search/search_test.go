package search

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func TestSearchLinearAscendingRoot(t *testing.T) {
	// f crosses zero going upward at ut = 5.
	f := func(tm astrotime.Time) (float64, error) {
		return tm.UT() - 5.0, nil
	}
	got, err := Search(f, astrotime.FromDays(0), astrotime.FromDays(10), 0.1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil {
		t.Fatal("Search returned no root")
	}
	if math.Abs(got.UT()-5.0)*86400 > 0.1 {
		t.Errorf("root at ut=%v, want 5.0 within 0.1s", got.UT())
	}
}

func TestSearchSmoothCurve(t *testing.T) {
	// A sine wave crossing upward at ut = 0 inside the window [-0.4, +0.6].
	f := func(tm astrotime.Time) (float64, error) {
		return math.Sin(tm.UT() * 2), nil
	}
	got, err := Search(f, astrotime.FromDays(-0.4), astrotime.FromDays(0.6), 0.01)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil {
		t.Fatal("Search returned no root")
	}
	if math.Abs(got.UT())*86400 > 0.01 {
		t.Errorf("root at ut=%v, want 0 within 0.01s", got.UT())
	}
}

func TestSearchDescendingCrossingNotFound(t *testing.T) {
	// Only a descending crossing in the window, at ut = pi/2. The parabola
	// fit cannot nail a cosine exactly, so the recenter check sees the
	// wrong slope signs and the bisection step finds no ascending half.
	f := func(tm astrotime.Time) (float64, error) {
		return math.Cos(tm.UT()), nil
	}
	got, err := Search(f, astrotime.FromDays(0), astrotime.FromDays(3), 1.0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got != nil {
		t.Errorf("Search found %v on a descending crossing", got)
	}
}

func TestSearchLinearDescendingFoundByFit(t *testing.T) {
	// An exactly linear function is a degenerate case: the fit solves the
	// line, the residual there is zero, and the early return fires before
	// any direction check. The crossing comes back even though it descends.
	f := func(tm astrotime.Time) (float64, error) {
		return 5.0 - tm.UT(), nil
	}
	got, err := Search(f, astrotime.FromDays(0), astrotime.FromDays(10), 0.1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil {
		t.Fatal("Search missed the exactly-linear crossing")
	}
	if math.Abs(got.UT()-5.0)*86400 > 0.1 {
		t.Errorf("crossing at ut=%v, want 5.0 within 0.1s", got.UT())
	}
}

func TestSearchNoCrossingNotFound(t *testing.T) {
	f := func(astrotime.Time) (float64, error) {
		return 1.0, nil
	}
	got, err := Search(f, astrotime.FromDays(0), astrotime.FromDays(1), 0.1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got != nil {
		t.Errorf("Search found %v with no crossing", got)
	}
}

func TestSearchPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	f := func(astrotime.Time) (float64, error) {
		return 0, boom
	}
	if _, err := Search(f, astrotime.FromDays(0), astrotime.FromDays(1), 1.0); !errors.Is(err, boom) {
		t.Errorf("Search error = %v, want boom", err)
	}
}

func TestSearchResultInsideWindow(t *testing.T) {
	f := func(tm astrotime.Time) (float64, error) {
		return tm.UT() - 0.25, nil
	}
	t1 := astrotime.FromDays(0)
	t2 := astrotime.FromDays(1)
	got, err := Search(f, t1, t2, 1.0)
	if err != nil || got == nil {
		t.Fatalf("Search: %v, %v", got, err)
	}
	if got.UT() < t1.UT() || got.UT() > t2.UT() {
		t.Errorf("root %v outside window [%v, %v]", got.UT(), t1.UT(), t2.UT())
	}
}

func TestQuadInterpRejectsDoubleRoot(t *testing.T) {
	// Parabola dipping below zero inside the bracket has two roots there.
	if _, _, _, ok := quadInterp(0, 1, 1, -1, 1); ok {
		t.Errorf("quadInterp accepted a bracket with two roots")
	}
	// A horizontal line has no root at all.
	if _, _, _, ok := quadInterp(0, 1, 2, 2, 2); ok {
		t.Errorf("quadInterp accepted a horizontal line")
	}
	// A clean line through zero is accepted.
	if _, tt, _, ok := quadInterp(0, 1, -1, 0, 1); !ok || tt != 0 {
		t.Errorf("quadInterp rejected a clean linear crossing (t=%v ok=%v)", tt, ok)
	}
}
