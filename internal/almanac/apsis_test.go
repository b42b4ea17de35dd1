package almanac

import (
	"testing"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

func TestLunarApsisAlternation(t *testing.T) {
	apsis, err := SearchLunarApsis(astrotime.Make(2000, 1, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("SearchLunarApsis: %v", err)
	}

	for i := 0; i < 6; i++ {
		checkApsisDistance(t, apsis)
		next, err := NextLunarApsis(apsis)
		if err != nil {
			t.Fatalf("NextLunarApsis #%d: %v", i, err)
		}
		if next.Kind == apsis.Kind {
			t.Errorf("apsis kind repeated: %v then %v", apsis.Kind, next.Kind)
		}
		if next.Time.UT() <= apsis.Time.UT() {
			t.Errorf("apsis times not increasing: %v then %v", apsis.Time, next.Time)
		}
		gap := next.Time.UT() - apsis.Time.UT()
		// Perigee to apogee is roughly half an anomalistic month.
		if gap < 10 || gap > 18 {
			t.Errorf("gap between apsides = %v days", gap)
		}
		apsis = next
	}
}

func checkApsisDistance(t *testing.T, a Apsis) {
	t.Helper()
	switch a.Kind {
	case Pericenter:
		// Lunar perigee distance stays within 356500..370400 km.
		if a.DistKm < 356000 || a.DistKm > 371000 {
			t.Errorf("perigee distance = %v km", a.DistKm)
		}
	case Apocenter:
		// Lunar apogee distance stays within 404000..406700 km.
		if a.DistKm < 403000 || a.DistKm > 407000 {
			t.Errorf("apogee distance = %v km", a.DistKm)
		}
	default:
		t.Errorf("unexpected apsis kind %d", a.Kind)
	}
	if a.DistAU <= 0 {
		t.Errorf("apsis distance in AU = %v", a.DistAU)
	}
}

func TestApsisKindString(t *testing.T) {
	if Pericenter.String() != "perigee" || Apocenter.String() != "apogee" {
		t.Errorf("ApsisKind strings = %q, %q", Pericenter.String(), Apocenter.String())
	}
}
