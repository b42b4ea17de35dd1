package almanac

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// ApsisKind distinguishes the closest point of an orbit from the farthest.
type ApsisKind int

const (
	Pericenter ApsisKind = 0
	Apocenter  ApsisKind = 1
)

func (k ApsisKind) String() string {
	if k == Pericenter {
		return "perigee"
	}
	return "apogee"
}

// Apsis is an extreme of the Moon's distance from the Earth: a perigee
// (closest approach) or an apogee (farthest point).
type Apsis struct {
	Time   astrotime.Time
	Kind   ApsisKind
	DistAU float64
	DistKm float64
}

// distanceSlope is the signed time derivative of the Moon's distance,
// estimated over a small centered interval. An ascending zero crossing of
// the +1-signed slope is a perigee; of the -1-signed slope, an apogee.
func distanceSlope(direction float64, t astrotime.Time) (float64, error) {
	const dt = 0.001
	t1 := t.AddDays(-dt / 2.0)
	t2 := t.AddDays(+dt / 2.0)
	dist1 := ephem.MoonDistance(t1)
	dist2 := ephem.MoonDistance(t2)
	return direction * (dist2 - dist1) / dt, nil
}

// SearchLunarApsis finds the first perigee or apogee after startTime,
// whichever comes first. Feed the result to NextLunarApsis to iterate
// through the alternating series.
func SearchLunarApsis(startTime astrotime.Time) (Apsis, error) {
	// Consecutive apsides are at least ~13 days apart, so a 5-day scan step
	// cannot skip over one. Two synodic months bound the search.
	const increment = 5.0
	t1 := startTime
	m1, err := distanceSlope(+1, t1)
	if err != nil {
		return Apsis{}, err
	}
	for iter := 0; float64(iter)*increment < 2.0*ephem.MeanSynodicMonth; iter++ {
		t2 := t1.AddDays(increment)
		m2, err := distanceSlope(+1, t2)
		if err != nil {
			return Apsis{}, err
		}
		if m1*m2 <= 0.0 {
			// The slope changes polarity inside [t1, t2], so the range
			// contains an apsis. The slope signs say which kind.
			var apsisTime *astrotime.Time
			var kind ApsisKind
			switch {
			case m1 < 0.0 || m2 > 0.0:
				// Minimum distance: perigee.
				apsisTime, err = search.Search(func(t astrotime.Time) (float64, error) {
					return distanceSlope(+1, t)
				}, t1, t2, 1.0)
				kind = Pericenter
			case m1 > 0.0 || m2 < 0.0:
				// Maximum distance: apogee.
				apsisTime, err = search.Search(func(t astrotime.Time) (float64, error) {
					return distanceSlope(-1, t)
				}, t1, t2, 1.0)
				kind = Apocenter
			default:
				// Both slopes cannot be zero at once.
				return Apsis{}, ErrInternal
			}
			if err != nil {
				return Apsis{}, err
			}
			if apsisTime == nil {
				// A bracketed apsis must be found.
				return Apsis{}, ErrInternal
			}
			dist := ephem.MoonDistance(*apsisTime)
			return Apsis{Time: *apsisTime, Kind: kind, DistAU: dist, DistKm: dist * astro.KmPerAU}, nil
		}
		t1 = t2
		m1 = m2
	}
	// An apsis always occurs within 2 synodic months.
	return Apsis{}, ErrInternal
}

// NextLunarApsis finds the apsis that follows the given one. Perigees and
// apogees strictly alternate; a result of the same kind as the input means
// the search logic failed.
func NextLunarApsis(apsis Apsis) (Apsis, error) {
	// Consecutive apsides are at least ~13 days apart; skipping 11 days
	// cannot jump past the next one.
	const skip = 11.0
	next, err := SearchLunarApsis(apsis.Time.AddDays(skip))
	if err != nil {
		return Apsis{}, err
	}
	if next.Kind+apsis.Kind != 1 {
		return Apsis{}, ErrInternal
	}
	return next, nil
}
