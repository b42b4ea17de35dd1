package almanac

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// negElongSlope is the negated time derivative of the body's angle from the
// Sun, so that a maximum elongation becomes an ascending zero crossing.
func negElongSlope(body ephem.Body, t astrotime.Time) (float64, error) {
	const dt = 0.1
	e1, err := ephem.AngleFromSun(body, t.AddDays(-dt/2.0))
	if err != nil {
		return 0, err
	}
	e2, err := ephem.AngleFromSun(body, t.AddDays(+dt/2.0))
	if err != nil {
		return 0, err
	}
	return (e1 - e2) / dt, nil
}

// SearchMaxElongation finds the next time Mercury or Venus reaches its
// maximum angle from the Sun as seen from the Earth. These are the best
// observing opportunities for the inferior planets. Other bodies yield
// ErrInvalidBody; for superior planets use SearchRelativeLongitude to find
// opposition instead.
func SearchMaxElongation(body ephem.Body, startTime astrotime.Time) (ephem.ElongationEvent, error) {
	// s1 and s2 bound the heliocentric relative longitudes within which a
	// maximum elongation can occur for each planet.
	var s1, s2 float64
	switch body {
	case ephem.Mercury:
		s1, s2 = 50.0, 85.0
	case ephem.Venus:
		s1, s2 = 40.0, 50.0
	default:
		return ephem.ElongationEvent{}, ephem.ErrInvalidBody
	}
	syn, err := ephem.SynodicPeriod(body)
	if err != nil {
		return ephem.ElongationEvent{}, err
	}

	for iter := 1; iter <= 2; iter++ {
		plon, err := ephem.EclipticLongitude(body, startTime)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		elon, err := ephem.EclipticLongitude(ephem.Earth, startTime)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		rlon := astro.LongitudeOffset(plon - elon)

		// The elongation slope has a cusp near relative longitudes 0 and
		// 180, so position the bracket away from those discontinuities.
		var adjustDays, rlonLo, rlonHi float64
		switch {
		case rlon >= -s1 && rlon < +s1:
			// Seek forward to the window [+s1, +s2].
			adjustDays = 0.0
			rlonLo, rlonHi = +s1, +s2
		case rlon > +s2 || rlon < -s2:
			// Seek forward to the next window [-s2, -s1].
			adjustDays = 0.0
			rlonLo, rlonHi = -s2, -s1
		case rlon >= 0.0:
			// Inside [+s1, +s2]; back up to reach its start.
			adjustDays = -syn / 4.0
			rlonLo, rlonHi = +s1, +s2
		default:
			// Inside [-s2, -s1]; back up to reach its start.
			adjustDays = -syn / 4.0
			rlonLo, rlonHi = -s2, -s1
		}

		t1, err := SearchRelativeLongitude(body, rlonLo, startTime.AddDays(adjustDays))
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		t2, err := SearchRelativeLongitude(body, rlonHi, t1)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}

		// [t1, t2] must bracket a maximum: slope negative entering,
		// positive leaving.
		m1, err := negElongSlope(body, t1)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		if m1 >= 0.0 {
			return ephem.ElongationEvent{}, ErrInternal
		}
		m2, err := negElongSlope(body, t2)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		if m2 <= 0.0 {
			return ephem.ElongationEvent{}, ErrInternal
		}

		tx, err := search.Search(func(t astrotime.Time) (float64, error) {
			return negElongSlope(body, t)
		}, t1, t2, 10.0)
		if err != nil {
			return ephem.ElongationEvent{}, err
		}
		if tx == nil {
			return ephem.ElongationEvent{}, ErrInternal
		}

		if tx.TT() >= startTime.TT() {
			return ephem.Elongation(body, *tx)
		}

		// The event found is in the past; search forward from the end of
		// this window. Two passes always suffice.
		startTime = t2.AddDays(1.0)
	}
	return ephem.ElongationEvent{}, ErrInternal
}
