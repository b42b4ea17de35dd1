package almanac

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// magSlope is the time derivative of visual magnitude. Magnitude numbers
// shrink as a body brightens, so the slope is negative approaching peak
// brightness and crosses zero going upward at the peak.
func magSlope(body ephem.Body, t astrotime.Time) (float64, error) {
	const dt = 0.01
	y1, err := ephem.Illumination(body, t.AddDays(-dt/2))
	if err != nil {
		return 0, err
	}
	y2, err := ephem.Illumination(body, t.AddDays(+dt/2))
	if err != nil {
		return 0, err
	}
	return (y2.Mag - y1.Mag) / dt, nil
}

// SearchPeakMagnitude finds the next time Venus appears brightest as seen
// from the Earth. Only Venus is supported: Mercury peaks at superior
// conjunction where it cannot be seen, the superior planets peak at
// opposition (use SearchRelativeLongitude), and the Moon peaks at full moon
// (use SearchMoonQuarter).
func SearchPeakMagnitude(body ephem.Body, startTime astrotime.Time) (ephem.IlluminationInfo, error) {
	if body != ephem.Venus {
		return ephem.IlluminationInfo{}, ephem.ErrInvalidBody
	}
	// Peak magnitude of Venus occurs while its heliocentric relative
	// longitude from the Earth is between these bounds.
	const s1, s2 = 10.0, 30.0

	for iter := 1; iter <= 2; iter++ {
		plon, err := ephem.EclipticLongitude(body, startTime)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		elon, err := ephem.EclipticLongitude(ephem.Earth, startTime)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		rlon := astro.LongitudeOffset(plon - elon)

		// The magnitude slope has a cusp near relative longitudes 0 and
		// 180; keep the bracket clear of both.
		var adjustDays, rlonLo, rlonHi float64
		switch {
		case rlon >= -s1 && rlon < +s1:
			adjustDays = 0.0
			rlonLo, rlonHi = +s1, +s2
		case rlon >= +s2 || rlon < -s2:
			adjustDays = 0.0
			rlonLo, rlonHi = -s2, -s1
		case rlon >= 0:
			syn, err := ephem.SynodicPeriod(body)
			if err != nil {
				return ephem.IlluminationInfo{}, err
			}
			adjustDays = -syn / 4
			rlonLo, rlonHi = +s1, +s2
		default:
			syn, err := ephem.SynodicPeriod(body)
			if err != nil {
				return ephem.IlluminationInfo{}, err
			}
			adjustDays = -syn / 4
			rlonLo, rlonHi = -s2, -s1
		}

		t1, err := SearchRelativeLongitude(body, rlonLo, startTime.AddDays(adjustDays))
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		t2, err := SearchRelativeLongitude(body, rlonHi, t1)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}

		// [t1, t2] must bracket the peak: slope negative entering,
		// positive leaving.
		m1, err := magSlope(body, t1)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		if m1 >= 0.0 {
			return ephem.IlluminationInfo{}, ErrInternal
		}
		m2, err := magSlope(body, t2)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		if m2 <= 0.0 {
			return ephem.IlluminationInfo{}, ErrInternal
		}

		tx, err := search.Search(func(t astrotime.Time) (float64, error) {
			return magSlope(body, t)
		}, t1, t2, 10.0)
		if err != nil {
			return ephem.IlluminationInfo{}, err
		}
		if tx == nil {
			return ephem.IlluminationInfo{}, ErrInternal
		}

		if tx.TT() >= startTime.TT() {
			return ephem.Illumination(body, *tx)
		}

		// The peak found is in the past; move past this window and retry.
		// Two passes always suffice.
		startTime = t2.AddDays(1.0)
	}
	return ephem.IlluminationInfo{}, ErrInternal
}
