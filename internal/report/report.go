// Package report assembles a daily almanac for one observer: rise and set
// times, lunar phase and apsides, the seasons of the current year, and the
// visibility of the naked-eye planets. It is the data producer shared by the
// TUI and the headless output modes.
package report

import (
	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// RiseSet holds the next rise and set times of a body. Either field may be
// nil when the event does not occur within the search window, as happens for
// bodies that stay above or below the horizon at polar latitudes.
type RiseSet struct {
	Rise *astrotime.Time
	Set  *astrotime.Time
}

// PlanetView is the observing summary for one planet.
type PlanetView struct {
	Body       ephem.Body
	Hor        astro.Horizontal
	Mag        float64
	Elongation float64
	Visibility ephem.Visibility
}

// MoonInfo summarizes the Moon's current phase and brightness.
type MoonInfo struct {
	PhaseAngle    float64 // 0 new, 90 first quarter, 180 full, 270 third quarter
	PhaseFraction float64
	Mag           float64
	DistanceKm    float64
}

// Report is a computed almanac for one observer at one instant.
type Report struct {
	Time     astrotime.Time
	Observer astro.Observer

	Sun       RiseSet
	SolarNoon *almanac.HourAngleEvent

	Moon      RiseSet
	MoonPhase MoonInfo
	Quarters  []almanac.MoonQuarter
	NextApsis almanac.Apsis

	Seasons almanac.SeasonInfo

	Planets []PlanetView
}

// planets lists the bodies reported in the planet table, in distance order.
var planets = []ephem.Body{
	ephem.Mercury,
	ephem.Venus,
	ephem.Mars,
	ephem.Jupiter,
	ephem.Saturn,
	ephem.Uranus,
	ephem.Neptune,
}

// riseSetWindowDays bounds the rise/set searches. Two days cover the lag of
// lunar events, which drift almost an hour later per day.
const riseSetWindowDays = 2.0

func riseSet(body ephem.Body, obs astro.Observer, t astrotime.Time) (RiseSet, error) {
	rise, err := almanac.SearchRiseSet(body, obs, almanac.Rise, t, riseSetWindowDays)
	if err != nil {
		return RiseSet{}, err
	}
	set, err := almanac.SearchRiseSet(body, obs, almanac.Set, t, riseSetWindowDays)
	if err != nil {
		return RiseSet{}, err
	}
	return RiseSet{Rise: rise, Set: set}, nil
}

// Compute builds the full almanac for the given observer and instant.
func Compute(obs astro.Observer, t astrotime.Time) (*Report, error) {
	r := &Report{Time: t, Observer: obs}

	var err error
	if r.Sun, err = riseSet(ephem.Sun, obs, t); err != nil {
		return nil, err
	}
	noon, err := almanac.SearchHourAngle(ephem.Sun, obs, 0.0, t)
	if err != nil {
		return nil, err
	}
	r.SolarNoon = &noon

	if r.Moon, err = riseSet(ephem.Moon, obs, t); err != nil {
		return nil, err
	}
	phase, err := almanac.MoonPhase(t)
	if err != nil {
		return nil, err
	}
	illum, err := ephem.Illumination(ephem.Moon, t)
	if err != nil {
		return nil, err
	}
	r.MoonPhase = MoonInfo{
		PhaseAngle:    phase,
		PhaseFraction: illum.PhaseFraction,
		Mag:           illum.Mag,
		DistanceKm:    illum.GeoDist * astro.KmPerAU,
	}

	mq, err := almanac.SearchMoonQuarter(t)
	if err != nil {
		return nil, err
	}
	r.Quarters = append(r.Quarters, mq)
	for i := 0; i < 3; i++ {
		if mq, err = almanac.NextMoonQuarter(mq); err != nil {
			return nil, err
		}
		r.Quarters = append(r.Quarters, mq)
	}

	if r.NextApsis, err = almanac.SearchLunarApsis(t); err != nil {
		return nil, err
	}

	if r.Seasons, err = almanac.Seasons(t.Utc().Year()); err != nil {
		return nil, err
	}

	for _, body := range planets {
		pv, err := planetView(body, obs, t)
		if err != nil {
			return nil, err
		}
		r.Planets = append(r.Planets, pv)
	}
	return r, nil
}

func planetView(body ephem.Body, obs astro.Observer, t astrotime.Time) (PlanetView, error) {
	ofdate, err := ephem.Equator(body, t, obs, true, true)
	if err != nil {
		return PlanetView{}, err
	}
	hor := astro.Horizon(t, obs, ofdate.RA, ofdate.Dec, astro.NormalRefraction)

	illum, err := ephem.Illumination(body, t)
	if err != nil {
		return PlanetView{}, err
	}
	elong, err := ephem.Elongation(body, t)
	if err != nil {
		return PlanetView{}, err
	}

	return PlanetView{
		Body:       body,
		Hor:        hor,
		Mag:        illum.Mag,
		Elongation: elong.Elongation,
		Visibility: elong.Visibility,
	}, nil
}
