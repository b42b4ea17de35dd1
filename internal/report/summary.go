package report

import (
	"fmt"
	"io"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

var quarterNames = [4]string{"New Moon", "First Quarter", "Full Moon", "Third Quarter"}

func fmtEvent(t *astrotime.Time) string {
	if t == nil {
		return "none"
	}
	return t.String()
}

// WriteSummary renders the report as a plain-text almanac for headless use.
func WriteSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Almanac for %s\n", r.Time)
	fmt.Fprintf(w, "Observer: lat %+.4f, lon %+.4f, elev %.0f m\n\n",
		r.Observer.Latitude, r.Observer.Longitude, r.Observer.Height)

	fmt.Fprintln(w, "SUN")
	fmt.Fprintf(w, "  rise        %s\n", fmtEvent(r.Sun.Rise))
	if r.SolarNoon != nil {
		fmt.Fprintf(w, "  noon        %s  alt %+.1f\n", r.SolarNoon.Time, r.SolarNoon.Hor.Altitude)
	}
	fmt.Fprintf(w, "  set         %s\n\n", fmtEvent(r.Sun.Set))

	fmt.Fprintln(w, "MOON")
	fmt.Fprintf(w, "  rise        %s\n", fmtEvent(r.Moon.Rise))
	fmt.Fprintf(w, "  set         %s\n", fmtEvent(r.Moon.Set))
	fmt.Fprintf(w, "  phase       %.1f deg (%.0f%% illuminated)\n",
		r.MoonPhase.PhaseAngle, 100*r.MoonPhase.PhaseFraction)
	fmt.Fprintf(w, "  distance    %.0f km\n", r.MoonPhase.DistanceKm)
	fmt.Fprintf(w, "  next %-7s %s (%.0f km)\n", r.NextApsis.Kind, r.NextApsis.Time, r.NextApsis.DistKm)
	for _, q := range r.Quarters {
		fmt.Fprintf(w, "  %-13s %s\n", quarterNames[q.Quarter], q.Time)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SEASONS")
	fmt.Fprintf(w, "  Mar equinox   %s\n", r.Seasons.MarEquinox)
	fmt.Fprintf(w, "  Jun solstice  %s\n", r.Seasons.JunSolstice)
	fmt.Fprintf(w, "  Sep equinox   %s\n", r.Seasons.SepEquinox)
	fmt.Fprintf(w, "  Dec solstice  %s\n\n", r.Seasons.DecSolstice)

	fmt.Fprintln(w, "PLANETS")
	fmt.Fprintf(w, "  %-8s %8s %8s %6s %7s  %s\n", "body", "alt", "az", "mag", "elong", "sky")
	for _, p := range r.Planets {
		fmt.Fprintf(w, "  %-8s %8.1f %8.1f %6.1f %7.1f  %s\n",
			p.Body, p.Hor.Altitude, p.Hor.Azimuth, p.Mag, p.Elongation, p.Visibility)
	}
}

// WriteSeasons renders only the season table, for the -year flag.
func WriteSeasons(w io.Writer, year int, s almanac.SeasonInfo) {
	fmt.Fprintf(w, "Seasons %d\n", year)
	fmt.Fprintf(w, "  Mar equinox   %s\n", s.MarEquinox)
	fmt.Fprintf(w, "  Jun solstice  %s\n", s.JunSolstice)
	fmt.Fprintf(w, "  Sep equinox   %s\n", s.SepEquinox)
	fmt.Fprintf(w, "  Dec solstice  %s\n", s.DecSolstice)
}
