package ephem

import (
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// chebScale maps a time within [tMin, tMax] onto the Chebyshev domain [-1, 1].
func chebScale(tMin, tMax, t float64) float64 {
	return (2*t - (tMax + tMin)) / (tMax - tMin)
}

// calcChebyshev locates the record covering the given instant and evaluates
// its Chebyshev polynomials with the usual three-term recurrence. Returns
// ErrPlutoRange when no record covers the instant.
func calcChebyshev(model []chebRecord, t astrotime.Time) (astro.Vector, error) {
	for _, record := range model {
		x := chebScale(record.tt, record.tt+record.ndays, t.TT())
		if x < -1 || x > +1 {
			continue
		}
		var pos [3]float64
		for d := 0; d < 3; d++ {
			p0 := 1.0
			sum := record.coeff[0][d]
			p1 := x
			sum += record.coeff[1][d] * p1
			for k := 2; k < len(record.coeff); k++ {
				p2 := 2*x*p1 - p0
				sum += record.coeff[k][d] * p2
				p0, p1 = p1, p2
			}
			pos[d] = sum - record.coeff[0][d]/2
		}
		return astro.Vector{X: pos[0], Y: pos[1], Z: pos[2], T: t}, nil
	}
	return astro.Vector{}, ErrPlutoRange
}
