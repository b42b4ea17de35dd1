// Package search finds ascending roots of time-dependent functions: the
// moment a function's value passes from negative through zero to positive.
// Most astronomical events reduce to such a root.
package search

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/astrotime"
)

// Func evaluates a time-dependent quantity. Any error aborts the search and
// propagates to the caller.
type Func func(t astrotime.Time) (float64, error)

// ErrNoConverge indicates the root finder exceeded its iteration cap without
// narrowing the bracket to tolerance. The bracketing window is too wide or
// the function too ill-behaved for the search to make progress.
var ErrNoConverge = errors.New("search: excessive iteration without convergence")

const secondsPerDay = 24.0 * 3600.0

// quadInterp fits a parabola through three samples taken at tm-dt, tm and
// tm+dt and returns the single root in the bracket, the interpolated time of
// that root, and the slope there. ok is false when the parabola has zero or
// two roots inside the bracket, which leaves no unambiguous crossing.
func quadInterp(tm, dt, fa, fm, fb float64) (x, t, dfdt float64, ok bool) {
	q := (fb+fa)/2 - fm
	r := (fb - fa) / 2
	s := fm

	if q == 0 {
		// A line, not a parabola.
		if r == 0 {
			return 0, 0, 0, false
		}
		x = -s / r
		if x < -1 || x > +1 {
			return 0, 0, 0, false
		}
	} else {
		u := r*r - 4*q*s
		if u <= 0 {
			return 0, 0, 0, false
		}
		ru := math.Sqrt(u)
		x1 := (-r + ru) / (2 * q)
		x2 := (-r - ru) / (2 * q)
		switch {
		case -1 <= x1 && x1 <= +1:
			if -1 <= x2 && x2 <= +1 {
				// Both roots inside the bracket.
				return 0, 0, 0, false
			}
			x = x1
		case -1 <= x2 && x2 <= +1:
			x = x2
		default:
			return 0, 0, 0, false
		}
	}

	t = tm + x*dt
	dfdt = (2*q*x + r) / dt
	return x, t, dfdt, true
}

// Search finds the ascending root of f within the window [t1, t2]: the time
// at which f transitions from a negative value through zero to a positive
// value. Quadratic interpolation narrows the bracket quickly when f is
// locally smooth; bisection covers the rest.
//
// The window must be small enough to contain at most one root of either
// polarity. When no ascending root is bracketed, or more than one root lies
// inside the window, Search returns (nil, nil). The returned time is within
// tolSeconds of the true root and always inside [t1, t2].
func Search(f Func, t1, t2 astrotime.Time, tolSeconds float64) (*astrotime.Time, error) {
	dtDays := math.Abs(tolSeconds / secondsPerDay)
	f1, err := f(t1)
	if err != nil {
		return nil, err
	}
	f2, err := f(t2)
	if err != nil {
		return nil, err
	}

	var fmid float64
	calcFmid := true
	for iter := 1; ; iter++ {
		if iter > 20 {
			return nil, ErrNoConverge
		}

		dt := (t2.TT() - t1.TT()) / 2.0
		tmid := t1.AddDays(dt)
		if math.Abs(dt) < dtDays {
			return &tmid, nil
		}

		if calcFmid {
			fmid, err = f(tmid)
			if err != nil {
				return nil, err
			}
		} else {
			// fmid still holds the correct value from the previous pass.
			calcFmid = true
		}

		// Fit a parabola through (t1,f1), (tmid,fmid), (t2,f2) and chase its
		// root before falling back to bisection.
		if _, qut, qdfdt, ok := quadInterp(tmid.UT(), t2.UT()-tmid.UT(), f1, fmid, f2); ok {
			tq := astrotime.FromDays(qut)
			fq, err := f(tq)
			if err != nil {
				return nil, err
			}
			if qdfdt != 0.0 {
				dtGuess := math.Abs(fq / qdfdt)
				if dtGuess < dtDays {
					return &tq, nil
				}

				// Try a tighter bracket centered on the interpolated root.
				dtGuess *= 1.2
				if dtGuess < dt/10.0 {
					tleft := tq.AddDays(-dtGuess)
					tright := tq.AddDays(+dtGuess)
					if (tleft.UT()-t1.UT())*(tleft.UT()-t2.UT()) < 0.0 &&
						(tright.UT()-t1.UT())*(tright.UT()-t2.UT()) < 0.0 {
						fleft, err := f(tleft)
						if err != nil {
							return nil, err
						}
						fright, err := f(tright)
						if err != nil {
							return nil, err
						}
						if fleft < 0.0 && fright >= 0.0 {
							f1, f2 = fleft, fright
							t1, t2 = tleft, tright
							fmid = fq
							calcFmid = false
							continue
						}
					}
				}
			}
		}

		if f1 < 0.0 && fmid >= 0.0 {
			t2 = tmid
			f2 = fmid
			continue
		}
		if fmid < 0.0 && f2 >= 0.0 {
			t1 = tmid
			f1 = fmid
			continue
		}

		// No ascending crossing in the window, or more than one root.
		return nil, nil
	}
}
