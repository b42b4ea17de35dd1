// Package almanac finds the times of astronomical events: rise and set,
// culmination, equinoxes and solstices, lunar phases and apsides, maximum
// elongation and peak brightness. Events are located as roots of slowly
// varying functions built on the ephem package.
package almanac

import "errors"

// ErrInternal reports a violated bracketing invariant inside an event
// search. It indicates a defect in the search logic rather than bad input.
var ErrInternal = errors.New("almanac: bracketing invariant violated")

const secondsPerDay = 24.0 * 3600.0
