package astrotime

// mjdBasis converts days-since-J2000 to a Modified Julian Date, the basis the
// delta-T table is keyed on. J2000 is JD 2451545.0 and MJD = JD - 2400000.5.
const mjdBasis = 2451545.0 - 2400000.5

// deltaT returns the number of seconds that Terrestrial Time is ahead of
// Universal Time at the given Modified Julian Date. Outside the table's range
// the nearest breakpoint value is returned unchanged; inside it, the
// bracketing pair is located by binary search and linearly interpolated.
func deltaT(mjd float64) float64 {
	if mjd <= deltaTTable[0].mjd {
		return deltaTTable[0].dt
	}
	last := len(deltaTTable) - 1
	if mjd >= deltaTTable[last].mjd {
		return deltaTTable[last].dt
	}
	lo := 0
	hi := last - 1 // keep one element after the candidate for interpolation
	for lo <= hi {
		c := (lo + hi) / 2
		switch {
		case mjd < deltaTTable[c].mjd:
			hi = c - 1
		case mjd > deltaTTable[c+1].mjd:
			lo = c + 1
		default:
			frac := (mjd - deltaTTable[c].mjd) / (deltaTTable[c+1].mjd - deltaTTable[c].mjd)
			return deltaTTable[c].dt + frac*(deltaTTable[c+1].dt-deltaTTable[c].dt)
		}
	}
	// The table is strictly increasing and the range checks above guarantee a
	// bracket exists, so reaching this point means the table itself is broken.
	panic("astrotime: delta-t table bracket not found")
}

// terrestrialTime converts UT days since J2000 to TT days since J2000.
func terrestrialTime(ut float64) float64 {
	return ut + deltaT(ut+mjdBasis)/86400.0
}
