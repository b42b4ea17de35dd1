package astro

// NormalizeLongitude reduces an angle in degrees to the range [0, 360).
func NormalizeLongitude(lon float64) float64 {
	for lon < 0.0 {
		lon += 360.0
	}
	for lon >= 360.0 {
		lon -= 360.0
	}
	return lon
}

// LongitudeOffset reduces a difference of two longitudes in degrees to the
// range (-180, +180].
func LongitudeOffset(diff float64) float64 {
	offset := diff
	for offset <= -180.0 {
		offset += 360.0
	}
	for offset > 180.0 {
		offset -= 360.0
	}
	return offset
}
