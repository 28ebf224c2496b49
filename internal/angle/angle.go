// Package angle implements the normalisation and arc-distance primitives
// every other package in this module builds on: longitudes, sign splits,
// and signed/unsigned angular distances.
package angle

import "math"

// FullCircle is the number of degrees in one revolution.
const FullCircle = 360.0

// DegreesPerSign is the width of one zodiacal sign.
const DegreesPerSign = 30.0

// Norm reduces x to [0, 360).
func Norm(x float64) float64 {
	y := math.Mod(x, FullCircle)
	if y < 0 {
		y += FullCircle
	}
	return y
}

// ClosestDistance returns the signed shortest arc from a to b in
// (-180, +180]. Positive means b is ahead of a going counter-clockwise.
func ClosestDistance(a, b float64) float64 {
	d := Norm(b-a+180) - 180
	if d == -180 {
		return 180
	}
	return d
}

// Distance returns the unsigned shortest arc between a and b in [0, 180].
func Distance(a, b float64) float64 {
	d := math.Abs(ClosestDistance(a, b))
	return d
}

// SignIndex returns the zero-based sign index (0 = Aries .. 11 = Pisces)
// of a longitude.
func SignIndex(lon float64) int {
	return int(math.Floor(Norm(lon) / DegreesPerSign))
}

// SignLongitude returns the position within a sign, in [0, 30).
func SignLongitude(lon float64) float64 {
	return math.Mod(Norm(lon), DegreesPerSign)
}

// NearlyEqual reports whether a and b agree to within eps degrees,
// wrapping correctly across the 0/360 boundary.
func NearlyEqual(a, b, eps float64) bool {
	return Distance(a, b) <= eps
}
