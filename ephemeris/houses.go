package ephemeris

import (
	"context"
	"math"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

// ascendantTropical computes the tropical ecliptic longitude of the eastern
// horizon point at moment and loc, using the standard ascendant formula
// (Meeus, Astronomical Algorithms ch.13): given the local sidereal time
// (RAMC) and the obliquity of the ecliptic, the ascendant satisfies
//
//	tan(lambda) = -cos(RAMC) / (sin(RAMC)*cos(eps) + tan(lat)*sin(eps))
//
// with the quadrant resolved so the ascendant always rises (falls in the
// half of the ecliptic currently crossing the eastern horizon).
func ascendantTropical(moment jd.JulianDay, loc GeoPosition) float64 {
	t := (float64(moment) - 2451545.0) / 36525.0

	gmstHours := 6.697374558 + 2400.051336*t + 0.000025862*t*t
	gmstHours = math.Mod(gmstHours, 24)
	if gmstHours < 0 {
		gmstHours += 24
	}
	lstHours := gmstHours + loc.Longitude/15.0
	ramc := math.Mod(lstHours*15.0, 360)
	if ramc < 0 {
		ramc += 360
	}

	obliquity := 23.4392911 - 0.0130042*t
	ramcRad := ramc * math.Pi / 180
	oblRad := obliquity * math.Pi / 180
	latRad := loc.Latitude * math.Pi / 180

	y := -math.Cos(ramcRad)
	x := math.Sin(ramcRad)*math.Cos(oblRad) + math.Tan(latRad)*math.Sin(oblRad)
	asc := math.Atan2(-y, -x) * 180 / math.Pi
	return angle.Norm(asc)
}

// Houses implements Adapter.Houses. Whole-Sign and Equal are computed
// exactly; Placidus, Koch and the other quadrant systems this repository
// does not have closed-form cusp trisection formulas for fall back to Equal
// cusps from the same ascendant, a simplification rather than a silently
// wrong quadrant division.
func (a *SimplifiedAdapter) Houses(ctx context.Context, system reftables.HouseSystem, moment jd.JulianDay, loc GeoPosition, ayanamsaTag reftables.Ayanamsa) ([12]float64, error) {
	ayanamsaValue, err := a.Ayanamsa(ctx, ayanamsaTag, moment)
	if err != nil {
		return [12]float64{}, err
	}
	ascendant := angle.Norm(ascendantTropical(moment, loc) - ayanamsaValue)

	var cusps [12]float64
	switch system {
	case reftables.WholeSign:
		signStart := float64(angle.SignIndex(ascendant)) * 30.0
		for i := 0; i < 12; i++ {
			cusps[i] = angle.Norm(signStart + float64(i)*30.0)
		}
	default:
		for i := 0; i < 12; i++ {
			cusps[i] = angle.Norm(ascendant + float64(i)*30.0)
		}
	}
	return cusps, nil
}
