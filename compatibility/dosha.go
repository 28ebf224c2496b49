package compatibility

import "math"

// DoshaProfile records which of the four classical doshas a single chart
// carries. Mangal and Kuja dosha are scored from different reference
// points (ascendant and moon respectively) since this pack carries no
// surviving dosha.py to settle which convention the distinction follows.
type DoshaProfile struct {
	Mangal bool
	Kuja   bool
	Shani  bool
	Grahan bool
}

// Any reports whether at least one dosha is present.
func (d DoshaProfile) Any() bool {
	return d.Mangal || d.Kuja || d.Shani || d.Grahan
}

var mangalDoshaHouses = map[int]bool{1: true, 2: true, 4: true, 7: true, 8: true, 12: true}
var shaniDoshaHouses = map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}

// grahanOrbDegrees is the conjunction orb within which a node and a
// luminary are treated as eclipsed (grahan dosha).
const grahanOrbDegrees = 10.0

func angularSeparation(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ProfileOf derives a partner's dosha profile from the house and
// longitude placements carried on Partner.
func ProfileOf(p Partner) DoshaProfile {
	return DoshaProfile{
		Mangal: mangalDoshaHouses[p.MarsHouseFromAscendant],
		Kuja:   mangalDoshaHouses[p.MarsHouseFromMoon],
		Shani:  shaniDoshaHouses[p.SaturnHouseFromMoon],
		Grahan: angularSeparation(p.RahuLongitude, p.SunLongitude) <= grahanOrbDegrees ||
			angularSeparation(p.RahuLongitude, p.MoonLongitude) <= grahanOrbDegrees ||
			angularSeparation(p.KetuLongitude, p.SunLongitude) <= grahanOrbDegrees ||
			angularSeparation(p.KetuLongitude, p.MoonLongitude) <= grahanOrbDegrees,
	}
}

// Cancellation reports whether a shared Mangal/Kuja dosha between both
// partners cancels -- the traditional rule that mutual affliction neutralises
// itself, the only cancellation rule this repository models.
func Cancellation(boy, girl DoshaProfile) bool {
	return (boy.Mangal && girl.Mangal) || (boy.Kuja && girl.Kuja)
}

// Residual scores what fraction of the four-dosha check survives after
// cancellation: 1.0 means no unresolved affliction, 0.0 means every
// checked dosha is present and unresolved. Mangal/Kuja together count as
// one afflicted axis since they are scored from two reference points of
// the same underlying placement.
func Residual(boy, girl DoshaProfile) float64 {
	const axes = 3.0 // mangal/kuja combined, shani, grahan
	penalty := 0.0

	marsAfflicted := boy.Mangal || boy.Kuja || girl.Mangal || girl.Kuja
	if marsAfflicted && !Cancellation(boy, girl) {
		penalty++
	}
	if boy.Shani || girl.Shani {
		penalty++
	}
	if boy.Grahan || girl.Grahan {
		penalty++
	}

	residual := (axes - penalty) / axes
	if residual < 0 {
		residual = 0
	}
	return residual
}
