package reftables

// VimsottariYears gives the dasha length, in years, of each graha in the
// 120-year Vimsottari cycle. Grounded on astrovedic's vimshottari table
// (vedic/vimshottari.py, summed and cross-checked against panchang.py's
// HORA_RULERS ordering); the total is the traditional 120.
var VimsottariYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// VimsottariTotalYears is the sum of VimsottariYears, the closed cycle
// length KP sub-lord partitions scale against.
const VimsottariTotalYears = 120.0

// VimsottariProportion returns a planet's share of the 120-year cycle,
// e.g. 7/120 for Ketu — the weight the KP sub-lord engine uses to split any
// span into nine proportioned sub-spans.
func VimsottariProportion(p Planet) (float64, bool) {
	years, ok := VimsottariYears[p]
	if !ok {
		return 0, false
	}
	return years / VimsottariTotalYears, true
}
