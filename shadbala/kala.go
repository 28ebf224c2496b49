package shadbala

import (
	"fmt"
	"math"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

// Kala bala's nine sub-terms have no surviving source in this
// repository's reference data (cheshta_bala.py imports calculate_ayana_bala
// and calculate_paksha_bala from a kala_bala module that is itself absent
// from the retrieval pack). The functions below follow the standard
// traditional weights spec.md 4.8 names, documented here rather than
// silently assumed; see DESIGN.md.

// diurnalPlanets are naturally strong by day; the rest are nocturnal.
// Mercury is traditionally strong regardless of day or night.
var diurnalPlanets = map[reftables.Planet]bool{
	reftables.Sun: true, reftables.Jupiter: true, reftables.Venus: true,
}
var nocturnalPlanets = map[reftables.Planet]bool{
	reftables.Moon: true, reftables.Mars: true, reftables.Saturn: true,
}

// NathonnataBala peaks at 60 for a diurnal planet at local noon (or a
// nocturnal planet at local midnight), falling linearly to 0 twelve hours
// away; Mercury always scores 60.
func NathonnataBala(p reftables.Planet, hoursFromSunrise, dayLengthHours float64) (float64, error) {
	if p == reftables.Mercury {
		return 60.0, nil
	}
	halfDay := dayLengthHours / 2.0
	distFromNoon := math.Mod(math.Abs(hoursFromSunrise-halfDay), 24.0)
	if distFromNoon > 12 {
		distFromNoon = 24 - distFromNoon
	}
	normalized := 1.0 - (distFromNoon / 12.0)
	if normalized < 0 {
		normalized = 0
	}
	if nocturnalPlanets[p] {
		return 60.0 * (1.0 - normalized), nil
	}
	if diurnalPlanets[p] {
		return 60.0 * normalized, nil
	}
	return 0, fmt.Errorf("shadbala: no nathonnata class for %s", p)
}

// isNaturalBenefic reports Jupiter, Venus, Mercury and the Moon (whatever
// its phase) as benefics; used by paksha bala's benefic/malefic split
// (Mercury is always treated as benefic here, matching its
// neutral-but-benefic classical treatment).
func isNaturalBenefic(p reftables.Planet) bool {
	return p == reftables.Jupiter || p == reftables.Venus || p == reftables.Mercury || p == reftables.Moon
}

// PakshaBala rewards benefics in the bright half and malefics in the
// dark half, scaled by how far the Moon is from new/full Moon; the Moon
// itself scores by its own illumination fraction directly.
func PakshaBala(p reftables.Planet, moonSunDiff float64) float64 {
	phi := angle.Norm(moonSunDiff)
	// Distance from new moon (0) through full moon (180) and back.
	brightness := phi
	if brightness > 180 {
		brightness = 360 - brightness
	}
	fraction := brightness / 180.0 // 0 at new moon, 1 at full moon

	if p == reftables.Moon {
		return 60.0 * fraction
	}
	if isNaturalBenefic(p) {
		return 60.0 * fraction
	}
	return 60.0 * (1.0 - fraction)
}

// TribhagaBala splits day or night into three equal parts and awards 60
// virupas to that third's traditional lord (day: Mercury, Sun, Saturn;
// night: Moon, Venus, Mars), 0 otherwise.
var dayThirdLords = [3]reftables.Planet{reftables.Mercury, reftables.Sun, reftables.Saturn}
var nightThirdLords = [3]reftables.Planet{reftables.Moon, reftables.Venus, reftables.Mars}

func TribhagaBala(p reftables.Planet, isDay bool, thirdIndex int) (float64, error) {
	if thirdIndex < 0 || thirdIndex > 2 {
		return 0, fmt.Errorf("shadbala: tribhaga third index must be 0..2, got %d", thirdIndex)
	}
	lords := dayThirdLords
	if !isDay {
		lords = nightThirdLords
	}
	if lords[thirdIndex] == p {
		return 60.0, nil
	}
	return 0, nil
}

// The year, month and weekday lords all follow the same seven-day
// rotation panchanga.VaraAt keys off; AbdaBala and MasaBala accept the
// already-resolved lord rather than re-deriving it, to avoid importing
// panchanga into shadbala for a single lookup.

// AbdaBala awards 15 virupas to the lord of the current year.
func AbdaBala(p, yearLord reftables.Planet) float64 {
	if p == yearLord {
		return 15.0
	}
	return 0
}

// MasaBala awards 30 virupas to the lord of the current solar month.
func MasaBala(p, monthLord reftables.Planet) float64 {
	if p == monthLord {
		return 30.0
	}
	return 0
}

// weekdayLords indexes ruling planets by jd.Weekday (0=Sunday), the same
// rotation panchanga.VaraAt uses.
var weekdayLords = [7]reftables.Planet{
	reftables.Sun, reftables.Moon, reftables.Mars, reftables.Mercury,
	reftables.Jupiter, reftables.Venus, reftables.Saturn,
}

// VaraBala awards 45 virupas to the lord of the current weekday.
func VaraBala(p reftables.Planet, weekday jd.Weekday) float64 {
	if p == weekdayLords[weekday] {
		return 45.0
	}
	return 0
}

// HoraBala awards 60 virupas to the lord of the current planetary hour.
func HoraBala(p, horaLord reftables.Planet) float64 {
	if p == horaLord {
		return 60.0
	}
	return 0
}

// AyanaBala rewards a planet's declination tendency: diurnal planets
// gain strength moving north of the equator, nocturnal planets moving
// south (both scaled by |declination|/maxDeclination); Mercury gains
// either way.
func AyanaBala(p reftables.Planet, declinationDegrees float64) (float64, error) {
	const maxDeclination = 24.0
	fraction := math.Abs(declinationDegrees) / maxDeclination
	if fraction > 1 {
		fraction = 1
	}
	north := declinationDegrees >= 0
	switch {
	case p == reftables.Mercury:
		return 60.0 * fraction, nil
	case diurnalPlanets[p]:
		if north {
			return 60.0 * fraction, nil
		}
		return 60.0 * (1 - fraction), nil
	case nocturnalPlanets[p]:
		if !north {
			return 60.0 * fraction, nil
		}
		return 60.0 * (1 - fraction), nil
	default:
		return 0, fmt.Errorf("shadbala: no ayana class for %s", p)
	}
}

// yuddhaEligible are the five planets that can enter planetary war
// (conjunction within ~1 degree); Sun, Moon, and the nodes never do.
var yuddhaEligible = map[reftables.Planet]bool{
	reftables.Mars: true, reftables.Mercury: true, reftables.Jupiter: true,
	reftables.Venus: true, reftables.Saturn: true,
}

const yuddhaOrbDegrees = 1.0
const yuddhaBonus = 5.0

// YuddhaBala adjusts cheshta bala by planetary war: when two eligible
// planets are within orb, the one with the more southerly latitude (the
// traditional winner criterion) gains yuddhaBonus virupas and the loser
// loses it.
func YuddhaBala(p reftables.Planet, lon float64, latitude float64, others map[reftables.Planet]struct {
	Longitude float64
	Latitude  float64
}) float64 {
	if !yuddhaEligible[p] {
		return 0
	}
	adjustment := 0.0
	for other, state := range others {
		if other == p || !yuddhaEligible[other] {
			continue
		}
		if angle.Distance(lon, state.Longitude) > yuddhaOrbDegrees {
			continue
		}
		if latitude < state.Latitude {
			adjustment += yuddhaBonus
		} else {
			adjustment -= yuddhaBonus
		}
	}
	return adjustment
}
