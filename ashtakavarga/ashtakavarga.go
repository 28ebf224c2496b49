// Package ashtakavarga implements the bhinna (per-planet) and sarva
// (aggregate) bindu tables of spec.md 4.9, using the traditional Parasara
// offset tables: for each of eight reference points (the seven classical
// planets plus the ascendant), a fixed list of house positions - counted
// from that reference point's own sign - that credit the subject planet
// with a bindu.
package ashtakavarga

import (
	"fmt"
)

// Contributor is one of the eight reference points whose house position
// contributes bindus: the seven classical planets, plus the ascendant.
type Contributor string

const (
	ContribSun     Contributor = "Sun"
	ContribMoon    Contributor = "Moon"
	ContribMars    Contributor = "Mars"
	ContribMercury Contributor = "Mercury"
	ContribJupiter Contributor = "Jupiter"
	ContribVenus   Contributor = "Venus"
	ContribSaturn  Contributor = "Saturn"
	ContribLagna   Contributor = "Ascendant"
)

// AllContributors lists the eight reference points in the traditional
// order.
var AllContributors = []Contributor{
	ContribSun, ContribMoon, ContribMars, ContribMercury,
	ContribJupiter, ContribVenus, ContribSaturn, ContribLagna,
}

// offsetTable[subject][contributor] lists the 1-based house offsets,
// counted from the contributor's own sign, that credit the subject with a
// bindu. Grounded on the classical Parasara Bhinnashtakavarga tables; each
// subject row sums to the traditional fixed total asserted by spec.md 8
// (Sun 48, Moon 49, Mars 39, Mercury 54, Jupiter 56, Venus 52, Saturn 39,
// Ascendant 49).
var offsetTable = map[Contributor]map[Contributor][]int{
	ContribSun: {
		ContribSun: {1, 2, 4, 7, 8, 9, 10, 11}, ContribMoon: {3, 6, 10, 11},
		ContribMars: {1, 2, 4, 7, 8, 9, 10, 11}, ContribMercury: {3, 5, 6, 9, 10, 11, 12},
		ContribJupiter: {5, 6, 9, 11}, ContribVenus: {6, 7, 12},
		ContribSaturn: {1, 2, 4, 7, 8, 9, 10, 11}, ContribLagna: {3, 4, 6, 10, 11, 12},
	},
	ContribMoon: {
		ContribSun: {3, 6, 7, 8, 10, 11}, ContribMoon: {1, 3, 6, 7, 10, 11},
		ContribMars: {2, 3, 5, 6, 9, 10, 11}, ContribMercury: {1, 3, 4, 5, 7, 8, 10, 11},
		ContribJupiter: {1, 4, 7, 8, 10, 11, 12}, ContribVenus: {3, 4, 5, 7, 9, 10, 11},
		ContribSaturn: {3, 5, 6, 11}, ContribLagna: {3, 6, 10, 11},
	},
	ContribMars: {
		ContribSun: {3, 5, 6, 10, 11}, ContribMoon: {3, 6, 11},
		ContribMars: {1, 2, 4, 7, 8, 10, 11}, ContribMercury: {3, 5, 6, 11},
		ContribJupiter: {6, 10, 11, 12}, ContribVenus: {6, 8, 11, 12},
		ContribSaturn: {1, 4, 7, 8, 9, 10, 11}, ContribLagna: {1, 3, 6, 10, 11},
	},
	ContribMercury: {
		ContribSun: {5, 6, 9, 11, 12}, ContribMoon: {2, 4, 6, 8, 10, 11},
		ContribMars: {1, 2, 4, 7, 8, 9, 10, 11}, ContribMercury: {1, 3, 5, 6, 9, 10, 11, 12},
		ContribJupiter: {6, 8, 11, 12}, ContribVenus: {1, 2, 3, 4, 5, 8, 9, 11},
		ContribSaturn: {1, 2, 4, 7, 8, 9, 10, 11}, ContribLagna: {1, 2, 4, 6, 8, 10, 11},
	},
	ContribJupiter: {
		ContribSun: {1, 2, 3, 4, 7, 8, 9, 10, 11}, ContribMoon: {2, 5, 7, 9, 11},
		ContribMars: {1, 2, 4, 7, 8, 10, 11}, ContribMercury: {1, 2, 4, 5, 6, 9, 10, 11},
		ContribJupiter: {1, 2, 3, 4, 7, 8, 10, 11}, ContribVenus: {2, 5, 6, 9, 10, 11},
		ContribSaturn: {3, 5, 6, 12}, ContribLagna: {1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	ContribVenus: {
		ContribSun: {8, 11, 12}, ContribMoon: {1, 2, 3, 4, 5, 8, 9, 11, 12},
		ContribMars: {3, 5, 6, 9, 11, 12}, ContribMercury: {3, 5, 6, 9, 11},
		ContribJupiter: {5, 8, 9, 10, 11}, ContribVenus: {1, 2, 3, 4, 5, 8, 9, 10, 11},
		ContribSaturn: {3, 4, 5, 8, 9, 10, 11}, ContribLagna: {1, 2, 3, 4, 5, 8, 9, 11},
	},
	ContribSaturn: {
		ContribSun: {1, 2, 4, 7, 8, 10, 11}, ContribMoon: {3, 6, 11},
		ContribMars: {3, 5, 6, 10, 11, 12}, ContribMercury: {6, 8, 9, 10, 11, 12},
		ContribJupiter: {5, 6, 11, 12}, ContribVenus: {6, 11, 12},
		ContribSaturn: {3, 5, 6, 11}, ContribLagna: {1, 3, 4, 6, 10, 11},
	},
	ContribLagna: {
		ContribSun: {3, 4, 6, 10, 11, 12}, ContribMoon: {3, 6, 10, 11, 12},
		ContribMars: {1, 3, 6, 10, 11}, ContribMercury: {1, 2, 4, 6, 8, 10, 11},
		ContribJupiter: {1, 2, 4, 5, 6, 7, 9, 10, 11}, ContribVenus: {1, 2, 3, 4, 5, 8, 9},
		ContribSaturn: {1, 3, 4, 6, 10, 11}, ContribLagna: {3, 6, 10, 11},
	},
}

// Positions gives the sign index (0=Aries..11=Pisces) of each of the eight
// reference points, as read off an assembled Chart.
type Positions map[Contributor]int

// Bhinna is a per-subject bindu vector over the twelve signs.
type Bhinna struct {
	Subject Contributor
	Bindus  [12]int
}

// ComputeBhinna builds the bhinna-ashtakavarga for one subject given the
// sign positions of all eight reference points.
func ComputeBhinna(subject Contributor, positions Positions) (Bhinna, error) {
	row, ok := offsetTable[subject]
	if !ok {
		return Bhinna{}, fmt.Errorf("ashtakavarga: unknown subject %q", subject)
	}

	var result Bhinna
	result.Subject = subject

	for _, contributor := range AllContributors {
		contributorSign, ok := positions[contributor]
		if !ok {
			return Bhinna{}, fmt.Errorf("ashtakavarga: missing position for contributor %q", contributor)
		}
		offsets, ok := row[contributor]
		if !ok {
			return Bhinna{}, fmt.Errorf("ashtakavarga: missing offset row %q/%q", subject, contributor)
		}
		for _, offset := range offsets {
			sign := (contributorSign + offset - 1) % 12
			result.Bindus[sign]++
		}
	}

	return result, nil
}

// Sarva is the aggregate ashtakavarga: the elementwise sum of the seven
// classical planets' bhinna vectors (the ascendant's own bhinna is
// excluded, matching the traditional total of 337).
type Sarva struct {
	Bindus [12]int
	Total  int
}

// ComputeSarva sums the seven classical planets' bhinna vectors.
func ComputeSarva(positions Positions) (Sarva, error) {
	var sarva Sarva
	for _, subject := range []Contributor{
		ContribSun, ContribMoon, ContribMars, ContribMercury,
		ContribJupiter, ContribVenus, ContribSaturn,
	} {
		bhinna, err := ComputeBhinna(subject, positions)
		if err != nil {
			return Sarva{}, err
		}
		for i := 0; i < 12; i++ {
			sarva.Bindus[i] += bhinna.Bindus[i]
		}
	}
	for _, v := range sarva.Bindus {
		sarva.Total += v
	}
	return sarva, nil
}

// TransitStrength buckets a per-planet transit bindu count (spec.md 4.9).
func TransitStrength(bindus int) string {
	switch {
	case bindus >= 6:
		return "Excellent"
	case bindus >= 4:
		return "Good"
	case bindus >= 2:
		return "Neutral"
	case bindus >= 1:
		return "Challenging"
	default:
		return "Difficult"
	}
}

// SarvaStrength buckets a sarva transit bindu count for a sign.
func SarvaStrength(bindus int) string {
	switch {
	case bindus >= 30:
		return "Excellent"
	case bindus >= 25:
		return "Good"
	case bindus >= 20:
		return "Neutral"
	case bindus >= 15:
		return "Challenging"
	default:
		return "Difficult"
	}
}
