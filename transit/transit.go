// Package transit computes Gochara (transit) effects: house-from-Moon
// effect lookup, vedha obstruction, argala intervention, and a combined
// strength rollup (spec.md 4.12), grounded on
// original_source/astrovedic/vedic/transits/gochara.py.
package transit

import (
	"fmt"

	"github.com/vedastra/jyotisha/ashtakavarga"
	"github.com/vedastra/jyotisha/reftables"
)

// Effect is the four-valued Gochara verdict for a house-from-Moon slot.
type Effect string

const (
	Favorable   Effect = "Favorable"
	Unfavorable Effect = "Unfavorable"
	Mixed       Effect = "Mixed"
	NeutralEffect Effect = "Neutral"
)

// HouseEffect pairs a verdict with a short description.
type HouseEffect struct {
	Effect      Effect
	Description string
}

func e(effect Effect, desc string) HouseEffect { return HouseEffect{effect, desc} }

// effectTable gives, for each of the nine grahas, the Gochara verdict at
// each of the twelve houses counted from the natal Moon.
var effectTable = map[reftables.Planet]map[int]HouseEffect{
	reftables.Sun: {
		1: e(Unfavorable, "health strain, ego friction"), 2: e(Unfavorable, "financial strain"),
		3: e(Favorable, "courage, initiative"), 4: e(Unfavorable, "domestic stress"),
		5: e(Favorable, "recognition, creativity"), 6: e(Favorable, "victory over rivals"),
		7: e(Unfavorable, "relationship friction"), 8: e(Unfavorable, "health concerns"),
		9: e(Favorable, "fortune, higher learning"), 10: e(Favorable, "career recognition"),
		11: e(Favorable, "gains fulfilled"), 12: e(Unfavorable, "expenses, isolation"),
	},
	reftables.Moon: {
		1: e(Mixed, "emotional flux"), 2: e(Favorable, "financial gain, family harmony"),
		3: e(Favorable, "communication, short travel"), 4: e(Favorable, "domestic ease"),
		5: e(Favorable, "romance, creativity"), 6: e(Unfavorable, "health strain"),
		7: e(Mixed, "relationship flux"), 8: e(Unfavorable, "emotional distress"),
		9: e(Favorable, "spiritual growth"), 10: e(Favorable, "public recognition"),
		11: e(Favorable, "social gains"), 12: e(Unfavorable, "isolation, expense"),
	},
	reftables.Mercury: {
		1: e(Mixed, "intellectual focus"), 2: e(Favorable, "gains via communication"),
		3: e(Favorable, "writing, short travel"), 4: e(Mixed, "home discussion"),
		5: e(Favorable, "creative thought"), 6: e(Favorable, "analytical work"),
		7: e(Mixed, "negotiation, contracts"), 8: e(Unfavorable, "mental strain"),
		9: e(Favorable, "higher education"), 10: e(Favorable, "professional communication"),
		11: e(Favorable, "networking gains"), 12: e(Unfavorable, "confusion, isolation"),
	},
	reftables.Venus: {
		1: e(Favorable, "charm, pleasure"), 2: e(Favorable, "financial gain, harmony"),
		3: e(Favorable, "pleasant communication"), 4: e(Favorable, "domestic harmony"),
		5: e(Favorable, "romance, creativity"), 6: e(Mixed, "service, balance"),
		7: e(Favorable, "partnership, marriage"), 8: e(Mixed, "shared resources"),
		9: e(Favorable, "travel, culture"), 10: e(Mixed, "career in arts"),
		11: e(Favorable, "social enjoyment"), 12: e(Mixed, "secret affection"),
	},
	reftables.Mars: {
		1: e(Unfavorable, "aggression, accidents"), 2: e(Unfavorable, "financial loss"),
		3: e(Favorable, "courage, siblings"), 4: e(Unfavorable, "domestic conflict"),
		5: e(Mixed, "competitive energy"), 6: e(Favorable, "victory over rivals"),
		7: e(Unfavorable, "relationship conflict"), 8: e(Unfavorable, "accidents, disputes"),
		9: e(Favorable, "religious activity"), 10: e(Favorable, "career advancement"),
		11: e(Favorable, "gains via effort"), 12: e(Unfavorable, "hidden enemies"),
	},
	reftables.Jupiter: {
		1: e(Favorable, "growth, optimism"), 2: e(Favorable, "prosperity"),
		3: e(Favorable, "positive communication"), 4: e(Favorable, "domestic happiness"),
		5: e(Favorable, "children, education"), 6: e(Mixed, "service, debt"),
		7: e(Mixed, "partnership, marriage"), 8: e(Mixed, "inheritance, research"),
		9: e(Favorable, "fortune, higher learning"), 10: e(Favorable, "career recognition"),
		11: e(Favorable, "gains fulfilled"), 12: e(Mixed, "spiritual expense"),
	},
	reftables.Saturn: {
		1: e(Unfavorable, "health, restriction"), 2: e(Unfavorable, "financial restriction"),
		3: e(Favorable, "disciplined focus"), 4: e(Unfavorable, "domestic challenge"),
		5: e(Unfavorable, "creative block"), 6: e(Favorable, "disciplined health gain"),
		7: e(Unfavorable, "partnership delay"), 8: e(Favorable, "transformation via hardship"),
		9: e(Unfavorable, "travel, education delay"), 10: e(Favorable, "career via hard work"),
		11: e(Favorable, "gains via perseverance"), 12: e(Unfavorable, "isolation, tests"),
	},
	reftables.Rahu: {
		1: e(Unfavorable, "identity confusion"), 2: e(Mixed, "unusual finances"),
		3: e(Favorable, "unconventional communication"), 4: e(Unfavorable, "domestic disturbance"),
		5: e(Mixed, "unconventional romance"), 6: e(Favorable, "overcoming rivals"),
		7: e(Unfavorable, "deceptive partnership"), 8: e(Mixed, "occult interest"),
		9: e(Mixed, "unorthodox belief"), 10: e(Mixed, "sudden recognition"),
		11: e(Favorable, "unusual gains"), 12: e(Unfavorable, "hidden disturbance"),
	},
	reftables.Ketu: {
		1: e(Unfavorable, "identity detachment"), 2: e(Unfavorable, "financial detachment"),
		3: e(Mixed, "psychic communication"), 4: e(Unfavorable, "domestic detachment"),
		5: e(Unfavorable, "detachment from pleasure"), 6: e(Favorable, "healing, overcoming rivals"),
		7: e(Unfavorable, "relationship dissolution"), 8: e(Favorable, "spiritual transformation"),
		9: e(Favorable, "spiritual wisdom"), 10: e(Unfavorable, "career setback"),
		11: e(Mixed, "detachment from desire"), 12: e(Favorable, "spiritual liberation"),
	},
}

// HouseFromMoon returns the 1..12 house index of a transiting sign
// counted from the natal Moon's sign.
func HouseFromMoon(moonSign, transitSign reftables.Sign) int {
	return ((int(transitSign)-int(moonSign))%12+12)%12 + 1
}

// EffectOf looks up a planet's Gochara verdict at a house-from-Moon slot.
// An unlisted house (never happens for 1..12 in this table) falls back to
// Neutral rather than erroring, matching the source's default branch.
func EffectOf(p reftables.Planet, houseFromMoon int) (HouseEffect, error) {
	row, ok := effectTable[p]
	if !ok {
		return HouseEffect{}, fmt.Errorf("transit: no Gochara table for %s", p)
	}
	if eff, ok := row[houseFromMoon]; ok {
		return eff, nil
	}
	return HouseEffect{NeutralEffect, "no specific effect"}, nil
}

// vedhaHouse gives the single obstructing house for each house-from-Moon.
var vedhaHouse = map[int]int{1: 7, 2: 12, 3: 11, 4: 10, 5: 9, 6: 8, 7: 1, 8: 6, 9: 5, 10: 4, 11: 3, 12: 2}

// argalaHouses gives the three supporting houses for each house-from-Moon.
var argalaHouses = map[int][3]int{
	1: {2, 4, 11}, 2: {3, 5, 12}, 3: {4, 6, 1}, 4: {5, 7, 2},
	5: {6, 8, 3}, 6: {7, 9, 4}, 7: {8, 10, 5}, 8: {9, 11, 6},
	9: {10, 12, 7}, 10: {11, 1, 8}, 11: {12, 2, 9}, 12: {1, 3, 10},
}

// VedhaObstructors returns which of the other transiting planets occupy
// the house that obstructs the given house-from-Moon.
func VedhaObstructors(houseFromMoon int, transitingHouses map[reftables.Planet]int) []reftables.Planet {
	obstructingHouse := vedhaHouse[houseFromMoon]
	var obstructors []reftables.Planet
	for p, h := range transitingHouses {
		if h == obstructingHouse {
			obstructors = append(obstructors, p)
		}
	}
	return obstructors
}

// ArgalaSupporters returns which of the other transiting planets occupy
// one of the three houses that intervene in favor of the given
// house-from-Moon.
func ArgalaSupporters(houseFromMoon int, transitingHouses map[reftables.Planet]int) []reftables.Planet {
	houses := argalaHouses[houseFromMoon]
	var supporters []reftables.Planet
	for p, h := range transitingHouses {
		for _, supportHouse := range houses {
			if h == supportHouse {
				supporters = append(supporters, p)
				break
			}
		}
	}
	return supporters
}

// Strength is the Gochara strength rollup: a numeric score and its
// labelled bucket.
type Strength struct {
	Score  float64
	Bucket string
}

// ComputeStrength rolls a base effect score (+/-2 for favourable or
// unfavourable, 0 otherwise) together with vedha (-1 each) and argala
// (+/-0.5 towards the current sign of the score) adjustments into a
// five-bucket strength verdict.
func ComputeStrength(effect Effect, vedhaCount, argalaCount int) Strength {
	score := 0.0
	switch effect {
	case Favorable:
		score = 2
	case Unfavorable:
		score = -2
	}

	score -= float64(vedhaCount)

	for i := 0; i < argalaCount; i++ {
		switch {
		case score > 0:
			score += 0.5
		case score < 0:
			score -= 0.5
		}
	}

	var bucket string
	switch {
	case score >= 2:
		bucket = "Strong Favorable"
	case score > 0:
		bucket = "Moderate Favorable"
	case score == 0:
		bucket = "Neutral"
	case score > -2:
		bucket = "Moderate Unfavorable"
	default:
		bucket = "Strong Unfavorable"
	}

	return Strength{score, bucket}
}

// bhinnaContributor maps the seven classical grahas onto ashtakavarga's
// contributor identifiers; Rahu and Ketu carry no bhinna-ashtakavarga and
// are excluded per tradition.
var bhinnaContributor = map[reftables.Planet]ashtakavarga.Contributor{
	reftables.Sun: ashtakavarga.ContribSun, reftables.Moon: ashtakavarga.ContribMoon,
	reftables.Mars: ashtakavarga.ContribMars, reftables.Mercury: ashtakavarga.ContribMercury,
	reftables.Jupiter: ashtakavarga.ContribJupiter, reftables.Venus: ashtakavarga.ContribVenus,
	reftables.Saturn: ashtakavarga.ContribSaturn,
}

// BindusForTransit returns a planet's bhinna-ashtakavarga bindu count in
// its current transiting sign, or 0 if the planet carries no bhinna chart
// (Rahu, Ketu).
func BindusForTransit(p reftables.Planet, transitSign reftables.Sign, positions ashtakavarga.Positions) (int, error) {
	contributor, ok := bhinnaContributor[p]
	if !ok {
		return 0, nil
	}
	bhinna, err := ashtakavarga.ComputeBhinna(contributor, positions)
	if err != nil {
		return 0, fmt.Errorf("transit: bindus for %s: %w", p, err)
	}
	return bhinna.Bindus[int(transitSign)%12], nil
}

// Record is the full per-planet Gochara transit record spec.md 4.3's
// transit-record shape describes.
type Record struct {
	Planet             reftables.Planet
	HouseFromMoon      int
	Effect             HouseEffect
	VedhaObstructors   []reftables.Planet
	ArgalaSupporters   []reftables.Planet
	AshtakavargaBindus int
	Strength           Strength
}

// BuildRecord assembles one planet's full transit record: effect lookup,
// vedha/argala overlays (evaluated against every other transiting
// planet's house-from-Moon), ashtakavarga bindu count, and strength
// rollup.
func BuildRecord(p reftables.Planet, moonSign, transitSign reftables.Sign, transitingHousesFromMoon map[reftables.Planet]int, positions ashtakavarga.Positions) (Record, error) {
	houseFromMoon := HouseFromMoon(moonSign, transitSign)
	effect, err := EffectOf(p, houseFromMoon)
	if err != nil {
		return Record{}, err
	}

	others := make(map[reftables.Planet]int, len(transitingHousesFromMoon))
	for op, h := range transitingHousesFromMoon {
		if op != p {
			others[op] = h
		}
	}
	vedha := VedhaObstructors(houseFromMoon, others)
	argala := ArgalaSupporters(houseFromMoon, others)

	bindus, err := BindusForTransit(p, transitSign, positions)
	if err != nil {
		return Record{}, err
	}

	strength := ComputeStrength(effect.Effect, len(vedha), len(argala))

	return Record{
		Planet:             p,
		HouseFromMoon:      houseFromMoon,
		Effect:             effect,
		VedhaObstructors:   vedha,
		ArgalaSupporters:   argala,
		AshtakavargaBindus: bindus,
		Strength:           strength,
	}, nil
}
