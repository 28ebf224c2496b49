// Package compatibility scores Vedic marriage (guna milan) compatibility
// between two birth charts: the eight-kuta table, dosha detection with
// cancellation, and dasha/navamsha overlays (spec.md 4.11). No surviving
// source exists in this retrieval pack for the kuta/dosha tables
// themselves -- original_source/astrovedic/vedic/compatibility/analysis.py
// imports them from kuta.py and dosha.py, but neither file is present, only
// the higher-level orchestration that calls them. The tables below follow
// standard classical conventions (Parasara's Ashtakuta) rather than any
// surviving implementation; see DESIGN.md.
package compatibility

import (
	"github.com/vedastra/jyotisha/reftables"
)

// Partner is the subset of a birth chart the compatibility engine reads.
type Partner struct {
	MoonSign      reftables.Sign
	MoonNakshatra int // 1..27

	MarsHouseFromMoon      int // 1..12
	MarsHouseFromAscendant int
	SaturnHouseFromMoon    int

	SunLongitude   float64
	MoonLongitude  float64
	RahuLongitude  float64
	KetuLongitude  float64

	MahadashaLord  reftables.Planet
	AntardashaLord reftables.Planet
}

// KutaScore is one of the eight guna milan factors.
type KutaScore struct {
	Name   string
	Points float64
	Max    float64
}

// Fraction returns the kuta's points as a 0..1 fraction of its maximum.
func (k KutaScore) Fraction() float64 {
	if k.Max == 0 {
		return 0
	}
	return k.Points / k.Max
}

var varnaRank = map[reftables.Varna]int{
	reftables.Shudra: 0, reftables.Vaishya: 1, reftables.Kshatriya: 2, reftables.Brahmin: 3,
}

// VarnaKuta (max 1) scores whether the girl's varna rank is at or above
// the boy's -- the traditional reading of a spiritually compatible match.
func VarnaKuta(boy, girl Partner) KutaScore {
	points := 0.0
	if varnaRank[reftables.VarnaOf(girl.MoonSign)] >= varnaRank[reftables.VarnaOf(boy.MoonSign)] {
		points = 1.0
	}
	return KutaScore{"Varna", points, 1.0}
}

// vashyaCompatible lists the differing vashya-group pairs that earn a
// partial match; every other differing pair scores zero.
var vashyaCompatible = map[reftables.Vashya]map[reftables.Vashya]bool{
	reftables.VashyaManava:      {reftables.VashyaJalachara: true},
	reftables.VashyaJalachara:   {reftables.VashyaManava: true},
	reftables.VashyaChatushpada: {reftables.VashyaVanachara: true},
	reftables.VashyaVanachara:   {reftables.VashyaChatushpada: true},
}

// VashyaKuta (max 2) scores the mutual-control compatibility of the two
// moon-sign groups: full marks for the same group, half marks for a
// listed compatible pair, none otherwise.
func VashyaKuta(boy, girl Partner) KutaScore {
	a, b := reftables.VashyaOf(boy.MoonSign), reftables.VashyaOf(girl.MoonSign)
	points := 0.0
	switch {
	case a == b:
		points = 2.0
	case vashyaCompatible[a][b]:
		points = 1.0
	}
	return KutaScore{"Vashya", points, 2.0}
}

// YoniKuta (max 4) scores the animal-symbol match of the two nakshatras.
func YoniKuta(boy, girl Partner) (KutaScore, bool) {
	a, ok1 := reftables.YoniOf(boy.MoonNakshatra)
	b, ok2 := reftables.YoniOf(girl.MoonNakshatra)
	if !ok1 || !ok2 {
		return KutaScore{}, false
	}
	return KutaScore{"Yoni", reftables.YoniScore(a, b), 4.0}, true
}

var ganaScore = map[reftables.Gana]map[reftables.Gana]float64{
	reftables.Deva:     {reftables.Deva: 6, reftables.Manushya: 5, reftables.Rakshasa: 1},
	reftables.Manushya: {reftables.Deva: 5, reftables.Manushya: 6, reftables.Rakshasa: 1},
	reftables.Rakshasa: {reftables.Deva: 1, reftables.Manushya: 1, reftables.Rakshasa: 6},
}

// GanaKuta (max 6) scores the temperament-group match of the two
// nakshatras, symmetrised from the classical (asymmetric) boy/girl table.
func GanaKuta(boy, girl Partner) (KutaScore, bool) {
	a, ok1 := reftables.GanaOf(boy.MoonNakshatra)
	b, ok2 := reftables.GanaOf(girl.MoonNakshatra)
	if !ok1 || !ok2 {
		return KutaScore{}, false
	}
	return KutaScore{"Gana", ganaScore[a][b], 6.0}, true
}

// bhakootMaleficOffsets are the sign-distance offsets (1-based, counted
// from the boy's moon sign to the girl's) classically treated as
// shadashtaka (6/8) or dwidwadasha (2/12) doshas, scoring zero.
var bhakootMaleficOffsets = map[int]bool{2: true, 6: true, 8: true, 12: true}

// BhakootKuta (max 7) scores the moon-sign distance between the two
// charts, zero on a malefic offset and full marks otherwise.
func BhakootKuta(boy, girl Partner) KutaScore {
	offset := ((int(girl.MoonSign)-int(boy.MoonSign))%12+12)%12 + 1
	if bhakootMaleficOffsets[offset] {
		return KutaScore{"Bhakoot", 0, 7.0}
	}
	return KutaScore{"Bhakoot", 7.0, 7.0}
}

// NadiKuta (max 8) scores the humor-group match of the two nakshatras:
// the same nadi is the single most heavily weighted dosha in Ashtakuta,
// traditionally scoring zero regardless of every other factor.
func NadiKuta(boy, girl Partner) (KutaScore, bool) {
	a, ok1 := reftables.NadiOf(boy.MoonNakshatra)
	b, ok2 := reftables.NadiOf(girl.MoonNakshatra)
	if !ok1 || !ok2 {
		return KutaScore{}, false
	}
	if a == b {
		return KutaScore{"Nadi", 0, 8.0}, true
	}
	return KutaScore{"Nadi", 8.0, 8.0}, true
}

// grahaMaitriPoints scores a pair of natural-friendship readings (lord A
// as seen from lord B, and vice versa) onto the classical 0..5 scale.
func grahaMaitriPoints(ab, ba reftables.Friendship) float64 {
	score := map[reftables.Friendship]int{reftables.FriendshipFriend: 1, reftables.FriendshipNeutral: 0, reftables.FriendshipEnemy: -1}
	sum := score[ab] + score[ba]
	switch {
	case sum >= 2:
		return 5
	case sum == 1:
		return 4
	case sum == 0:
		return 3
	case sum == -1:
		return 1
	default:
		return 0
	}
}

// GrahaMaitriKuta (max 5) scores the mutual natural friendship of the two
// moon-sign lords.
func GrahaMaitriKuta(boy, girl Partner) (KutaScore, error) {
	lordA, ok := reftables.RulerOf(boy.MoonSign)
	if !ok {
		return KutaScore{}, errNoRuler(boy.MoonSign)
	}
	lordB, ok := reftables.RulerOf(girl.MoonSign)
	if !ok {
		return KutaScore{}, errNoRuler(girl.MoonSign)
	}
	if lordA == lordB {
		return KutaScore{"GrahaMaitri", 5, 5}, nil
	}
	ab, ok := reftables.NaturalFriendshipOf(lordA, lordB)
	if !ok {
		return KutaScore{}, errNoFriendship(lordA, lordB)
	}
	ba, ok := reftables.NaturalFriendshipOf(lordB, lordA)
	if !ok {
		return KutaScore{}, errNoFriendship(lordB, lordA)
	}
	return KutaScore{"GrahaMaitri", grahaMaitriPoints(ab, ba), 5}, nil
}

// AllKutas runs every kuta that needs no external package, GrahaMaitri
// included, and returns their scores; Tara is not included, since it
// needs the sarvatobhadra package. Totals are left to the caller.
func AllKutas(boy, girl Partner) ([]KutaScore, error) {
	var scores []KutaScore
	scores = append(scores, VarnaKuta(boy, girl))
	scores = append(scores, VashyaKuta(boy, girl))
	if k, ok := YoniKuta(boy, girl); ok {
		scores = append(scores, k)
	} else {
		return nil, errBadNakshatra(boy.MoonNakshatra, girl.MoonNakshatra)
	}
	gm, err := GrahaMaitriKuta(boy, girl)
	if err != nil {
		return nil, err
	}
	scores = append(scores, gm)
	if k, ok := GanaKuta(boy, girl); ok {
		scores = append(scores, k)
	} else {
		return nil, errBadNakshatra(boy.MoonNakshatra, girl.MoonNakshatra)
	}
	scores = append(scores, BhakootKuta(boy, girl))
	if k, ok := NadiKuta(boy, girl); ok {
		scores = append(scores, k)
	} else {
		return nil, errBadNakshatra(boy.MoonNakshatra, girl.MoonNakshatra)
	}
	return scores, nil
}
