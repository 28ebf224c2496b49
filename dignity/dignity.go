// Package dignity scores a planet's placement on the five-level
// exaltation/debilitation scale and combines natural with temporal
// friendship (spec.md 4.7), building directly on the reference tables
// reftables already carries.
package dignity

import (
	"fmt"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/reftables"
)

// Level is the five-step (seven-with-exact-endpoints) dignity scale, from
// strongest to weakest.
type Level int

const (
	ExactExaltation Level = iota
	Exaltation
	Moolatrikona
	OwnSign
	Neutral
	Debilitation
	ExactDebilitation
)

func (l Level) String() string {
	switch l {
	case ExactExaltation:
		return "ExactExaltation"
	case Exaltation:
		return "Exaltation"
	case Moolatrikona:
		return "Moolatrikona"
	case OwnSign:
		return "OwnSign"
	case Neutral:
		return "Neutral"
	case Debilitation:
		return "Debilitation"
	case ExactDebilitation:
		return "ExactDebilitation"
	default:
		return "Unknown"
	}
}

// exactOrbDegrees is the tolerance within which a placement counts as
// "exact" exaltation or debilitation.
const exactOrbDegrees = 1.0

// Score computes the dignity level of a planet at a sidereal longitude,
// given its retrograde state (needed for the Neecha Bhanga override: a
// planet retrograde in its own debilitation sign is treated as exalted).
func Score(p reftables.Planet, lon float64, retrograde bool) (Level, error) {
	signNum := angle.SignIndex(lon)
	sign := reftables.Sign(signNum)
	signLon := angle.SignLongitude(lon)

	if deb, ok := reftables.DebilitationPoint(p); ok && sign == deb.Sign {
		if retrograde {
			return Exaltation, nil // Neecha Bhanga override
		}
		if withinOrb(signLon, deb.Degree) {
			return ExactDebilitation, nil
		}
		return Debilitation, nil
	}

	if ex, ok := reftables.ExaltationPoints[p]; ok && sign == ex.Sign {
		if withinOrb(signLon, ex.Degree) {
			return ExactExaltation, nil
		}
		return Exaltation, nil
	}

	if mr, ok := reftables.MulatrikonaRanges[p]; ok && sign == mr.Sign && signLon >= mr.Start && signLon < mr.End {
		return Moolatrikona, nil
	}

	if owns, ok := reftables.OwnSigns[p]; ok {
		for _, s := range owns {
			if s == sign {
				return OwnSign, nil
			}
		}
	}

	return Neutral, nil
}

func withinOrb(signLon, point float64) bool {
	d := signLon - point
	if d < 0 {
		d = -d
	}
	return d <= exactOrbDegrees
}

// temporalFriendHouses are the house offsets (1-based, from self) that
// make a planet a temporal friend of the one occupying them.
var temporalFriendHouses = map[int]bool{2: true, 3: true, 4: true, 10: true, 11: true, 12: true}

// TemporalFriendship derives the temporal relationship of p2 as seen from
// p1, given each planet's sign. The offset is measured sign-to-sign
// (p2's sign minus p1's sign, 1-based, wrapped into 1..12).
func TemporalFriendship(p1Sign, p2Sign reftables.Sign) reftables.Friendship {
	offset := ((int(p2Sign)-int(p1Sign))%12+12)%12 + 1
	if temporalFriendHouses[offset] {
		return reftables.FriendshipFriend
	}
	return reftables.FriendshipEnemy
}

// friendshipScore maps the three-valued scale to a number Combined
// averages, and back.
var friendshipScore = map[reftables.Friendship]float64{
	reftables.FriendshipFriend:  1,
	reftables.FriendshipNeutral: 0,
	reftables.FriendshipEnemy:   -1,
}

// CombinedLevel is the five-level compound scale Combined collapses the
// averaged natural and temporal friendship onto, used by shadbala's
// saptavarga and vimsopaka bala: Great Friend, Friend, Neutral, Enemy,
// Great Enemy.
type CombinedLevel string

const (
	GreatFriend CombinedLevel = "GreatFriend"
	CFriend     CombinedLevel = "Friend"
	CNeutral    CombinedLevel = "Neutral"
	CEnemy      CombinedLevel = "Enemy"
	GreatEnemy  CombinedLevel = "GreatEnemy"
)

// Combined computes natural+temporal friendship of p2 (as seen from p1)
// and collapses the mean onto the five-level compound scale. p1Sign and
// p2Sign carry each planet's current sign, needed for temporal
// friendship; the Moon/Rahu/Ketu special cases (neither participates in
// the standard natural-friendship matrix the same way) must be resolved
// by the caller before calling this for those bodies.
func Combined(p1, p2 reftables.Planet, p1Sign, p2Sign reftables.Sign) (CombinedLevel, error) {
	natural, ok := reftables.NaturalFriendshipOf(p1, p2)
	if !ok {
		return "", fmt.Errorf("dignity: no natural friendship entry for %s/%s", p1, p2)
	}
	temporal := TemporalFriendship(p1Sign, p2Sign)

	mean := (friendshipScore[natural] + friendshipScore[temporal]) / 2.0
	switch {
	case mean >= 1.0:
		return GreatFriend, nil
	case mean > 0:
		return CFriend, nil
	case mean == 0:
		return CNeutral, nil
	case mean > -1.0:
		return CEnemy, nil
	default:
		return GreatEnemy, nil
	}
}
