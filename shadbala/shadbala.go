// Package shadbala computes the six-component planetary strength engine
// of spec.md 4.8 in virupas: sthana, dig, kala, cheshta, naisargika, and
// drg bala, plus vimsopaka bala and bhava bala. Grounded on
// original_source/astrovedic/vedic/shadbala/sthana_bala.py,
// cheshta_bala.py, and advanced.py, reusing reftables' dignity and
// friendship tables and the dignity package's five-level scale.
package shadbala

import (
	"fmt"
	"math"

	"github.com/vedastra/jyotisha/dignity"
	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/reftables"
	"github.com/vedastra/jyotisha/varga"
)

// sevenGrahas are the planets the strength engine operates on (nodes
// carry zero cheshta/ojha-yugma bala but still participate elsewhere).
var sevenGrahas = []reftables.Planet{
	reftables.Sun, reftables.Moon, reftables.Mars, reftables.Mercury,
	reftables.Jupiter, reftables.Venus, reftables.Saturn,
}

// StrengthInput is one planet's observed state, the minimum the engine
// needs independent of the chart assembly layer.
type StrengthInput struct {
	Planet     reftables.Planet
	Longitude  float64 // sidereal
	Speed      float64
	Retrograde bool
	HouseFromAsc int // 1..12, house position counted from the ascendant
}

// Sthana is the five-term placement-strength subtotal.
type Sthana struct {
	Uchcha     float64
	Saptavarga float64
	OjhaYugma  float64
	Kendradi   float64
	Drekkana   float64
}

// Total sums the five sthana sub-components.
func (s Sthana) Total() float64 {
	return s.Uchcha + s.Saptavarga + s.OjhaYugma + s.Kendradi + s.Drekkana
}

// UchchaBala is 0 at debilitation, 60 at exaltation, linear in arc
// distance; a planet retrograde in its debilitation sign is granted the
// full 60 (Neecha Bhanga).
func UchchaBala(p reftables.Planet, lon float64, retrograde bool) (float64, error) {
	ex, ok := reftables.ExaltationPoints[p]
	if !ok {
		return 0, fmt.Errorf("shadbala: no exaltation point for %s", p)
	}
	deb, _ := reftables.DebilitationPoint(p)

	exaltPoint := float64(ex.Sign)*30 + ex.Degree
	debPoint := float64(deb.Sign)*30 + deb.Degree

	if retrograde && reftables.Sign(angle.SignIndex(lon)) == deb.Sign {
		return 60.0, nil
	}

	distFromExalt := angle.Distance(lon, exaltPoint)
	distFromDeb := angle.Distance(lon, debPoint)
	if distFromExalt <= 180 {
		return 60.0 * (1 - distFromExalt/180.0), nil
	}
	return 60.0 * (distFromDeb / 180.0), nil
}

// saptavargaPoints maps a dignity.Level to its fixed virupa points.
var saptavargaPoints = map[dignity.Level]float64{
	dignity.ExactExaltation:   60, // treated as full exaltation strength within saptavarga
	dignity.Exaltation:        60,
	dignity.Moolatrikona:      45,
	dignity.OwnSign:           30,
	dignity.ExactDebilitation: 0,
	dignity.Debilitation:      0,
}

// friendshipPoints maps the combined five-level friendship scale (used
// when a sign is neither own, Moolatrikona, nor exaltation/debilitation)
// to its virupa points.
var friendshipPoints = map[dignity.CombinedLevel]float64{
	dignity.GreatFriend: 22.5,
	dignity.CFriend:     15,
	dignity.CNeutral:    7.5,
	dignity.CEnemy:      3.75,
	dignity.GreatEnemy:  1.875,
}

// saptavargaSchemes are the seven divisional charts saptavarga sums
// across (spec.md 4.8).
var saptavargaSchemes = []varga.Scheme{varga.D1, varga.D2, varga.D3, varga.D7, varga.D9, varga.D12, varga.D30}

// SaptavargaBala sums virupa points for a planet's dignity across the
// seven saptavarga charts; the sign lord relative to self drives the
// combined-friendship lookup when no tighter dignity applies.
func SaptavargaBala(p reftables.Planet, lon float64) (float64, error) {
	total := 0.0
	for _, scheme := range saptavargaSchemes {
		vargaLon, err := varga.Project(angle.Norm(lon), scheme)
		if err != nil {
			return 0, fmt.Errorf("shadbala: saptavarga %v: %w", scheme, err)
		}
		lvl, err := dignity.Score(p, vargaLon, false)
		if err != nil {
			return 0, fmt.Errorf("shadbala: saptavarga dignity: %w", err)
		}
		if pts, ok := saptavargaPoints[lvl]; ok {
			total += pts
			continue
		}
		sign := reftables.Sign(angle.SignIndex(vargaLon))
		lord, ok := reftables.RulerOf(sign)
		if !ok {
			return 0, fmt.Errorf("shadbala: saptavarga: no ruler for sign %v", sign)
		}
		combined, err := dignity.Combined(p, lord, reftables.Sign(angle.SignIndex(lon)), sign)
		if err != nil {
			return 0, fmt.Errorf("shadbala: saptavarga friendship: %w", err)
		}
		total += friendshipPoints[combined]
	}
	return total, nil
}

// ojhaYugmaOddPreferred says which parity (odd=true) each planet prefers;
// Mercury always scores, independent of parity.
var ojhaYugmaOddPreferred = map[reftables.Planet]bool{
	reftables.Sun: true, reftables.Mars: true, reftables.Jupiter: true,
	reftables.Moon: false, reftables.Venus: false, reftables.Saturn: false,
}

// OjhaYugmaBala awards 15 virupas if the planet sits in its preferred
// parity sign in both D1 and D9; Mercury always qualifies; nodes score 0.
func OjhaYugmaBala(p reftables.Planet, d1Lon float64) (float64, error) {
	if p == reftables.Rahu || p == reftables.Ketu {
		return 0, nil
	}
	if p == reftables.Mercury {
		return 15.0, nil
	}
	preferOdd, ok := ojhaYugmaOddPreferred[p]
	if !ok {
		return 0, fmt.Errorf("shadbala: no ojha-yugma preference for %s", p)
	}

	d1Sign := reftables.Sign(angle.SignIndex(d1Lon))
	d9Lon, err := varga.Project(angle.Norm(d1Lon), varga.D9)
	if err != nil {
		return 0, fmt.Errorf("shadbala: ojha-yugma D9: %w", err)
	}
	d9Sign := reftables.Sign(angle.SignIndex(d9Lon))

	d1Odd := reftables.IsOdd(d1Sign)
	d9Odd := reftables.IsOdd(d9Sign)
	if d1Odd == preferOdd && d9Odd == preferOdd {
		return 15.0, nil
	}
	return 0, nil
}

// KendradiBala is 60 in an angular house (1,4,7,10), 30 in a succedent
// house (2,5,8,11), 15 in a cadent house (3,6,9,12).
func KendradiBala(houseFromAsc int) (float64, error) {
	switch houseFromAsc {
	case 1, 4, 7, 10:
		return 60.0, nil
	case 2, 5, 8, 11:
		return 30.0, nil
	case 3, 6, 9, 12:
		return 15.0, nil
	default:
		return 0, fmt.Errorf("shadbala: invalid house %d", houseFromAsc)
	}
}

// gender and planetGenders classify each classical planet as male,
// female, or neutral for the drekkana-gender match.
type gender int

const (
	male gender = iota
	female
	neutral
)

var planetGenders = map[reftables.Planet]gender{
	reftables.Sun: male, reftables.Mars: male, reftables.Jupiter: male,
	reftables.Moon: female, reftables.Venus: female,
	reftables.Mercury: neutral, reftables.Saturn: neutral,
}

// DrekkanaBala is 15 virupas if the planet's decanate (1st/2nd/3rd
// drekkana of its own sign) matches its gender (male->1st, female->2nd,
// neutral->3rd); else 0.
func DrekkanaBala(p reftables.Planet, lon float64) (float64, error) {
	g, ok := planetGenders[p]
	if !ok {
		return 0, fmt.Errorf("shadbala: no gender classification for %s", p)
	}
	signLon := angle.SignLongitude(lon)
	decanate := int(signLon / 10.0) // 0, 1, 2
	want := [3]gender{male, female, neutral}[decanate]
	if want == g {
		return 15.0, nil
	}
	return 0, nil
}

// StrengthSthana computes the full five-term sthana bala for a planet.
func StrengthSthana(in StrengthInput) (Sthana, error) {
	uchcha, err := UchchaBala(in.Planet, in.Longitude, in.Retrograde)
	if err != nil {
		return Sthana{}, err
	}
	sapta, err := SaptavargaBala(in.Planet, in.Longitude)
	if err != nil {
		return Sthana{}, err
	}
	ojha, err := OjhaYugmaBala(in.Planet, in.Longitude)
	if err != nil {
		return Sthana{}, err
	}
	kendradi, err := KendradiBala(in.HouseFromAsc)
	if err != nil {
		return Sthana{}, err
	}
	drekkana, err := DrekkanaBala(in.Planet, in.Longitude)
	if err != nil {
		return Sthana{}, err
	}
	return Sthana{Uchcha: uchcha, Saptavarga: sapta, OjhaYugma: ojha, Kendradi: kendradi, Drekkana: drekkana}, nil
}

// digBalaDirection is each planet's preferred cardinal angle, given as
// the house number (1st=Asc/East, 4th=IC/North, 7th=Desc/West, 10th=MC/South)
// dig bala peaks at.
var digBalaDirection = map[reftables.Planet]int{
	reftables.Sun: 10, reftables.Mars: 10,
	reftables.Jupiter: 1, reftables.Mercury: 1,
	reftables.Venus: 4, reftables.Moon: 4,
	reftables.Saturn: 7,
}

// DigBala is 60 virupas at the planet's preferred angle, falling
// linearly to 0 at the opposite angle.
func DigBala(p reftables.Planet, houseFromAsc int) (float64, error) {
	preferred, ok := digBalaDirection[p]
	if !ok {
		return 0, fmt.Errorf("shadbala: no dig-bala direction for %s", p)
	}
	// Angular distance between houses, measured in houses (0..6), scaled to degrees (30 per house).
	diffHouses := int(math.Abs(float64(houseFromAsc - preferred)))
	if diffHouses > 6 {
		diffHouses = 12 - diffHouses
	}
	diffDegrees := float64(diffHouses) * 30.0
	return 60.0 * (1 - diffDegrees/180.0), nil
}

// NaisargikaBala is the fixed, descending-strength constant every planet
// carries regardless of position: Sun > Moon > Venus > Jupiter > Mercury
// > Mars > Saturn: the Sun carries the full 60 (one rupa) and each next
// planet 60/7 virupas less.
var NaisargikaBala = map[reftables.Planet]float64{
	reftables.Sun:     60.0,
	reftables.Moon:    51.43,
	reftables.Venus:   42.86,
	reftables.Jupiter: 34.28,
	reftables.Mercury: 25.71,
	reftables.Mars:    17.14,
	reftables.Saturn:  8.57,
}

// aspectHousesOf returns the houses-ahead-of-self a planet casts a
// Vedic aspect on: every planet aspects the 7th; Mars additionally the
// 4th and 8th; Jupiter the 5th and 9th; Saturn the 3rd and 10th.
func aspectHousesOf(p reftables.Planet) []int {
	houses := []int{7}
	switch p {
	case reftables.Mars:
		houses = append(houses, 4, 8)
	case reftables.Jupiter:
		houses = append(houses, 5, 9)
	case reftables.Saturn:
		houses = append(houses, 3, 10)
	}
	return houses
}

// naturalBenefics/malefics classify the seven grahas for drg-bala signs.
var naturalBenefics = map[reftables.Planet]bool{
	reftables.Jupiter: true, reftables.Venus: true, reftables.Mercury: true, reftables.Moon: true,
}

// DrgBala nets the virupas a planet receives from every other planet's
// aspect onto it: each benefic aspect adds a flat 60 virupas, each
// malefic aspect subtracts 60, clamped to a minimum of 0. aspectFrom maps
// each aspecting planet to its own house-from-ascendant, so the relative
// house offset to the target can be measured.
func DrgBala(target reftables.Planet, targetHouse int, aspectFrom map[reftables.Planet]int) float64 {
	net := 0.0
	for p, house := range aspectFrom {
		if p == target {
			continue
		}
		for _, castHouses := range aspectHousesOf(p) {
			landedHouse := ((house-1+castHouses-1)%12 + 12) % 12 + 1
			if landedHouse != targetHouse {
				continue
			}
			strength := 60.0
			if naturalBenefics[p] {
				net += strength
			} else {
				net -= strength
			}
		}
	}
	if net < 0 {
		net = 0
	}
	return net
}

// CheshtaBala computes motional strength for Mars..Saturn by combining a
// speed factor (weight 0.6) and a cheshta-kendra factor (weight 0.4,
// based on angular distance from the Sun), both scaled to 60; nodes
// score 0. The Sun and the Moon go through the same speed/kendra formula:
// this function does not derive their value from ayana or paksha bala.
func CheshtaBala(p reftables.Planet, speed, meanSpeed, sunLon, planetLon float64, retrograde bool) (float64, error) {
	if p == reftables.Rahu || p == reftables.Ketu {
		return 0, nil
	}
	if meanSpeed <= 0 {
		return 0, fmt.Errorf("shadbala: mean speed must be positive for %s", p)
	}
	speedRatio := math.Abs(speed) / meanSpeed

	var speedFactor float64
	if retrograde {
		speedFactor = math.Min(2.0*(1.0-speedRatio), 2.0)
	} else {
		deviation := math.Abs(speedRatio - 1.0)
		speedFactor = 1.0 - math.Min(deviation*0.5, 0.5)
	}

	kendra := math.Mod(angle.Distance(sunLon, planetLon), 180.0)
	if kendra > 90 {
		kendra = 180 - kendra
	}
	kendraFactor := 1.0 - (kendra / 90.0)

	value := 60.0 * (speedFactor*0.6 + kendraFactor*0.4)
	if value > 60.0 {
		value = 60.0
	}
	if value < 0 {
		value = 0
	}
	return value, nil
}

// IshtaPhala and KashtaPhala are the benefic/malefic resultant of uchcha
// and cheshta bala. Both inputs must lie in [0,60]; out-of-range input is
// a caller bug, not a domain condition, so it errors rather than clamps.
func IshtaPhala(uchcha, cheshta float64) (float64, error) {
	if err := checkBalaRange(uchcha, cheshta); err != nil {
		return 0, err
	}
	return math.Sqrt(uchcha * cheshta), nil
}

func KashtaPhala(uchcha, cheshta float64) (float64, error) {
	if err := checkBalaRange(uchcha, cheshta); err != nil {
		return 0, err
	}
	return math.Sqrt((60 - uchcha) * (60 - cheshta)), nil
}

func checkBalaRange(uchcha, cheshta float64) error {
	if uchcha < 0 || uchcha > 60 || cheshta < 0 || cheshta > 60 {
		return fmt.Errorf("shadbala: ishta/kashta phala inputs must be in [0,60], got uchcha=%f cheshta=%f", uchcha, cheshta)
	}
	return nil
}

// vimsopakaWeights are the D1,D2,D3,D9,D12,D30 weights vimsopaka bala
// sums to 20.
var vimsopakaSchemes = []varga.Scheme{varga.D1, varga.D2, varga.D3, varga.D9, varga.D12, varga.D30}
var vimsopakaWeights = []float64{6, 2, 4, 5, 2, 1}

// vimsopakaSignStrength scores a planet's dignity in one divisional chart
// on a 0..1 scale the traditional weighting table expects: own/Moolatrikona
// score 1, exaltation scores 1, great friend 0.75, friend 0.5, neutral
// 0.25, enemy/great-enemy/debilitation 0.
func vimsopakaSignStrength(p reftables.Planet, lon float64) (float64, error) {
	lvl, err := dignity.Score(p, lon, false)
	if err != nil {
		return 0, err
	}
	switch lvl {
	case dignity.ExactExaltation, dignity.Exaltation, dignity.Moolatrikona, dignity.OwnSign:
		return 1.0, nil
	case dignity.ExactDebilitation, dignity.Debilitation:
		return 0, nil
	}
	sign := reftables.Sign(angle.SignIndex(lon))
	lord, ok := reftables.RulerOf(sign)
	if !ok {
		return 0, fmt.Errorf("shadbala: vimsopaka: no ruler for sign %v", sign)
	}
	combined, err := dignity.Combined(p, lord, reftables.Sign(angle.SignIndex(lon)), sign)
	if err != nil {
		return 0, err
	}
	switch combined {
	case dignity.GreatFriend:
		return 0.75, nil
	case dignity.CFriend:
		return 0.5, nil
	case dignity.CNeutral:
		return 0.25, nil
	default:
		return 0, nil
	}
}

// VimsopakaBala weights sign-strength across D1,D2,D3,D9,D12,D30 with
// weights (6,2,4,5,2,1) summing to 20.
func VimsopakaBala(p reftables.Planet, d1Lon float64) (float64, error) {
	total := 0.0
	for i, scheme := range vimsopakaSchemes {
		lon, err := varga.Project(angle.Norm(d1Lon), scheme)
		if err != nil {
			return 0, fmt.Errorf("shadbala: vimsopaka %v: %w", scheme, err)
		}
		strength, err := vimsopakaSignStrength(p, lon)
		if err != nil {
			return 0, err
		}
		total += strength * vimsopakaWeights[i]
	}
	return total, nil
}

// MinimumRequired is the traditional minimum total (in rupas) a planet
// must reach to be considered sufficiently strong.
var MinimumRequired = map[reftables.Planet]float64{
	reftables.Sun:     5.0,
	reftables.Moon:    6.0,
	reftables.Mars:    5.0,
	reftables.Mercury: 7.0,
	reftables.Jupiter: 6.5,
	reftables.Venus:   5.5,
	reftables.Saturn:  5.0,
}

// Total is the six-component virupa breakdown plus the pass/fail verdict.
type Total struct {
	Sthana      float64
	Dig         float64
	Kala        float64
	Cheshta     float64
	Naisargika  float64
	Drg         float64
	Virupas     float64
	Rupas       float64
	Sufficient  bool
}

// KalaComponents is the nine-term kala bala breakdown, each already
// resolved by the caller from chart-level context (day length, lords,
// declination, and so on) so this package stays free of a time/calendar
// dependency beyond jd.Weekday.
type KalaComponents struct {
	Nathonnata, Paksha, Tribhaga, Abda, Masa, Vara, Hora, Ayana, Yuddha float64
}

// Total sums the nine kala sub-components.
func (k KalaComponents) Total() float64 {
	return k.Nathonnata + k.Paksha + k.Tribhaga + k.Abda + k.Masa + k.Vara + k.Hora + k.Ayana + k.Yuddha
}

// Combine sums the six components and compares against the planet's
// minimum requirement.
func Combine(p reftables.Planet, sthana, dig, kala, cheshta, naisargika, drg float64) (Total, error) {
	minimum, ok := MinimumRequired[p]
	if !ok {
		return Total{}, fmt.Errorf("shadbala: no minimum requirement for %s", p)
	}
	virupas := sthana + dig + kala + cheshta + naisargika + drg
	rupas := virupas / 60.0
	return Total{
		Sthana: sthana, Dig: dig, Kala: kala, Cheshta: cheshta, Naisargika: naisargika, Drg: drg,
		Virupas: virupas, Rupas: rupas, Sufficient: rupas >= minimum,
	}, nil
}
