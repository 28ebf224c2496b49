package compatibility

import (
	"fmt"

	"github.com/vedastra/jyotisha/reftables"
	"github.com/vedastra/jyotisha/sarvatobhadra"
	"github.com/vedastra/jyotisha/varga"
)

func errNoRuler(s reftables.Sign) error {
	return fmt.Errorf("compatibility: no ruler for sign %s", s)
}

func errNoFriendship(a, b reftables.Planet) error {
	return fmt.Errorf("compatibility: no natural friendship entry for %s/%s", a, b)
}

func errBadNakshatra(a, b int) error {
	return fmt.Errorf("compatibility: nakshatras must be 1..27, got %d and %d", a, b)
}

// taraPoints maps the mutual tara favourability, counted both ways, onto
// the classical 0..3 scale: zero with both directions unfavourable, three
// with both favourable.
func taraPoints(boyToGirl, girlToBoy sarvatobhadra.Favourability) float64 {
	score := map[sarvatobhadra.Favourability]float64{
		sarvatobhadra.Favourable:   1.5,
		sarvatobhadra.NeutralTara:  1.0,
		sarvatobhadra.Unfavourable: 0.0,
	}
	return score[boyToGirl] + score[girlToBoy]
}

// TaraKuta (max 3) scores the mutual tara-cycle favourability of the two
// nakshatras, counted in both directions, building on the nine-category
// cycle sarvatobhadra.CategoryOf already classifies.
func TaraKuta(boy, girl Partner) (KutaScore, error) {
	toGirl, err := sarvatobhadra.CategoryOf(boy.MoonNakshatra, girl.MoonNakshatra)
	if err != nil {
		return KutaScore{}, err
	}
	toBoy, err := sarvatobhadra.CategoryOf(girl.MoonNakshatra, boy.MoonNakshatra)
	if err != nil {
		return KutaScore{}, err
	}
	points := taraPoints(sarvatobhadra.FavourabilityOf(toGirl), sarvatobhadra.FavourabilityOf(toBoy))
	return KutaScore{"Tara", points, 3.0}, nil
}

// Report is the full Ashtakuta plus dosha/dasha/navamsha overlay result.
type Report struct {
	Kutas           []KutaScore
	KutaTotal       float64
	KutaMax         float64
	KutaNormalised  float64 // 0..100
	BoyDosha        DoshaProfile
	GirlDosha       DoshaProfile
	DoshaCancelled  bool
	DoshaResidual   float64 // 0..1, 1 meaning clean
	DashaScore      float64 // 0..100
	NavamshaScore   float64 // 0..100
	Aggregate       float64 // 0..100
	Bucket          string
}

// Analyze runs the full eight-kuta table, dosha detection with
// cancellation, and the dasha/navamsha overlays, then combines them into
// spec.md 4.11's weighted aggregate score.
func Analyze(boy, girl Partner) (Report, error) {
	kutas, err := AllKutas(boy, girl)
	if err != nil {
		return Report{}, err
	}
	tara, err := TaraKuta(boy, girl)
	if err != nil {
		return Report{}, err
	}
	kutas = append(kutas, tara)

	var total, max float64
	for _, k := range kutas {
		total += k.Points
		max += k.Max
	}

	boyDosha := ProfileOf(boy)
	girlDosha := ProfileOf(girl)
	cancelled := Cancellation(boyDosha, girlDosha)
	residual := Residual(boyDosha, girlDosha)

	dashaScore, err := DashaOverlay(boy, girl)
	if err != nil {
		return Report{}, err
	}
	navamshaScore, err := NavamshaOverlay(boy, girl)
	if err != nil {
		return Report{}, err
	}

	kutaNormalised := 0.0
	if max > 0 {
		kutaNormalised = total / max * 100.0
	}

	aggregate := 0.5*kutaNormalised + 0.1*(residual*100.0) + 0.2*dashaScore + 0.2*navamshaScore
	if aggregate < 0 {
		aggregate = 0
	}
	if aggregate > 100 {
		aggregate = 100
	}

	return Report{
		Kutas:          kutas,
		KutaTotal:      total,
		KutaMax:        max,
		KutaNormalised: kutaNormalised,
		BoyDosha:       boyDosha,
		GirlDosha:      girlDosha,
		DoshaCancelled: cancelled,
		DoshaResidual:  residual,
		DashaScore:     dashaScore,
		NavamshaScore:  navamshaScore,
		Aggregate:      aggregate,
		Bucket:         BucketOf(aggregate),
	}, nil
}

// BucketOf labels an aggregate score per spec.md 4.11's five bands.
func BucketOf(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	case score >= 20:
		return "Challenging"
	default:
		return "Difficult"
	}
}

// friendshipToScore maps a natural-friendship reading onto a 0..100 scale.
var friendshipToScore = map[reftables.Friendship]float64{
	reftables.FriendshipFriend:  100,
	reftables.FriendshipNeutral: 50,
	reftables.FriendshipEnemy:   0,
}

// pairScore scores a pair of lords via natural friendship, averaging both
// directions; identical lords score full marks.
func pairScore(a, b reftables.Planet) (float64, error) {
	if a == b {
		return 100, nil
	}
	ab, ok := reftables.NaturalFriendshipOf(a, b)
	if !ok {
		return 0, errNoFriendship(a, b)
	}
	ba, ok := reftables.NaturalFriendshipOf(b, a)
	if !ok {
		return 0, errNoFriendship(b, a)
	}
	return (friendshipToScore[ab] + friendshipToScore[ba]) / 2.0, nil
}

// DashaOverlay (0..100) scores the mutual friendship of the two charts'
// current mahadasha and antardasha lords, weighting the mahadasha (the
// dominant period) twice the antardasha.
func DashaOverlay(boy, girl Partner) (float64, error) {
	maha, err := pairScore(boy.MahadashaLord, girl.MahadashaLord)
	if err != nil {
		return 0, err
	}
	antar, err := pairScore(boy.AntardashaLord, girl.AntardashaLord)
	if err != nil {
		return 0, err
	}
	return (2*maha + antar) / 3.0, nil
}

// navamshaMaleficOffsets mirrors BhakootKuta's malefic sign-distance
// offsets, applied to the two partners' D9 navamsha moon signs instead of
// their natal moon signs.
var navamshaMaleficOffsets = bhakootMaleficOffsets

// NavamshaOverlay (0..100) projects each partner's moon longitude through
// the navamsha (D9) chart and scores the resulting sign distance the same
// way Bhakoot kuta scores natal moon signs -- the traditional reading that
// navamsha compatibility mirrors natal rashi compatibility one varga level
// deeper.
func NavamshaOverlay(boy, girl Partner) (float64, error) {
	boyD9, err := varga.Project(boy.MoonLongitude, varga.D9)
	if err != nil {
		return 0, fmt.Errorf("compatibility: navamsha projection: %w", err)
	}
	girlD9, err := varga.Project(girl.MoonLongitude, varga.D9)
	if err != nil {
		return 0, fmt.Errorf("compatibility: navamsha projection: %w", err)
	}
	boySign := reftables.Sign(int(boyD9/30.0) % 12)
	girlSign := reftables.Sign(int(girlD9/30.0) % 12)

	offset := ((int(girlSign)-int(boySign))%12+12)%12 + 1
	if navamshaMaleficOffsets[offset] {
		return 20, nil
	}
	if boySign == girlSign {
		return 100, nil
	}
	return 70, nil
}
