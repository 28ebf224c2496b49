package sarvatobhadra

import "fmt"

// TaraCategory is one of the nine tara-bala categories, repeating every
// three nakshatras across the 27-nakshatra cycle.
type TaraCategory string

const (
	Janma    TaraCategory = "Janma"
	Sampat   TaraCategory = "Sampat"
	Vipat    TaraCategory = "Vipat"
	Kshema   TaraCategory = "Kshema"
	Pratyak  TaraCategory = "Pratyak"
	Sadhaka  TaraCategory = "Sadhaka"
	Vadha    TaraCategory = "Vadha"
	Mitra    TaraCategory = "Mitra"
	AtiMitra TaraCategory = "AtiMitra"
)

var taraOrder = [9]TaraCategory{Janma, Sampat, Vipat, Kshema, Pratyak, Sadhaka, Vadha, Mitra, AtiMitra}

// favourableTara marks the categories spec.md 4.10 calls favourable;
// Janma is carried as neutral per this repository's pinned reading.
var favourableTara = map[TaraCategory]bool{
	Sampat: true, Kshema: true, Sadhaka: true, Mitra: true, AtiMitra: true,
}
var unfavourableTara = map[TaraCategory]bool{
	Vipat: true, Pratyak: true, Vadha: true,
}

// CategoryOf returns the tara category of a transit nakshatra counted
// from the birth nakshatra (both 1..27): offset 0 is Janma, 1 is Sampat,
// and so on through AtiMitra at 8, repeating mod 9 across the full
// 27-nakshatra cycle.
func CategoryOf(janmaNakshatra, currentNakshatra int) (TaraCategory, error) {
	if janmaNakshatra < 1 || janmaNakshatra > 27 || currentNakshatra < 1 || currentNakshatra > 27 {
		return "", fmt.Errorf("sarvatobhadra: nakshatras must be 1..27, got janma=%d current=%d", janmaNakshatra, currentNakshatra)
	}
	offset := ((currentNakshatra-janmaNakshatra)%27 + 27) % 27
	return taraOrder[offset%9], nil
}

// Favourability classifies a tara category as favourable, unfavourable,
// or neutral (Janma only).
type Favourability string

const (
	Favourable   Favourability = "favourable"
	Unfavourable Favourability = "unfavourable"
	NeutralTara  Favourability = "neutral"
)

// FavourabilityOf classifies a tara category.
func FavourabilityOf(c TaraCategory) Favourability {
	if favourableTara[c] {
		return Favourable
	}
	if unfavourableTara[c] {
		return Unfavourable
	}
	return NeutralTara
}

// Score blends overall chakra direction quality with the current tara
// category into a single 0..100 favourability score: a neutral baseline
// of 50, shifted by the chakra's net benefic/malefic balance (scaled) and
// by the tara category's own favourable/unfavourable pull, clamped.
func Score(chakraNet int, category TaraCategory) float64 {
	base := 50.0
	base += float64(chakraNet) * 5.0

	switch FavourabilityOf(category) {
	case Favourable:
		base += 20.0
	case Unfavourable:
		base -= 20.0
	}

	if base < 0 {
		base = 0
	}
	if base > 100 {
		base = 100
	}
	return base
}
