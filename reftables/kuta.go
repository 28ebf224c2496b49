package reftables

// Varna is the four-tier classification a sign carries for the first
// (varna) kuta of compatibility matching.
type Varna string

const (
	Brahmin   Varna = "Brahmin"
	Kshatriya Varna = "Kshatriya"
	Vaishya   Varna = "Vaishya"
	Shudra    Varna = "Shudra"
)

// varnaBySign indexes each sign's varna (classical sign-group
// assignment); VarnaOf looks it up.
var varnaBySign = [12]Varna{
	Kshatriya, Vaishya, Shudra, Brahmin, Kshatriya, Vaishya,
	Shudra, Brahmin, Kshatriya, Vaishya, Shudra, Brahmin,
}

func VarnaOf(s Sign) Varna { return varnaBySign[int(s)%12] }

// Vashya is the five-group control classification (the second kuta).
type Vashya string

const (
	VashyaChatushpada Vashya = "Chatushpada" // quadruped
	VashyaManava      Vashya = "Manava"      // human
	VashyaJalachara    Vashya = "Jalachara"   // aquatic
	VashyaVanachara    Vashya = "Vanachara"   // wild
	VashyaKeeta        Vashya = "Keeta"       // insect
)

// vashyaBySign is the whole-sign simplification of the traditional
// half-sign vashya assignment (Sagittarius and Capricorn classically
// split at 15 degrees); this repository scores by sign only.
var vashyaBySign = [12]Vashya{
	VashyaChatushpada, VashyaChatushpada, VashyaManava, VashyaJalachara,
	VashyaChatushpada, VashyaManava, VashyaManava, VashyaKeeta,
	VashyaManava, VashyaChatushpada, VashyaManava, VashyaJalachara,
}

func VashyaOf(s Sign) Vashya { return vashyaBySign[int(s)%12] }

// Yoni is the animal-symbol classification of a nakshatra (the third
// kuta), used via a friend/enemy/neutral pair table.
type Yoni string

const (
	YoniHorse     Yoni = "Horse"
	YoniElephant  Yoni = "Elephant"
	YoniGoat      Yoni = "Goat"
	YoniSerpent   Yoni = "Serpent"
	YoniDog       Yoni = "Dog"
	YoniCat       Yoni = "Cat"
	YoniRat       Yoni = "Rat"
	YoniCow       Yoni = "Cow"
	YoniBuffalo   Yoni = "Buffalo"
	YoniTiger     Yoni = "Tiger"
	YoniDeer      Yoni = "Deer"
	YoniMonkey    Yoni = "Monkey"
	YoniMongoose  Yoni = "Mongoose"
	YoniLion      Yoni = "Lion"
)

// yoniByNakshatra indexes each of the 27 nakshatras' yoni symbol.
var yoniByNakshatra = [27]Yoni{
	YoniHorse, YoniElephant, YoniGoat, YoniSerpent, YoniSerpent, YoniDog,
	YoniCat, YoniGoat, YoniCat, YoniRat, YoniRat, YoniCow,
	YoniBuffalo, YoniTiger, YoniBuffalo, YoniTiger, YoniDeer, YoniDeer,
	YoniDog, YoniMonkey, YoniMongoose, YoniMonkey, YoniLion, YoniHorse,
	YoniLion, YoniCow, YoniElephant,
}

func YoniOf(nakshatra int) (Yoni, bool) {
	if nakshatra < 1 || nakshatra > 27 {
		return "", false
	}
	return yoniByNakshatra[nakshatra-1], true
}

// yoniEnemyPairs lists the yoni pairs classically treated as natural
// enemies (scoring 0 in the yoni kuta regardless of identity/same-group
// scoring); same yoni scores the maximum (4), unlisted pairs score 2.
var yoniEnemyPairs = map[Yoni]Yoni{
	YoniHorse: YoniBuffalo, YoniBuffalo: YoniHorse,
	YoniElephant: YoniLion, YoniLion: YoniElephant,
	YoniGoat: YoniMonkey, YoniMonkey: YoniGoat,
	YoniSerpent: YoniMongoose, YoniMongoose: YoniSerpent,
	YoniDog: YoniDeer, YoniDeer: YoniDog,
	YoniCat: YoniRat, YoniRat: YoniCat,
	YoniCow: YoniTiger, YoniTiger: YoniCow,
}

// YoniScore returns the 0/2/4 yoni-kuta points for a pair of yonis.
func YoniScore(a, b Yoni) float64 {
	if a == b {
		return 4.0
	}
	if yoniEnemyPairs[a] == b {
		return 0.0
	}
	return 2.0
}

// Gana is the three-tier temperament classification of a nakshatra (the
// sixth kuta): Deva (divine), Manushya (human), Rakshasa (demonic).
type Gana string

const (
	Deva      Gana = "Deva"
	Manushya  Gana = "Manushya"
	Rakshasa  Gana = "Rakshasa"
)

var ganaByNakshatra = [27]Gana{
	Deva, Manushya, Rakshasa, Manushya, Deva, Rakshasa,
	Deva, Deva, Rakshasa, Rakshasa, Manushya, Manushya,
	Deva, Rakshasa, Deva, Rakshasa, Deva, Rakshasa,
	Rakshasa, Manushya, Manushya, Deva, Rakshasa, Rakshasa,
	Manushya, Manushya, Deva,
}

func GanaOf(nakshatra int) (Gana, bool) {
	if nakshatra < 1 || nakshatra > 27 {
		return "", false
	}
	return ganaByNakshatra[nakshatra-1], true
}

// Nadi is the three-tier humor classification of a nakshatra (the eighth
// kuta): Adi (Vata), Madhya (Pitta), Antya (Kapha). Same-nadi pairings
// traditionally score 0 (nadi dosha) unless cancelled elsewhere.
type Nadi string

const (
	Adi    Nadi = "Adi"
	Madhya Nadi = "Madhya"
	Antya  Nadi = "Antya"
)

var nadiByNakshatra = [27]Nadi{
	Adi, Madhya, Antya, Antya, Madhya, Adi,
	Adi, Madhya, Antya, Antya, Madhya, Adi,
	Adi, Madhya, Antya, Antya, Madhya, Adi,
	Adi, Madhya, Antya, Antya, Madhya, Adi,
	Adi, Madhya, Antya,
}

func NadiOf(nakshatra int) (Nadi, bool) {
	if nakshatra < 1 || nakshatra > 27 {
		return "", false
	}
	return nadiByNakshatra[nakshatra-1], true
}
