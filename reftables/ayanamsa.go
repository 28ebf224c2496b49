package reftables

// Ayanamsa is one of the supported tropical-to-sidereal offset schemes
// (spec.md 6). The core never computes ayanamsa values itself — that is
// the ephemeris adapter's job (spec.md 4.3) — this table only carries the
// tag enumeration and descriptive metadata about each scheme.
type Ayanamsa string

const (
	Lahiri         Ayanamsa = "Lahiri"
	Raman          Ayanamsa = "Raman"
	Krishnamurti   Ayanamsa = "Krishnamurti"
	Yukteshwar     Ayanamsa = "Yukteshwar"
	JNBhasin       Ayanamsa = "JN-Bhasin"
	SuryaSiddhanta Ayanamsa = "Surya-Siddhanta"
	Aryabhata      Ayanamsa = "Aryabhata"
	TrueCitra      Ayanamsa = "True-Citra"
	TrueRevati     Ayanamsa = "True-Revati"
)

// DefaultAyanamsa is used whenever a caller does not specify one.
const DefaultAyanamsa = Lahiri

// DefaultKPAyanamsa is the default for KP-mode computations.
const DefaultKPAyanamsa = Krishnamurti

// AyanamsaCategory classifies an ayanamsa's tradition, mirroring
// astrovedic's AyanamsaManager.SUPPORTED_AYANAMSAS categorisation
// (vedic/ayanamsa.py) — a supplemented feature (SPEC_FULL.md 4): read-only
// metadata the result-access API can surface alongside the raw tag.
type AyanamsaCategory string

const (
	CategoryPrimary     AyanamsaCategory = "primary"
	CategoryKP          AyanamsaCategory = "kp"
	CategorySecondary   AyanamsaCategory = "secondary"
	CategoryTraditional AyanamsaCategory = "traditional"
)

// AyanamsaInfo is the descriptive record for one ayanamsa tag.
type AyanamsaInfo struct {
	Tag                    Ayanamsa
	Category               AyanamsaCategory
	RecommendedHouseSystem HouseSystem
	Description            string
}

// AyanamsaRegistry is the read-only metadata table for every supported
// ayanamsa.
var AyanamsaRegistry = map[Ayanamsa]AyanamsaInfo{
	Lahiri: {
		Lahiri, CategoryPrimary, WholeSign,
		"Official ayanamsa of the Indian government's Calendar Reform Committee.",
	},
	Raman: {
		Raman, CategorySecondary, WholeSign,
		"B.V. Raman's ayanamsa, close to Lahiri but with a different epoch.",
	},
	Krishnamurti: {
		Krishnamurti, CategoryKP, Placidus,
		"K.S. Krishnamurti's ayanamsa for the KP sub-lord system.",
	},
	Yukteshwar: {
		Yukteshwar, CategoryTraditional, WholeSign,
		"Sri Yukteshwar's ayanamsa from The Holy Science.",
	},
	JNBhasin: {
		JNBhasin, CategorySecondary, WholeSign,
		"J.N. Bhasin's ayanamsa, a minor variant used in some KP circles.",
	},
	SuryaSiddhanta: {
		SuryaSiddhanta, CategoryTraditional, WholeSign,
		"Ayanamsa derived from the classical Surya Siddhanta text.",
	},
	Aryabhata: {
		Aryabhata, CategoryTraditional, WholeSign,
		"Ayanamsa derived from Aryabhata's astronomical works.",
	},
	TrueCitra: {
		TrueCitra, CategorySecondary, WholeSign,
		"Fixes Spica (Citra) at exactly 180 degrees sidereal.",
	},
	TrueRevati: {
		TrueRevati, CategorySecondary, WholeSign,
		"Fixes zeta Piscium (Revati) at exactly 359°50' sidereal.",
	},
}

// Info returns the descriptive record for an ayanamsa tag.
func (a Ayanamsa) Info() (AyanamsaInfo, bool) {
	info, ok := AyanamsaRegistry[a]
	return info, ok
}

// HouseSystem is one of the supported house-cusp computation systems
// (spec.md 6).
type HouseSystem string

const (
	WholeSign     HouseSystem = "Whole-Sign"
	Equal         HouseSystem = "Equal"
	Placidus      HouseSystem = "Placidus"
	Koch          HouseSystem = "Koch"
	Porphyrius    HouseSystem = "Porphyrius"
	Regiomontanus HouseSystem = "Regiomontanus"
	Campanus      HouseSystem = "Campanus"
	Meridian      HouseSystem = "Meridian"
	Morinus       HouseSystem = "Morinus"
)

// DefaultHouseSystem is Whole-Sign, the Vedic default.
const DefaultHouseSystem = WholeSign

// DefaultKPHouseSystem is Placidus, the KP default.
const DefaultKPHouseSystem = Placidus
