package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/reftables"
)

func TestVarnaKutaGirlHigherRankScoresFull(t *testing.T) {
	boy := Partner{MoonSign: reftables.Gemini}
	girl := Partner{MoonSign: reftables.Cancer}
	k := VarnaKuta(boy, girl)
	assert.Equal(t, 1.0, k.Points)
}

func TestVarnaKutaGirlLowerRankScoresZero(t *testing.T) {
	boy := Partner{MoonSign: reftables.Cancer}
	girl := Partner{MoonSign: reftables.Gemini}
	k := VarnaKuta(boy, girl)
	assert.Equal(t, 0.0, k.Points)
}

func TestVashyaKutaSameGroupScoresFull(t *testing.T) {
	boy := Partner{MoonSign: reftables.Aries}
	girl := Partner{MoonSign: reftables.Leo}
	k := VashyaKuta(boy, girl)
	assert.Equal(t, 2.0, k.Points)
}

func TestYoniKutaEnemyPairScoresZero(t *testing.T) {
	boy := Partner{MoonNakshatra: 1}  // Ashwini, Horse
	girl := Partner{MoonNakshatra: 13} // Hasta, Buffalo -- enemy of Horse
	k, ok := YoniKuta(boy, girl)
	require.True(t, ok)
	assert.Equal(t, 0.0, k.Points)
}

func TestYoniKutaSameYoniScoresFull(t *testing.T) {
	boy := Partner{MoonNakshatra: 4}  // Rohini, Serpent
	girl := Partner{MoonNakshatra: 5} // Mrigashira, Serpent
	k, ok := YoniKuta(boy, girl)
	require.True(t, ok)
	assert.Equal(t, 4.0, k.Points)
}

func TestGanaKutaDevaManushyaScoresFive(t *testing.T) {
	boy := Partner{MoonNakshatra: 1} // Ashwini, Deva
	girl := Partner{MoonNakshatra: 2} // Bharani, Manushya
	k, ok := GanaKuta(boy, girl)
	require.True(t, ok)
	assert.Equal(t, 5.0, k.Points)
}

func TestBhakootKutaMaleficOffsetScoresZero(t *testing.T) {
	boy := Partner{MoonSign: reftables.Aries}
	girl := Partner{MoonSign: reftables.Virgo} // offset 6
	k := BhakootKuta(boy, girl)
	assert.Equal(t, 0.0, k.Points)
}

func TestBhakootKutaBenignOffsetScoresFull(t *testing.T) {
	boy := Partner{MoonSign: reftables.Aries}
	girl := Partner{MoonSign: reftables.Cancer} // offset 4
	k := BhakootKuta(boy, girl)
	assert.Equal(t, 7.0, k.Points)
}

func TestNadiKutaSameNadiScoresZero(t *testing.T) {
	boy := Partner{MoonNakshatra: 1}
	girl := Partner{MoonNakshatra: 6} // both Adi
	k, ok := NadiKuta(boy, girl)
	require.True(t, ok)
	assert.Equal(t, 0.0, k.Points)
}

func TestNadiKutaDifferentNadiScoresFull(t *testing.T) {
	boy := Partner{MoonNakshatra: 1} // Adi
	girl := Partner{MoonNakshatra: 2} // Madhya
	k, ok := NadiKuta(boy, girl)
	require.True(t, ok)
	assert.Equal(t, 8.0, k.Points)
}

func TestGrahaMaitriKutaSameLordScoresFull(t *testing.T) {
	boy := Partner{MoonSign: reftables.Aries}   // Mars
	girl := Partner{MoonSign: reftables.Scorpio} // Mars
	k, err := GrahaMaitriKuta(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 5.0, k.Points)
}

func TestGrahaMaitriKutaMutualEnemiesScoresZero(t *testing.T) {
	boy := Partner{MoonSign: reftables.Leo}    // Sun
	girl := Partner{MoonSign: reftables.Taurus} // Venus
	k, err := GrahaMaitriKuta(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, k.Points)
}

func TestTaraKutaBothFavourableScoresFull(t *testing.T) {
	boy := Partner{MoonNakshatra: 5}
	girl := Partner{MoonNakshatra: 6}
	k, err := TaraKuta(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 3.0, k.Points)
}

func TestAllKutasSumsToExpectedMaximum(t *testing.T) {
	boy := Partner{MoonSign: reftables.Aries, MoonNakshatra: 1}
	girl := Partner{MoonSign: reftables.Cancer, MoonNakshatra: 5}
	scores, err := AllKutas(boy, girl)
	require.NoError(t, err)
	var max float64
	for _, s := range scores {
		max += s.Max
	}
	assert.Equal(t, 33.0, max) // 36 minus Tara's 3, added separately in Analyze
}

func TestProfileOfDetectsMangalAndShani(t *testing.T) {
	p := Partner{MarsHouseFromAscendant: 1, SaturnHouseFromMoon: 1, RahuLongitude: 10, SunLongitude: 15}
	profile := ProfileOf(p)
	assert.True(t, profile.Mangal)
	assert.True(t, profile.Shani)
	assert.True(t, profile.Grahan)
}

func TestCancellationWhenBothHaveMangal(t *testing.T) {
	boy := DoshaProfile{Mangal: true}
	girl := DoshaProfile{Mangal: true}
	assert.True(t, Cancellation(boy, girl))
}

func TestResidualFullWhenCancelled(t *testing.T) {
	boy := DoshaProfile{Mangal: true}
	girl := DoshaProfile{Mangal: true}
	assert.InDelta(t, 1.0, Residual(boy, girl), 1e-9)
}

func TestResidualPenalisesUncancelledMangal(t *testing.T) {
	boy := DoshaProfile{Mangal: true}
	girl := DoshaProfile{}
	assert.InDelta(t, 2.0/3.0, Residual(boy, girl), 1e-9)
}

func TestDashaOverlayIdenticalLordsScoresFull(t *testing.T) {
	boy := Partner{MahadashaLord: reftables.Sun, AntardashaLord: reftables.Moon}
	girl := Partner{MahadashaLord: reftables.Sun, AntardashaLord: reftables.Moon}
	v, err := DashaOverlay(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)
}

func TestDashaOverlayMutualEnemiesScoresZero(t *testing.T) {
	boy := Partner{MahadashaLord: reftables.Sun, AntardashaLord: reftables.Venus}
	girl := Partner{MahadashaLord: reftables.Venus, AntardashaLord: reftables.Sun}
	v, err := DashaOverlay(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestNavamshaOverlaySameLongitudeScoresFull(t *testing.T) {
	boy := Partner{MoonLongitude: 45.0}
	girl := Partner{MoonLongitude: 45.0}
	v, err := NavamshaOverlay(boy, girl)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)
}

func TestBucketOfThresholds(t *testing.T) {
	assert.Equal(t, "Excellent", BucketOf(85))
	assert.Equal(t, "Good", BucketOf(65))
	assert.Equal(t, "Average", BucketOf(45))
	assert.Equal(t, "Challenging", BucketOf(25))
	assert.Equal(t, "Difficult", BucketOf(5))
}

func TestAnalyzeProducesClampedAggregate(t *testing.T) {
	boy := Partner{
		MoonSign: reftables.Aries, MoonNakshatra: 1,
		MahadashaLord: reftables.Sun, AntardashaLord: reftables.Moon,
		MoonLongitude: 10,
	}
	girl := Partner{
		MoonSign: reftables.Cancer, MoonNakshatra: 5,
		MahadashaLord: reftables.Moon, AntardashaLord: reftables.Sun,
		MoonLongitude: 100,
	}
	report, err := Analyze(boy, girl)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Aggregate, 0.0)
	assert.LessOrEqual(t, report.Aggregate, 100.0)
	assert.NotEmpty(t, report.Bucket)
}

func TestAnalyzeRejectsInvalidNakshatra(t *testing.T) {
	boy := Partner{MoonNakshatra: 0}
	girl := Partner{MoonNakshatra: 5}
	_, err := Analyze(boy, girl)
	assert.Error(t, err)
}
