package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/ashtakavarga"
	"github.com/vedastra/jyotisha/reftables"
)

func TestHouseFromMoon(t *testing.T) {
	assert.Equal(t, 4, HouseFromMoon(reftables.Aries, reftables.Cancer))
	assert.Equal(t, 1, HouseFromMoon(reftables.Leo, reftables.Leo))
}

func TestEffectOfKnownPlanetHouse(t *testing.T) {
	eff, err := EffectOf(reftables.Sun, 3)
	require.NoError(t, err)
	assert.Equal(t, Favorable, eff.Effect)
}

func TestEffectOfUnknownPlanetErrors(t *testing.T) {
	_, err := EffectOf(reftables.Planet("Comet"), 1)
	assert.Error(t, err)
}

func TestVedhaObstructorsDetectsOccupant(t *testing.T) {
	obstructors := VedhaObstructors(1, map[reftables.Planet]int{reftables.Mars: 7, reftables.Venus: 2})
	require.Len(t, obstructors, 1)
	assert.Equal(t, reftables.Mars, obstructors[0])
}

func TestArgalaSupportersDetectsOccupant(t *testing.T) {
	supporters := ArgalaSupporters(1, map[reftables.Planet]int{reftables.Venus: 4, reftables.Mars: 7})
	require.Len(t, supporters, 1)
	assert.Equal(t, reftables.Venus, supporters[0])
}

func TestComputeStrengthFavorableWithVedhaAndArgala(t *testing.T) {
	s := ComputeStrength(Favorable, 1, 1)
	assert.Equal(t, 1.5, s.Score)
	assert.Equal(t, "Moderate Favorable", s.Bucket)
}

func TestComputeStrengthStrongUnfavorable(t *testing.T) {
	s := ComputeStrength(Unfavorable, 2, 0)
	assert.Equal(t, -4.0, s.Score)
	assert.Equal(t, "Strong Unfavorable", s.Bucket)
}

func TestComputeStrengthNeutral(t *testing.T) {
	s := ComputeStrength(NeutralEffect, 0, 0)
	assert.Equal(t, 0.0, s.Score)
	assert.Equal(t, "Neutral", s.Bucket)
}

func TestBindusForTransitNodesReturnZero(t *testing.T) {
	v, err := BindusForTransit(reftables.Rahu, reftables.Aries, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func samplePositions() ashtakavarga.Positions {
	return ashtakavarga.Positions{
		ashtakavarga.ContribSun: 0, ashtakavarga.ContribMoon: 3, ashtakavarga.ContribMars: 7,
		ashtakavarga.ContribMercury: 2, ashtakavarga.ContribJupiter: 8, ashtakavarga.ContribVenus: 1,
		ashtakavarga.ContribSaturn: 9, ashtakavarga.ContribLagna: 0,
	}
}

func TestBindusForTransitComputesForClassicalPlanet(t *testing.T) {
	v, err := BindusForTransit(reftables.Sun, reftables.Aries, samplePositions())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, 8)
}

func TestBuildRecordAssemblesFullTransitRecord(t *testing.T) {
	transitingHouses := map[reftables.Planet]int{
		reftables.Sun: 3, reftables.Moon: 1, reftables.Mars: 7,
	}
	rec, err := BuildRecord(reftables.Sun, reftables.Aries, reftables.Cancer, transitingHouses, samplePositions())
	require.NoError(t, err)
	assert.Equal(t, 4, rec.HouseFromMoon)
	assert.NotEmpty(t, rec.Strength.Bucket)
}
