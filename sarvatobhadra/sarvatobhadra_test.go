package sarvatobhadra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/reftables"
)

func TestBuildCentreIsJanmaNakshatra(t *testing.T) {
	c, err := Build(5, nil)
	require.NoError(t, err)
	v, err := c.CellAt(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestBuildSpiralWrapsAt27(t *testing.T) {
	c, err := Build(27, nil)
	require.NoError(t, err)
	v, err := c.CellAt(4, 5) // second cell in the pattern
	require.NoError(t, err)
	assert.Equal(t, 1, v) // wraps from 27 to 1
}

func TestBuildInvalidJanmaErrors(t *testing.T) {
	_, err := Build(0, nil)
	assert.Error(t, err)
	_, err = Build(28, nil)
	assert.Error(t, err)
}

func TestCellAtOutOfRangeErrors(t *testing.T) {
	c, err := Build(1, nil)
	require.NoError(t, err)
	_, err = c.CellAt(9, 0)
	assert.Error(t, err)
}

func TestNakshatrasInDirectionCenterIsSingleCell(t *testing.T) {
	c, err := Build(10, nil)
	require.NoError(t, err)
	ns := c.NakshatrasInDirection(Center)
	require.Len(t, ns, 1)
	assert.Equal(t, 10, ns[0])
}

func TestPlanetsInDirectionPlacesPlanetAtItsNakshatraCell(t *testing.T) {
	c, err := Build(1, map[reftables.Planet]int{reftables.Jupiter: 1})
	require.NoError(t, err)
	planets := c.PlanetsInDirection(Center)
	require.Len(t, planets, 1)
	assert.Equal(t, reftables.Jupiter, planets[0])
}

func TestQualityOfCountsBeneficsAndMalefics(t *testing.T) {
	c, err := Build(1, map[reftables.Planet]int{reftables.Jupiter: 1, reftables.Saturn: 1})
	require.NoError(t, err)
	q := c.QualityOf(Center)
	assert.Equal(t, 1, q.BeneficCount)
	assert.Equal(t, 1, q.MaleficCount)
	assert.Equal(t, 0, q.Net)
}

func TestCategoryOfJanmaIsOffsetZero(t *testing.T) {
	cat, err := CategoryOf(5, 5)
	require.NoError(t, err)
	assert.Equal(t, Janma, cat)
}

func TestCategoryOfSampatIsOffsetOne(t *testing.T) {
	cat, err := CategoryOf(5, 6)
	require.NoError(t, err)
	assert.Equal(t, Sampat, cat)
}

func TestCategoryOfWrapsAcrossCycle(t *testing.T) {
	cat, err := CategoryOf(27, 1) // offset 1 -> Sampat
	require.NoError(t, err)
	assert.Equal(t, Sampat, cat)
}

func TestCategoryOfInvalidRangeErrors(t *testing.T) {
	_, err := CategoryOf(0, 5)
	assert.Error(t, err)
}

func TestFavourabilityOfJanmaIsNeutral(t *testing.T) {
	assert.Equal(t, NeutralTara, FavourabilityOf(Janma))
}

func TestFavourabilityOfSampatIsFavourable(t *testing.T) {
	assert.Equal(t, Favourable, FavourabilityOf(Sampat))
}

func TestScoreClampsToHundred(t *testing.T) {
	v := Score(100, Sampat)
	assert.Equal(t, 100.0, v)
}

func TestScoreClampsToZero(t *testing.T) {
	v := Score(-100, Vipat)
	assert.Equal(t, 0.0, v)
}
