package ashtakavarga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePositions is an arbitrary but fixed set of sign positions (0-based)
// for the eight reference points, used to check totals are position
// invariant (the traditional per-subject total must hold regardless of
// where the reference points actually sit).
func samplePositions() Positions {
	return Positions{
		ContribSun:     4,
		ContribMoon:    0,
		ContribMars:    9,
		ContribMercury: 5,
		ContribJupiter: 8,
		ContribVenus:   1,
		ContribSaturn:  10,
		ContribLagna:   6,
	}
}

func TestBhinnaTotalsMatchTradition(t *testing.T) {
	expected := map[Contributor]int{
		ContribSun: 48, ContribMoon: 49, ContribMars: 39, ContribMercury: 54,
		ContribJupiter: 56, ContribVenus: 52, ContribSaturn: 39, ContribLagna: 49,
	}

	positions := samplePositions()
	for subject, want := range expected {
		bhinna, err := ComputeBhinna(subject, positions)
		require.NoError(t, err)
		sum := 0
		for _, v := range bhinna.Bindus {
			sum += v
		}
		assert.Equal(t, want, sum, "subject %s", subject)
	}
}

func TestSarvaTotalIs337(t *testing.T) {
	sarva, err := ComputeSarva(samplePositions())
	require.NoError(t, err)
	assert.Equal(t, 337, sarva.Total)
	for _, v := range sarva.Bindus {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 56)
	}
}

func TestComputeBhinnaUnknownSubject(t *testing.T) {
	_, err := ComputeBhinna("Pluto", samplePositions())
	assert.Error(t, err)
}

func TestComputeBhinnaMissingPosition(t *testing.T) {
	positions := samplePositions()
	delete(positions, ContribSaturn)
	_, err := ComputeBhinna(ContribSun, positions)
	assert.Error(t, err)
}

func TestTransitStrengthBuckets(t *testing.T) {
	assert.Equal(t, "Excellent", TransitStrength(6))
	assert.Equal(t, "Good", TransitStrength(4))
	assert.Equal(t, "Neutral", TransitStrength(2))
	assert.Equal(t, "Challenging", TransitStrength(1))
	assert.Equal(t, "Difficult", TransitStrength(0))
}

func TestSarvaStrengthBuckets(t *testing.T) {
	assert.Equal(t, "Excellent", SarvaStrength(30))
	assert.Equal(t, "Good", SarvaStrength(25))
	assert.Equal(t, "Neutral", SarvaStrength(20))
	assert.Equal(t, "Challenging", SarvaStrength(15))
	assert.Equal(t, "Difficult", SarvaStrength(5))
}
