package varga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestD1IsIdentity(t *testing.T) {
	lon, err := Project(123.45, D1)
	require.NoError(t, err)
	assert.Equal(t, 123.45, lon)
}

func TestD3FirstDrekkanaIsSameSign(t *testing.T) {
	// 5 degrees into Aries (sign 0): first drekkana, same sign.
	lon, err := Project(5.0, D3)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, lon, 1e-9) // Aries 0-30 scaled: 5*3 = 15 within Aries
}

func TestD3ThirdDrekkanaIsNinthSign(t *testing.T) {
	// 25 degrees into Aries: third drekkana -> 9th sign from Aries = Sagittarius (8).
	lon, err := Project(25.0, D3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lon, 240.0) // Sagittarius starts at 240
	assert.Less(t, lon, 270.0)
}

func TestD9FireSignStartsAtAries(t *testing.T) {
	// 1 degree into Aries: navamsha 0, fire -> start Aries.
	lon, err := Project(1.0, D9)
	require.NoError(t, err)
	assert.Less(t, lon, 30.0)
}

func TestD9WaterSignStartsAtCancer(t *testing.T) {
	// 1 degree into Cancer (sign 3, 90-120): navamsha 0, water -> start Cancer (90).
	lon, err := Project(90.0+1.0, D9)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lon, 90.0)
	assert.Less(t, lon, 120.0)
}

func TestD12FullCycleMapsConsecutiveSigns(t *testing.T) {
	// 0 degrees into Aries: division 0, result sign = Aries itself.
	lon, err := Project(0.0, D12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lon)
}

func TestD20MovableStartsAtAries(t *testing.T) {
	lon, err := Project(0.0, D20) // Aries, division 0 -> Aries
	require.NoError(t, err)
	assert.Equal(t, 0.0, lon)
}

func TestD20FixedStartsAtLeo(t *testing.T) {
	lon, err := Project(30.0, D20) // Taurus (fixed), division 0 -> Leo (120)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, lon, 1e-9)
}

func TestD24DualStartsAtSagittarius(t *testing.T) {
	lon, err := Project(60.0, D24) // Gemini (dual), division 0 -> Sagittarius (240)
	require.NoError(t, err)
	assert.InDelta(t, 240.0, lon, 1e-9)
}

func TestD30OddSignFirstPortionIsMarsRuledElement(t *testing.T) {
	// 2 degrees into Aries (odd sign): 0-5 -> Mars, ruled signs Aries/Scorpio,
	// same element (fire) as Aries itself -> Aries.
	lon, err := Project(2.0, D30)
	require.NoError(t, err)
	assert.Less(t, lon, 30.0)
}

func TestD45DualStartsAtSagittarius(t *testing.T) {
	lon, err := Project(62.0, D45) // Gemini (dual)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lon, 240.0)
	assert.Less(t, lon, 360.0)
}

func TestProjectUnsupportedScheme(t *testing.T) {
	_, err := Project(10.0, Scheme(99))
	assert.Error(t, err)
}

func TestAllSchemesHandleFullCircleWithoutError(t *testing.T) {
	for _, scheme := range AllSchemes {
		for lon := 0.0; lon < 360.0; lon += 11.0 {
			out, err := Project(lon, scheme)
			require.NoError(t, err, "scheme %v at %f", scheme, lon)
			assert.GreaterOrEqual(t, out, 0.0)
			assert.Less(t, out, 360.0)
		}
	}
}
