package chart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eph "github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/reftables"
)

func sampleInput() Input {
	return Input{
		Year: 1990, Month: 6, Day: 15,
		Hour: 10, Minute: 30, Second: 0,
		UTCOffsetHours: 5.5,
		Latitude:       13.0827, Longitude: 80.2707,
		HouseSystem: reftables.WholeSign,
		Ayanamsa:    reftables.Lahiri,
	}
}

func TestBuildAssemblesAllBodies(t *testing.T) {
	adapter := eph.NewSimplifiedAdapter()
	c, err := Build(context.Background(), adapter, sampleInput())
	require.NoError(t, err)

	for _, p := range AllBodies {
		body, err := c.Body(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, body.Longitude, 0.0)
		assert.Less(t, body.Longitude, 360.0)
		assert.Equal(t, body.Speed < 0, body.Retrograde)
	}
}

func TestHousesSumToFullCircle(t *testing.T) {
	adapter := eph.NewSimplifiedAdapter()
	c, err := Build(context.Background(), adapter, sampleInput())
	require.NoError(t, err)

	var total float64
	for i := 1; i <= 12; i++ {
		h, err := c.House(i)
		require.NoError(t, err)
		total += h.Size
	}
	assert.InDelta(t, 360.0, total, 1e-6)
}

func TestAnglesAreOpposite(t *testing.T) {
	adapter := eph.NewSimplifiedAdapter()
	c, err := Build(context.Background(), adapter, sampleInput())
	require.NoError(t, err)

	asc, err := c.AngleOf(Asc)
	require.NoError(t, err)
	desc, err := c.AngleOf(Desc)
	require.NoError(t, err)

	diff := desc.Longitude - asc.Longitude
	for diff < 0 {
		diff += 360
	}
	assert.InDelta(t, 180.0, diff, 1e-6)
}

func TestBodyUnknownPlanetErrors(t *testing.T) {
	adapter := eph.NewSimplifiedAdapter()
	c, err := Build(context.Background(), adapter, sampleInput())
	require.NoError(t, err)

	_, err = c.Body(reftables.Uranus)
	assert.Error(t, err)
}

func TestHouseInvalidIndexErrors(t *testing.T) {
	adapter := eph.NewSimplifiedAdapter()
	c, err := Build(context.Background(), adapter, sampleInput())
	require.NoError(t, err)

	_, err = c.House(13)
	assert.Error(t, err)
}
