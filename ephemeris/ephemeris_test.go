package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

func y2000() jd.JulianDay {
	return jd.FromCivil(2000, 1, 1, 12, 0, 0, 0)
}

func TestBodyLongitudeIsNormalised(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()

	for _, body := range []reftables.Planet{reftables.Sun, reftables.Moon, reftables.Mars, reftables.Rahu, reftables.Ketu} {
		lon, err := a.BodyLongitude(ctx, body, y2000(), reftables.Lahiri)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lon, 0.0)
		assert.Less(t, lon, 360.0)
	}
}

func TestRahuKetuAreOpposite(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()

	rahu, err := a.BodyLongitude(ctx, reftables.Rahu, y2000(), reftables.Lahiri)
	require.NoError(t, err)
	ketu, err := a.BodyLongitude(ctx, reftables.Ketu, y2000(), reftables.Lahiri)
	require.NoError(t, err)

	diff := rahu - ketu
	for diff < 0 {
		diff += 360
	}
	assert.InDelta(t, 180.0, diff, 1e-6)
}

func TestAyanamsaIsPositiveAndGrowsOverTime(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()

	early, err := a.Ayanamsa(ctx, reftables.Lahiri, y2000())
	require.NoError(t, err)
	later, err := a.Ayanamsa(ctx, reftables.Lahiri, y2000()+3652.5) // ~10 years later
	require.NoError(t, err)

	assert.Greater(t, early, 20.0)
	assert.Greater(t, later, early)
}

func TestAyanamsaUnknownScheme(t *testing.T) {
	a := NewSimplifiedAdapter()
	_, err := a.Ayanamsa(context.Background(), reftables.Ayanamsa("Unknown"), y2000())
	assert.Error(t, err)
}

func TestHousesWholeSignStartsAtSignBoundary(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()
	loc := GeoPosition{Latitude: 13.0827, Longitude: 80.2707}

	cusps, err := a.Houses(ctx, reftables.WholeSign, y2000(), loc, reftables.Lahiri)
	require.NoError(t, err)
	assert.Equal(t, 0.0, modThirty(cusps[0]))
	for i := 1; i < 12; i++ {
		diff := cusps[i] - cusps[i-1]
		for diff < 0 {
			diff += 360
		}
		assert.InDelta(t, 30.0, diff, 1e-9)
	}
}

func modThirty(v float64) float64 {
	m := v
	for m >= 30 {
		m -= 30
	}
	for m < 0 {
		m += 30
	}
	return m
}

func TestSunriseBeforeIsBeforeMoment(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()
	loc := GeoPosition{Latitude: 13.0827, Longitude: 80.2707}

	noon := jd.FromCivil(2024, 7, 18, 12, 0, 0, 5.5)
	rise, err := a.SunriseBefore(ctx, noon, loc)
	require.NoError(t, err)
	assert.Less(t, float64(rise), float64(noon))
}

func TestSunsetAfterIsAfterMoment(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()
	loc := GeoPosition{Latitude: 13.0827, Longitude: 80.2707}

	noon := jd.FromCivil(2024, 7, 18, 12, 0, 0, 5.5)
	set, err := a.SunsetAfter(ctx, noon, loc)
	require.NoError(t, err)
	assert.Greater(t, float64(set), float64(noon))
}

func TestNextStationErrorsForBodyThatNeverStations(t *testing.T) {
	a := NewSimplifiedAdapter()
	ctx := context.Background()

	// The lunar nodes regress at a constant rate and never station; a
	// station search on them should exhaust the window, not crash.
	_, err := a.NextStation(ctx, reftables.Rahu, y2000(), 30*24*time.Hour)
	assert.Error(t, err)
}
