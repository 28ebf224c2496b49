package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/observability"
	"github.com/vedastra/jyotisha/reftables"
)

func sampleRequest() ChartRequest {
	return ChartRequest{
		Date:           time.Date(1990, 6, 15, 10, 30, 0, 0, time.UTC),
		Location:       Location{Latitude: 13.0827, Longitude: 80.2707, Name: "Chennai"},
		UTCOffsetHours: 5.5,
	}
}

func newTestService() *Service {
	return NewService(ephemeris.NewSimplifiedAdapter(), observability.NewLocalObserver())
}

func TestGetChartPlacesAllBodies(t *testing.T) {
	s := newTestService()
	result, err := s.GetChart(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Len(t, result.Bodies, 9)
	for _, p := range []reftables.Planet{reftables.Sun, reftables.Moon, reftables.Rahu, reftables.Ketu} {
		body, ok := result.Bodies[p]
		require.True(t, ok, "missing body %s", p)
		assert.GreaterOrEqual(t, body.Longitude, 0.0)
		assert.Less(t, body.Longitude, 360.0)
		assert.NotEmpty(t, body.Nakshatra.Name)
	}
}

func TestGetChartReportsTwelveHousesAndFourAngles(t *testing.T) {
	s := newTestService()
	result, err := s.GetChart(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Len(t, result.Houses, 12)
	assert.Len(t, result.Angles, 4)
}

func TestGetChartDefaultsHouseSystemAndAyanamsa(t *testing.T) {
	req := sampleRequest()
	req.HouseSystem = ""
	req.Ayanamsa = ""

	s := newTestService()
	result, err := s.GetChart(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, result.JulianDay)
}

func TestGetChartIncludesPanchanga(t *testing.T) {
	s := newTestService()
	result, err := s.GetChart(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Panchanga.Tithi.Number, 1)
	assert.LessOrEqual(t, result.Panchanga.Tithi.Number, 30)
}

func TestGetTransitsCoversEveryBodyAgainstNatalMoon(t *testing.T) {
	s := newTestService()
	natal := sampleRequest()
	moment := natal
	moment.Date = time.Date(2024, 7, 18, 6, 30, 0, 0, time.UTC)

	result, err := s.GetTransits(context.Background(), TransitRequest{Natal: natal, Moment: moment})
	require.NoError(t, err)

	assert.Len(t, result.Records, 9)
	for _, p := range []reftables.Planet{reftables.Sun, reftables.Moon, reftables.Saturn} {
		record, ok := result.Records[p]
		require.True(t, ok, "missing transit record for %s", p)
		assert.GreaterOrEqual(t, record.HouseFromMoon, 1)
		assert.LessOrEqual(t, record.HouseFromMoon, 12)
		assert.NotEmpty(t, record.Strength.Bucket)
	}
}
