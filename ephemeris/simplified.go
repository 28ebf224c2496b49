package ephemeris

import (
	"context"
	"fmt"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

var _ Adapter = (*SimplifiedAdapter)(nil)

// SimplifiedAdapter implements Adapter purely in terms of closed-form
// mean-element formulas (sunPosition, moonPosition, planetTable) -- no
// external ephemeris library or data file required. It exercises the full
// port contract exactly as spec.md 4.3 anticipates a reference adapter
// must, trading arcsecond-level precision for a dependency-free default.
type SimplifiedAdapter struct{}

// NewSimplifiedAdapter builds a SimplifiedAdapter. It carries no state: all
// of its formulas are pure functions of the requested Julian day.
func NewSimplifiedAdapter() *SimplifiedAdapter {
	return &SimplifiedAdapter{}
}

func tropicalPosition(body reftables.Planet, moment jd.JulianDay) (rawPosition, error) {
	t := daysSinceJ2000(float64(moment))
	switch body {
	case reftables.Sun:
		return sunPosition(t), nil
	case reftables.Moon:
		return moonPosition(t), nil
	case reftables.Rahu, reftables.Ketu:
		// The lunar nodes are not part of planetTable; derive them from the
		// Moon's mean node regression, treating them as first-class grahas
		// the way reftables' Vimsottari cycle already does.
		return meanNodePosition(body, moment), nil
	default:
		if pos, ok := tabulatedPlanetPosition(body, t); ok {
			return pos, nil
		}
		return rawPosition{}, fmt.Errorf("ephemeris: unknown body %q", body)
	}
}

// meanNodePosition computes the Moon's mean ascending node (Rahu) and its
// antipode (Ketu) from the standard linear regression formula, retrograde
// at the usual ~0.0529 deg/day.
func meanNodePosition(body reftables.Planet, moment jd.JulianDay) rawPosition {
	t := (float64(moment) - 2451545.0) / 36525.0
	meanNode := 125.0445222 - 1934.1362608*t + 0.0020708*t*t
	meanNode = angle.Norm(meanNode)
	if body == reftables.Ketu {
		meanNode = angle.Norm(meanNode + 180)
	}
	return rawPosition{Longitude: meanNode, Speed: -0.0529}
}

// BodyLongitude implements Adapter.BodyLongitude.
func (a *SimplifiedAdapter) BodyLongitude(ctx context.Context, body Body, moment jd.JulianDay, ayanamsaTag reftables.Ayanamsa) (float64, error) {
	state, err := a.BodyState(ctx, body, moment, ayanamsaTag)
	if err != nil {
		return 0, err
	}
	return state.Longitude, nil
}

// BodyState implements Adapter.BodyState: look up the tropical position,
// subtract the ayanamsa to get the sidereal longitude chart assembly works
// in throughout this module.
func (a *SimplifiedAdapter) BodyState(ctx context.Context, body Body, moment jd.JulianDay, ayanamsaTag reftables.Ayanamsa) (State, error) {
	pos, err := tropicalPosition(body, moment)
	if err != nil {
		return State{}, fmt.Errorf("ephemeris: body state for %s: %w", body, err)
	}
	ayanamsaValue, err := a.Ayanamsa(ctx, ayanamsaTag, moment)
	if err != nil {
		return State{}, err
	}
	return State{
		Longitude: angle.Norm(pos.Longitude - ayanamsaValue),
		Latitude:  pos.Latitude,
		Speed:     pos.Speed,
		Distance:  pos.Distance,
	}, nil
}
