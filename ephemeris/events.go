package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

// scanStep is the sampling interval used by the eclipse and station search
// below: fine enough to not miss a lunar month's single new/full moon, far
// coarser than a real eclipse-finding algorithm needs, which is the
// deliberate trade this adapter makes everywhere a closed-form geometric
// formula was unavailable (see DESIGN.md).
const scanStep = 6 * time.Hour

// eclipseLatitudeThreshold is the rough node-proximity (Moon ecliptic
// latitude) below which a syzygy can produce an eclipse; it is not a
// physically exact limit (that depends on the Sun-Moon-node geometry in
// three dimensions) but a serviceable approximation for a provider that
// does not have access to a real eclipse-finding library.
const eclipseLatitudeThreshold = 1.5

func (a *SimplifiedAdapter) scanSyzygy(ctx context.Context, moment jd.JulianDay, searchWindow time.Duration, targetElongation float64) (Eclipse, error) {
	steps := int(searchWindow / scanStep)
	if steps < 1 {
		steps = 1
	}
	start := moment - jd.JulianDay(float64(steps)/2.0*scanStep.Hours()/24.0)

	best := Eclipse{}
	bestDiff := 360.0
	var bestJD jd.JulianDay
	var bestLat float64

	for i := 0; i <= steps; i++ {
		t := start + jd.JulianDay(float64(i)*scanStep.Hours()/24.0)
		sunState, err := a.BodyState(ctx, reftables.Sun, t, reftables.DefaultAyanamsa)
		if err != nil {
			return Eclipse{}, fmt.Errorf("ephemeris: eclipse scan: %w", err)
		}
		moonState, err := a.BodyState(ctx, reftables.Moon, t, reftables.DefaultAyanamsa)
		if err != nil {
			return Eclipse{}, fmt.Errorf("ephemeris: eclipse scan: %w", err)
		}
		elongation := angle.ClosestDistance(sunState.Longitude, moonState.Longitude)
		diff := math.Abs(math.Abs(elongation) - targetElongation)
		if diff < bestDiff {
			bestDiff = diff
			bestJD = t
			bestLat = moonState.Latitude
		}
	}

	visible := bestDiff < eclipseLatitudeThreshold && math.Abs(bestLat) < eclipseLatitudeThreshold
	magnitude := 0.0
	if visible {
		magnitude = 1.0 - math.Abs(bestLat)/eclipseLatitudeThreshold
	}
	best = Eclipse{Visible: visible, MaxJD: bestJD, Magnitude: magnitude}
	return best, nil
}

// SolarEclipseGlobal implements Adapter.SolarEclipseGlobal by scanning for
// the new moon (Sun-Moon conjunction) nearest moment within searchWindow and
// checking the Moon's ecliptic latitude at that instant.
func (a *SimplifiedAdapter) SolarEclipseGlobal(ctx context.Context, moment jd.JulianDay, searchWindow time.Duration) (Eclipse, error) {
	return a.scanSyzygy(ctx, moment, searchWindow, 0)
}

// LunarEclipseGlobal implements Adapter.LunarEclipseGlobal by scanning for
// the full moon (Sun-Moon opposition) nearest moment within searchWindow.
func (a *SimplifiedAdapter) LunarEclipseGlobal(ctx context.Context, moment jd.JulianDay, searchWindow time.Duration) (Eclipse, error) {
	return a.scanSyzygy(ctx, moment, searchWindow, 180)
}

// NextStation implements Adapter.NextStation by sampling the body's speed
// forward from `from` until its sign flips, then reporting the sampled
// moment the flip was detected at (not a refined root-find — adequate for
// the day-level precision stationary dates are normally quoted at).
func (a *SimplifiedAdapter) NextStation(ctx context.Context, body Body, from jd.JulianDay, searchWindow time.Duration) (Station, error) {
	steps := int(searchWindow / scanStep)
	if steps < 1 {
		steps = 1
	}

	state, err := a.BodyState(ctx, body, from, reftables.DefaultAyanamsa)
	if err != nil {
		return Station{}, fmt.Errorf("ephemeris: station search: %w", err)
	}
	sign := math.Signbit(state.Speed)

	for i := 1; i <= steps; i++ {
		t := from + jd.JulianDay(float64(i)*scanStep.Hours()/24.0)
		next, err := a.BodyState(ctx, body, t, reftables.DefaultAyanamsa)
		if err != nil {
			return Station{}, fmt.Errorf("ephemeris: station search: %w", err)
		}
		if math.Signbit(next.Speed) != sign {
			direction := "direct"
			if math.Signbit(next.Speed) {
				direction = "retrograde"
			}
			return Station{JD: t, Direction: direction}, nil
		}
	}
	return Station{}, fmt.Errorf("ephemeris: no station found for %s within %s of %v", body, searchWindow, jd.ToTime(from))
}
