// Package ephemeris exposes the adapter port spec.md 4.3 requires of any
// ephemeris backend: body longitude/speed, sunrise/sunset boundary search,
// ayanamsa value, house cusps, eclipse visibility and next-station search.
// SimplifiedAdapter is the reference implementation, built entirely on the
// closed-form formulas in bodies.go and horizon.go; chart, varga, shadbala,
// panchanga and transit never reach into a planetarium library directly,
// only through this port, so a higher-precision Adapter can replace it
// without touching any of them.
package ephemeris

import (
	"context"
	"time"

	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

// Body names a point the adapter can resolve; the Sanskrit graha names plus
// the lunar nodes, matching reftables.Planet.
type Body = reftables.Planet

// State is a body's instantaneous sidereal longitude, latitude and daily
// motion, the minimal state chart assembly and dignity/shadbala need.
type State struct {
	Longitude float64 // sidereal, degrees, normalised [0,360)
	Latitude  float64
	Speed     float64 // degrees/day; negative means retrograde
	Distance  float64
}

// GeoPosition is an observer's location for topocentric operations
// (sunrise/sunset, houses).
type GeoPosition struct {
	Latitude  float64
	Longitude float64
	// ElevationMeters affects sunrise/sunset only marginally; carried for
	// completeness, not presently applied to the horizon-dip calculation.
	ElevationMeters float64
}

// Eclipse describes an eclipse of the requested kind found by a global
// search from a given moment, per spec.md 4.3's
// solar_eclipse_global/lunar_eclipse_global operations. The search takes
// no observer location; Visible is not tied to any place on Earth.
type Eclipse struct {
	Visible   bool
	MaxJD     jd.JulianDay
	Magnitude float64
}

// Station is the next date a body turns stationary (direct or retrograde).
type Station struct {
	JD        jd.JulianDay
	Direction string // "direct" or "retrograde"
}

// Adapter is the full port the rest of this module programs against.
// Everything above it (chart, varga, shadbala, panchanga, transit...) is
// ephemeris-backend agnostic; swapping Adapter implementations never
// touches their code.
type Adapter interface {
	// BodyLongitude returns a body's sidereal longitude in degrees.
	BodyLongitude(ctx context.Context, body Body, moment jd.JulianDay, ayanamsa reftables.Ayanamsa) (float64, error)

	// BodyState returns a body's full longitude/latitude/speed/distance state.
	BodyState(ctx context.Context, body Body, moment jd.JulianDay, ayanamsa reftables.Ayanamsa) (State, error)

	// Ayanamsa returns the tropical-to-sidereal offset, in degrees, for the
	// given scheme at the given moment.
	Ayanamsa(ctx context.Context, scheme reftables.Ayanamsa, moment jd.JulianDay) (float64, error)

	// SunriseBefore/SunsetAfter/SunriseAfter/SunsetBefore locate the nearest
	// horizon crossing of the requested kind around moment, at loc.
	SunriseBefore(ctx context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error)
	SunsetAfter(ctx context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error)
	SunriseAfter(ctx context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error)
	SunsetBefore(ctx context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error)

	// Houses returns the twelve sidereal house-cusp longitudes for the given
	// system, moment and location; index 0 is the ascendant (house 1).
	Houses(ctx context.Context, system reftables.HouseSystem, moment jd.JulianDay, loc GeoPosition, ayanamsa reftables.Ayanamsa) ([12]float64, error)

	// SolarEclipseGlobal/LunarEclipseGlobal report whether an eclipse of the
	// body's kind occurs within searchWindow of moment, anywhere on Earth.
	SolarEclipseGlobal(ctx context.Context, moment jd.JulianDay, searchWindow time.Duration) (Eclipse, error)
	LunarEclipseGlobal(ctx context.Context, moment jd.JulianDay, searchWindow time.Duration) (Eclipse, error)

	// NextStation finds the next moment, on or after `from`, the body turns
	// stationary.
	NextStation(ctx context.Context, body Body, from jd.JulianDay, searchWindow time.Duration) (Station, error)
}
