// Package chart assembles an immutable birth (or any-moment) chart from a
// civil date-time and geographic position: it invokes the ephemeris
// adapter once, normalises every body into sign/sign-longitude/retrograde
// form, attaches houses and angles, and exposes object-by-ID access. Once
// built, a Chart never changes; every derived record (varga, panchanga,
// shadbala, ashtakavarga...) is a pure function of it.
package chart

import (
	"context"
	"fmt"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	eph "github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/reftables"
)

// AngleID identifies one of the four chart angles.
type AngleID string

const (
	Asc   AngleID = "ASC"
	MC    AngleID = "MC"
	Desc  AngleID = "DESC"
	IC    AngleID = "IC"
)

// Angle is a named chart angle with its longitude.
type Angle struct {
	ID        AngleID
	Longitude float64
}

// BodyPosition is the normalised placement of one body, matching spec.md
// 3's body-position invariant: Sign = floor(Longitude/30), SignLongitude =
// Longitude mod 30, Retrograde agrees with Speed < 0.
type BodyPosition struct {
	Planet        reftables.Planet
	Longitude     float64
	Latitude      float64
	Speed         float64
	Sign          reftables.Sign
	SignLongitude float64
	Retrograde    bool
	House         int // 1..12, the house this body falls in
}

// HouseCusp is one of the twelve house cusps.
type HouseCusp struct {
	Index     int // 1..12
	Longitude float64
	Sign      reftables.Sign
	Size      float64 // degrees to the next cusp
}

// Input describes the moment and place a Chart is built for.
type Input struct {
	Year, Month, Day          int
	Hour, Minute, Second      int
	UTCOffsetHours            float64
	Latitude, Longitude       float64
	HouseSystem               reftables.HouseSystem
	Ayanamsa                  reftables.Ayanamsa
}

// AllBodies is every body the chart engine places, in traditional order.
var AllBodies = []reftables.Planet{
	reftables.Sun, reftables.Moon, reftables.Mars, reftables.Mercury,
	reftables.Jupiter, reftables.Venus, reftables.Saturn, reftables.Rahu, reftables.Ketu,
}

// Chart is the immutable, fully-assembled result. Construct once via
// Build; every field is read-only to consumers thereafter.
type Chart struct {
	JulianDay      jd.JulianDay
	Input          Input
	Bodies         map[reftables.Planet]BodyPosition
	Houses         map[int]HouseCusp
	Angles         map[AngleID]Angle
}

// Build assembles a Chart by invoking the ephemeris adapter exactly once
// per body plus one Houses call, per spec.md's chart-assembly contract.
func Build(ctx context.Context, adapter eph.Adapter, in Input) (*Chart, error) {
	moment := jd.FromCivil(in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second, in.UTCOffsetHours)

	cusps, err := adapter.Houses(ctx, in.HouseSystem, moment, eph.GeoPosition{Latitude: in.Latitude, Longitude: in.Longitude}, in.Ayanamsa)
	if err != nil {
		return nil, fmt.Errorf("chart: houses: %w", err)
	}

	houses := make(map[int]HouseCusp, 12)
	for i := 0; i < 12; i++ {
		next := cusps[(i+1)%12]
		size := next - cusps[i]
		for size <= 0 {
			size += 360
		}
		houses[i+1] = HouseCusp{
			Index:     i + 1,
			Longitude: cusps[i],
			Sign:      reftables.Sign(angle.SignIndex(cusps[i])),
			Size:      size,
		}
	}

	asc := cusps[0]
	mc := cusps[9]
	angles := map[AngleID]Angle{
		Asc:  {Asc, asc},
		MC:   {MC, mc},
		Desc: {Desc, angle.Norm(asc + 180)},
		IC:   {IC, angle.Norm(mc + 180)},
	}

	bodies := make(map[reftables.Planet]BodyPosition, len(AllBodies))
	for _, p := range AllBodies {
		state, err := adapter.BodyState(ctx, p, moment, in.Ayanamsa)
		if err != nil {
			return nil, fmt.Errorf("chart: body state for %s: %w", p, err)
		}
		bodies[p] = BodyPosition{
			Planet:        p,
			Longitude:     state.Longitude,
			Latitude:      state.Latitude,
			Speed:         state.Speed,
			Sign:          reftables.Sign(angle.SignIndex(state.Longitude)),
			SignLongitude: angle.SignLongitude(state.Longitude),
			Retrograde:    state.Speed < 0,
			House:         houseOf(state.Longitude, houses),
		}
	}

	return &Chart{
		JulianDay: moment,
		Input:     in,
		Bodies:    bodies,
		Houses:    houses,
		Angles:    angles,
	}, nil
}

// houseOf finds the whole-sign-equivalent house a longitude falls in: the
// house whose cusp-to-next-cusp span contains it.
func houseOf(lon float64, houses map[int]HouseCusp) int {
	for i := 1; i <= 12; i++ {
		h := houses[i]
		d := lon - h.Longitude
		for d < 0 {
			d += 360
		}
		if d < h.Size {
			return i
		}
	}
	return 0
}

// Body returns a body's position, erroring if the chart carries no such
// body (never true for AllBodies, but guards extended/asteroid lookups).
func (c *Chart) Body(p reftables.Planet) (BodyPosition, error) {
	b, ok := c.Bodies[p]
	if !ok {
		return BodyPosition{}, fmt.Errorf("chart: no such body %q in this chart", p)
	}
	return b, nil
}

// House returns house cusp 1..12.
func (c *Chart) House(index int) (HouseCusp, error) {
	h, ok := c.Houses[index]
	if !ok {
		return HouseCusp{}, fmt.Errorf("chart: invalid house index %d", index)
	}
	return h, nil
}

// AngleOf returns one of the four chart angles.
func (c *Chart) AngleOf(id AngleID) (Angle, error) {
	a, ok := c.Angles[id]
	if !ok {
		return Angle{}, fmt.Errorf("chart: invalid angle %q", id)
	}
	return a, nil
}

// Ascendant is a convenience accessor for the ASC angle's longitude.
func (c *Chart) Ascendant() float64 {
	return c.Angles[Asc].Longitude
}
