// Package api is the read-only result-access façade (spec.md 2) over an
// assembled chart: it drives the Adapter -> Chart -> nakshatra/varga/
// panchanga pipeline once per request and returns a single flattened
// result, the way a server or CLI handler wants to render it.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/vedastra/jyotisha/ashtakavarga"
	"github.com/vedastra/jyotisha/chart"
	eph "github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/nakshatra"
	"github.com/vedastra/jyotisha/observability"
	"github.com/vedastra/jyotisha/panchanga"
	"github.com/vedastra/jyotisha/reftables"
	"github.com/vedastra/jyotisha/transit"
	"github.com/vedastra/jyotisha/varga"
)

// Service assembles charts against a fixed ephemeris.Adapter and exposes
// them through the flattened result types below.
type Service struct {
	adapter  eph.Adapter
	observer observability.ObserverInterface
	logger   *observability.ErrorRecorder
}

// NewService builds a Service around an ephemeris backend. Pass
// ephemeris.NewSimplifiedAdapter() for the dependency-free reference
// backend.
func NewService(adapter eph.Adapter, observer observability.ObserverInterface) *Service {
	return &Service{
		adapter:  adapter,
		observer: observer,
		logger:   observability.NewErrorRecorder(),
	}
}

// BodyResult is one graha's full placement: its raw position plus every
// derived record (nakshatra/pada, KP pointer, Navamsa and Dasamsa
// projection) the façade exposes without a second round-trip.
type BodyResult struct {
	Planet        reftables.Planet   `json:"planet"`
	Longitude     float64            `json:"longitude"`
	Latitude      float64            `json:"latitude"`
	Speed         float64            `json:"speed"`
	Retrograde    bool               `json:"retrograde"`
	Sign          reftables.Sign     `json:"sign"`
	SignLongitude float64            `json:"sign_longitude"`
	House         int                `json:"house"`
	Nakshatra     nakshatra.Placement `json:"nakshatra"`
	KPPointer     reftables.KPPointer `json:"kp_pointer"`
	NavamsaSign   reftables.Sign     `json:"navamsa_sign"`
	DasamsaSign   reftables.Sign     `json:"dasamsa_sign"`
}

// HouseResult is one house cusp.
type HouseResult struct {
	Index     int            `json:"index"`
	Longitude float64        `json:"longitude"`
	Sign      reftables.Sign `json:"sign"`
}

// AngleResult is one of the four chart angles.
type AngleResult struct {
	ID        chart.AngleID `json:"id"`
	Longitude float64       `json:"longitude"`
}

// ChartResult is the full façade response for one moment and place:
// every placed body plus its derived records, the house/angle frame, and
// the day's panchanga snapshot.
type ChartResult struct {
	Version     Version                       `json:"version"`
	GeneratedAt time.Time                     `json:"generated_at"`
	JulianDay   jd.JulianDay                  `json:"julian_day"`
	Bodies      map[reftables.Planet]BodyResult `json:"bodies"`
	Houses      [12]HouseResult               `json:"houses"`
	Angles      map[chart.AngleID]AngleResult `json:"angles"`
	Panchanga   panchanga.Snapshot            `json:"panchanga"`
}

// resolveHouseSystem and resolveAyanamsa fall back to the module's Vedic
// defaults (Whole-Sign houses, Lahiri ayanamsa) when a request leaves the
// field blank.
func resolveHouseSystem(s string) reftables.HouseSystem {
	if s == "" {
		return reftables.DefaultHouseSystem
	}
	return reftables.HouseSystem(s)
}

func resolveAyanamsa(s string) reftables.Ayanamsa {
	if s == "" {
		return reftables.DefaultAyanamsa
	}
	return reftables.Ayanamsa(s)
}

// GetChart assembles a Chart for req and flattens it, together with each
// body's nakshatra/KP/varga records and the day's panchanga snapshot,
// into a single ChartResult.
func (s *Service) GetChart(ctx context.Context, req ChartRequest) (*ChartResult, error) {
	ctx, span := s.observer.CreateSpan(ctx, "api.Service.GetChart")
	defer span.End()

	s.logger.RecordCalculationStart(ctx, "GetChart", map[string]interface{}{
		"date":     req.Date.Format(time.RFC3339),
		"location": fmt.Sprintf("%.4f,%.4f", req.Location.Latitude, req.Location.Longitude),
	})
	start := time.Now()

	houseSystem := resolveHouseSystem(req.HouseSystem)
	ayanamsa := resolveAyanamsa(req.Ayanamsa)

	in := chart.Input{
		Year: req.Date.Year(), Month: int(req.Date.Month()), Day: req.Date.Day(),
		Hour: req.Date.Hour(), Minute: req.Date.Minute(), Second: req.Date.Second(),
		UTCOffsetHours: req.UTCOffsetHours,
		Latitude:       req.Location.Latitude,
		Longitude:      req.Location.Longitude,
		HouseSystem:    houseSystem,
		Ayanamsa:       ayanamsa,
	}

	c, err := chart.Build(ctx, s.adapter, in)
	if err != nil {
		s.logger.RecordError(ctx, err, observability.ErrorContext{
			Severity:  observability.SeverityHigh,
			Category:  observability.CategoryCalculation,
			Operation: "chart.Build",
			Component: "api_service",
			Retryable: true,
		})
		return nil, fmt.Errorf("api: assembling chart: %w", err)
	}

	bodies := make(map[reftables.Planet]BodyResult, len(c.Bodies))
	for p, bp := range c.Bodies {
		placement, err := nakshatra.Of(bp.Longitude)
		if err != nil {
			return nil, fmt.Errorf("api: nakshatra for %s: %w", p, err)
		}
		pointer, err := nakshatra.KPPointer(bp.Longitude)
		if err != nil {
			return nil, fmt.Errorf("api: KP pointer for %s: %w", p, err)
		}
		navamsaLon, err := varga.Project(bp.Longitude, varga.D9)
		if err != nil {
			return nil, fmt.Errorf("api: navamsa for %s: %w", p, err)
		}
		dasamsaLon, err := varga.Project(bp.Longitude, varga.D10)
		if err != nil {
			return nil, fmt.Errorf("api: dasamsa for %s: %w", p, err)
		}

		bodies[p] = BodyResult{
			Planet:        p,
			Longitude:     bp.Longitude,
			Latitude:      bp.Latitude,
			Speed:         bp.Speed,
			Retrograde:    bp.Retrograde,
			Sign:          bp.Sign,
			SignLongitude: bp.SignLongitude,
			House:         bp.House,
			Nakshatra:     placement,
			KPPointer:     pointer,
			NavamsaSign:   reftables.Sign(angle.SignIndex(navamsaLon)),
			DasamsaSign:   reftables.Sign(angle.SignIndex(dasamsaLon)),
		}
	}

	var houses [12]HouseResult
	for i := 1; i <= 12; i++ {
		h, err := c.House(i)
		if err != nil {
			return nil, err
		}
		houses[i-1] = HouseResult{Index: h.Index, Longitude: h.Longitude, Sign: h.Sign}
	}

	angles := make(map[chart.AngleID]AngleResult, 4)
	for _, id := range []chart.AngleID{chart.Asc, chart.MC, chart.Desc, chart.IC} {
		a, err := c.AngleOf(id)
		if err != nil {
			return nil, err
		}
		angles[id] = AngleResult{ID: a.ID, Longitude: a.Longitude}
	}

	loc := eph.GeoPosition{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude}
	snapshot, err := panchanga.At(ctx, s.adapter, c.JulianDay, loc, ayanamsa)
	if err != nil {
		return nil, fmt.Errorf("api: panchanga: %w", err)
	}

	s.logger.RecordCalculationEnd(ctx, "GetChart", true, time.Since(start), nil)

	return &ChartResult{
		Version:     CurrentVersion,
		GeneratedAt: time.Now().UTC(),
		JulianDay:   c.JulianDay,
		Bodies:      bodies,
		Houses:      houses,
		Angles:      angles,
		Panchanga:   snapshot,
	}, nil
}

// natalContributors maps the seven classical grahas this façade places
// onto ashtakavarga's contributor identifiers. Rahu and Ketu carry no
// bhinna-ashtakavarga column and are left out of the Positions map built
// below, matching transit.BindusForTransit's own exclusion of them.
var natalContributors = map[reftables.Planet]ashtakavarga.Contributor{
	reftables.Sun:     ashtakavarga.ContribSun,
	reftables.Moon:    ashtakavarga.ContribMoon,
	reftables.Mars:    ashtakavarga.ContribMars,
	reftables.Mercury: ashtakavarga.ContribMercury,
	reftables.Jupiter: ashtakavarga.ContribJupiter,
	reftables.Venus:   ashtakavarga.ContribVenus,
	reftables.Saturn:  ashtakavarga.ContribSaturn,
}

// TransitResult is one Gochara reading: every transiting planet's record
// against the natal Moon, keyed by planet.
type TransitResult struct {
	GeneratedAt   time.Time                       `json:"generated_at"`
	NatalMoonSign reftables.Sign                  `json:"natal_moon_sign"`
	Records       map[reftables.Planet]transit.Record `json:"records"`
}

// GetTransits assembles the natal chart and the chart for the moment
// transits are being evaluated at, then runs transit.BuildRecord for
// every transiting planet against the natal Moon sign and ashtakavarga
// positions -- the Gochara (transit) reading of spec.md 4.12.
func (s *Service) GetTransits(ctx context.Context, req TransitRequest) (*TransitResult, error) {
	ctx, span := s.observer.CreateSpan(ctx, "api.Service.GetTransits")
	defer span.End()

	natal, err := s.GetChart(ctx, req.Natal)
	if err != nil {
		return nil, fmt.Errorf("api: natal chart for transits: %w", err)
	}
	moment, err := s.GetChart(ctx, req.Moment)
	if err != nil {
		return nil, fmt.Errorf("api: transit moment chart: %w", err)
	}

	moonBody, ok := natal.Bodies[reftables.Moon]
	if !ok {
		return nil, fmt.Errorf("api: natal chart carries no Moon placement")
	}
	moonSign := moonBody.Sign

	positions := make(ashtakavarga.Positions, len(natalContributors)+1)
	for p, contributor := range natalContributors {
		body, ok := natal.Bodies[p]
		if !ok {
			continue
		}
		positions[contributor] = int(body.Sign)
	}
	positions[ashtakavarga.ContribLagna] = int(natal.Houses[0].Sign)

	transitingHouses := make(map[reftables.Planet]int, len(moment.Bodies))
	for p, body := range moment.Bodies {
		transitingHouses[p] = transit.HouseFromMoon(moonSign, body.Sign)
	}

	records := make(map[reftables.Planet]transit.Record, len(moment.Bodies))
	for p, body := range moment.Bodies {
		record, err := transit.BuildRecord(p, moonSign, body.Sign, transitingHouses, positions)
		if err != nil {
			return nil, fmt.Errorf("api: transit record for %s: %w", p, err)
		}
		records[p] = record
	}

	return &TransitResult{
		GeneratedAt:   time.Now().UTC(),
		NatalMoonSign: moonSign,
		Records:       records,
	}, nil
}
