package reftables

// CalendarSystem selects how a tithi's paksha-day is folded into a month
// boundary: Amanta months end at new moon, Purnimanta months end at full
// moon. This only affects month-labelling/tithi numbering presentation,
// never the underlying tithi index computed from Sun/Moon geometry
// (spec.md 4.6) — recovered from the teacher's region-calendar config, an
// ambient concern the distilled spec.md dropped (SPEC_FULL.md 4).
type CalendarSystem string

const (
	Amanta     CalendarSystem = "Amanta"
	Purnimanta CalendarSystem = "Purnimanta"
)

// RegionCalendarSystems maps a region tag to its traditional calendar
// system, grounded on the teacher's services/panchangam/config.go
// RegionCalendarSystems map.
var RegionCalendarSystems = map[string]CalendarSystem{
	"tamil_nadu":    Amanta,
	"kerala":        Amanta,
	"karnataka":     Amanta,
	"andhra":        Amanta,
	"telangana":     Amanta,
	"maharashtra":   Amanta,
	"gujarat":       Amanta,
	"north_india":   Purnimanta,
	"uttar_pradesh": Purnimanta,
	"bihar":         Purnimanta,
	"rajasthan":     Purnimanta,
	"madhya_pradesh": Purnimanta,
	"default":       Amanta,
}

// CalendarSystemForRegion returns the calendar system for a region tag,
// falling back to Amanta (the "default" entry) for an unrecognised region.
func CalendarSystemForRegion(region string) CalendarSystem {
	if system, ok := RegionCalendarSystems[region]; ok {
		return system
	}
	return RegionCalendarSystems["default"]
}
