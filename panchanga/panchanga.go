// Package panchanga computes the five daily almanac elements (spec.md
// 4.6) -- tithi, karana, yoga, vara, and hora -- plus the period engine
// (rahu-kala, yamaganda, gulika-kala, abhijit-muhurta) from sun/moon
// longitudes and horizon times supplied by an ephemeris.Adapter.
package panchanga

import (
	"context"
	"fmt"

	eph "github.com/vedastra/jyotisha/ephemeris"
	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
	"github.com/vedastra/jyotisha/reftables"
)

// yogaNames is the classical twenty-seven-yoga sequence (Vishkambha through
// Vaidhriti), indexed 1..27 as the tradition numbers them.
var yogaNames = map[int]string{
	1: "Vishkambha", 2: "Priti", 3: "Ayushman", 4: "Saubhagya", 5: "Shobhana",
	6: "Atiganda", 7: "Sukarma", 8: "Dhriti", 9: "Shula", 10: "Ganda",
	11: "Vriddhi", 12: "Dhruva", 13: "Vyaghata", 14: "Harshana", 15: "Vajra",
	16: "Siddhi", 17: "Vyatipata", 18: "Variyana", 19: "Parigha", 20: "Shiva",
	21: "Siddha", 22: "Sadhya", 23: "Shubha", 24: "Shukla", 25: "Brahma",
	26: "Indra", 27: "Vaidhriti",
}

// Tithi is the lunar day, 1..30, derived from the Moon-Sun phase angle.
type Tithi struct {
	Number     int
	Paksha     string // "Shukla" or "Krishna"
	Completion float64 // percent through the current tithi, 0..100
}

// TithiAt computes the tithi from sun and moon longitudes in the same
// reference frame (both tropical, or both sidereal after the caller
// subtracts the ayanamsa from each).
func TithiAt(sunLon, moonLon float64) Tithi {
	phi := angle.Norm(moonLon - sunLon)
	t := int(phi / 12.0)
	paksha := "Shukla"
	if t >= 15 {
		paksha = "Krishna"
	}
	completion := phi - float64(t)*12.0
	return Tithi{Number: t + 1, Paksha: paksha, Completion: completion / 12.0 * 100.0}
}

// Karana is one of the sixty half-tithi karanas across a synodic month.
type Karana struct {
	Number int // 0..59, the raw half-tithi index
	Name   string
}

// KaranaAt computes the karana index and name, following the traditional
// sequence: Kimstughna holds index 0, the seven movable karanas
// (Bava..Vishti) repeat eight times over indices 1..56, and Shakuni,
// Chatushpada and Naga close the cycle at 57..59.
func KaranaAt(sunLon, moonLon float64) Karana {
	phi := angle.Norm(moonLon - sunLon)
	k := int(phi / 6.0)
	return Karana{Number: k, Name: karanaName(k)}
}

var movableKaranaNames = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti"}
var fixedKaranaNames = [4]string{"Shakuni", "Chatushpada", "Naga", "Kimstughna"}

func karanaName(k int) string {
	if k == 0 {
		return fixedKaranaNames[3] // Kimstughna occupies the first half-tithi
	}
	if k >= 57 {
		return fixedKaranaNames[k-57]
	}
	return movableKaranaNames[(k-1)%7]
}

// Yoga is one of the twenty-seven sun+moon combinations.
type Yoga struct {
	Number int // 1..27
	Name   string
}

// YogaAt computes the yoga index from sun and moon longitudes in the same
// frame.
func YogaAt(sunLon, moonLon float64) Yoga {
	sum := angle.Norm(sunLon + moonLon)
	y := int(sum / (360.0 / 27.0))
	return Yoga{Number: y + 1, Name: yogaNames[y+1]}
}

// Vara is the weekday, carrying both the Sunday-indexed tradition number
// and the planetary lord.
type Vara struct {
	Weekday jd.Weekday
	Lord    reftables.Planet
}

// varaLords indexes ruling planets by jd.Weekday (0=Sunday).
var varaLords = [7]reftables.Planet{
	reftables.Sun, reftables.Moon, reftables.Mars, reftables.Mercury,
	reftables.Jupiter, reftables.Venus, reftables.Saturn,
}

// VaraAt returns the weekday and its lord for a Julian day.
func VaraAt(j jd.JulianDay) Vara {
	w := jd.VaraOf(j)
	return Vara{Weekday: w, Lord: varaLords[w]}
}

// horaRulers is the classical Chaldean sequence hora rulership rotates
// through. A day's first hora belongs to its weekday lord, found at
// position (3*weekday) mod 7 (each day's 24 horas advance the sequence by
// three), and each later hora steps one place on.
var horaRulers = [7]reftables.Planet{
	reftables.Sun, reftables.Venus, reftables.Mercury, reftables.Moon,
	reftables.Saturn, reftables.Jupiter, reftables.Mars,
}

// Hora is the current planetary hour.
type Hora struct {
	Index int // 0-based index of this hora within its half (day or night)
	IsDay bool
	Lord  reftables.Planet
}

// HoraAt partitions [prevSunrise, nextSunset] into twelve day-horas and
// [nextSunset, nextSunrise-of-following-day] into twelve night-horas,
// returning which hora `moment` falls in and its ruling planet.
func HoraAt(moment jd.JulianDay, weekday jd.Weekday, prevSunrise, nextSunset, nextSunriseAfter jd.JulianDay) (Hora, error) {
	switch {
	case moment >= prevSunrise && moment < nextSunset:
		width := (float64(nextSunset) - float64(prevSunrise)) / 12.0
		n := int((float64(moment) - float64(prevSunrise)) / width)
		if n > 11 {
			n = 11
		}
		return Hora{Index: n, IsDay: true, Lord: horaRulers[(3*int(weekday)+n)%7]}, nil
	case moment >= nextSunset && moment < nextSunriseAfter:
		width := (float64(nextSunriseAfter) - float64(nextSunset)) / 12.0
		n := int((float64(moment) - float64(nextSunset)) / width)
		if n > 11 {
			n = 11
		}
		// Night horas continue the day's rotation from hora 12.
		return Hora{Index: n, IsDay: false, Lord: horaRulers[(3*int(weekday)+12+n)%7]}, nil
	default:
		return Hora{}, fmt.Errorf("panchanga: moment %v outside [prevSunrise, nextSunriseAfter)", moment)
	}
}

// Window is a [Start, End) span of one of the eight day-parts, or a named
// auspicious/inauspicious period derived from them.
type Window struct {
	Start, End jd.JulianDay
}

// DayPeriods is the period-engine output for one civil day: the eight
// equal day-parts plus the three inauspicious periods and Abhijit
// muhurta, all spanning [prevSunrise, nextSunset).
type DayPeriods struct {
	Parts          [8]Window
	RahuKala       Window
	Yamaganda      Window
	GulikaKala     Window
	AbhijitMuhurta Window
}

// rahuKalaParts, yamagandaParts, gulikaKalaParts are 1-based part indices
// into the eight day-parts, selected by Monday-indexed weekday
// (spec.md 4.6; the implementer note there flags these as the source of
// truth over any mnemonic restatement).
var rahuKalaParts = [7]int{2, 7, 5, 6, 4, 3, 8}
var yamagandaParts = [7]int{6, 4, 5, 3, 7, 8, 2}
var gulikaKalaParts = [7]int{6, 5, 4, 3, 2, 8, 7}

// Periods computes the period engine for a civil day given the
// previous sunrise and following sunset bracketing it, and the weekday
// the day falls on (Sunday-indexed; re-based internally).
func Periods(prevSunrise, nextSunset jd.JulianDay, weekday jd.Weekday) DayPeriods {
	d := (float64(nextSunset) - float64(prevSunrise)) / 8.0
	var parts [8]Window
	for i := 0; i < 8; i++ {
		start := jd.JulianDay(float64(prevSunrise) + float64(i)*d)
		end := jd.JulianDay(float64(prevSunrise) + float64(i+1)*d)
		parts[i] = Window{Start: start, End: end}
	}

	mi := jd.MondayIndex(weekday)
	abhijitStart := jd.JulianDay(float64(prevSunrise) + (7.0/15.0)*(float64(nextSunset)-float64(prevSunrise)))
	abhijitEnd := jd.JulianDay(float64(prevSunrise) + (8.0/15.0)*(float64(nextSunset)-float64(prevSunrise)))

	return DayPeriods{
		Parts:          parts,
		RahuKala:       parts[rahuKalaParts[mi]-1],
		Yamaganda:      parts[yamagandaParts[mi]-1],
		GulikaKala:     parts[gulikaKalaParts[mi]-1],
		AbhijitMuhurta: Window{Start: abhijitStart, End: abhijitEnd},
	}
}

// Snapshot is the full panchanga for one moment and place.
type Snapshot struct {
	Tithi  Tithi
	Karana Karana
	Yoga   Yoga
	Vara   Vara
	Hora   Hora
	Day    DayPeriods
}

// At assembles the full panchanga for a moment and location, fetching
// sun/moon longitudes and the bracketing sunrise/sunset times from the
// adapter. Longitudes are converted to sidereal first when ayanamsa is
// non-empty; tropical is used otherwise.
func At(ctx context.Context, adapter eph.Adapter, moment jd.JulianDay, loc eph.GeoPosition, ayanamsa reftables.Ayanamsa) (Snapshot, error) {
	sunLon, err := adapter.BodyLongitude(ctx, reftables.Sun, moment, ayanamsa)
	if err != nil {
		return Snapshot{}, fmt.Errorf("panchanga: sun longitude: %w", err)
	}
	moonLon, err := adapter.BodyLongitude(ctx, reftables.Moon, moment, ayanamsa)
	if err != nil {
		return Snapshot{}, fmt.Errorf("panchanga: moon longitude: %w", err)
	}

	prevSunrise, err := adapter.SunriseBefore(ctx, moment, loc)
	if err != nil {
		return Snapshot{}, fmt.Errorf("panchanga: prior sunrise: %w", err)
	}
	nextSunset, err := adapter.SunsetAfter(ctx, moment, loc)
	if err != nil {
		return Snapshot{}, fmt.Errorf("panchanga: next sunset: %w", err)
	}
	nextSunriseAfter, err := adapter.SunriseAfter(ctx, nextSunset, loc)
	if err != nil {
		return Snapshot{}, fmt.Errorf("panchanga: following sunrise: %w", err)
	}

	weekday := jd.VaraOf(prevSunrise)
	hora, err := HoraAt(moment, weekday, prevSunrise, nextSunset, nextSunriseAfter)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Tithi:  TithiAt(sunLon, moonLon),
		Karana: KaranaAt(sunLon, moonLon),
		Yoga:   YogaAt(sunLon, moonLon),
		Vara:   VaraAt(prevSunrise),
		Hora:   hora,
		Day:    Periods(prevSunrise, nextSunset, weekday),
	}, nil
}
