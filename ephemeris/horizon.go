package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/internal/jd"
)

// civilSunTimes returns the sunrise/sunset instants (UTC) for the calendar
// day `day` falls on at loc, using the standard low-precision solar
// position formula: mean longitude and anomaly give the ecliptic
// longitude and equation of time, which combine with the hour angle at
// the refraction-corrected horizon (90.833 degrees from the zenith) to
// locate the two horizon crossings. Polar day/night is reported rather
// than erroring, matching how far north/south panchanga callers can
// legitimately ask for a sunrise that never comes.
func civilSunTimes(day time.Time, loc GeoPosition) (sunrise, sunset time.Time) {
	year, month, date := day.UTC().Date()
	noon := time.Date(year, month, date, 12, 0, 0, 0, time.UTC)
	n := float64(jd.FromTime(noon)) - 2451545.0

	meanLongitude := angle.Norm(280.460 + 0.9856474*n)
	meanAnomalyRad := angle.Norm(357.528+0.9856003*n) * math.Pi / 180
	eclipticLongitude := meanLongitude + 1.915*math.Sin(meanAnomalyRad) + 0.020*math.Sin(2*meanAnomalyRad)
	obliquity := 23.439 - 0.0000004*n

	eclipticRad := eclipticLongitude * math.Pi / 180
	obliquityRad := obliquity * math.Pi / 180
	rightAscension := math.Atan2(math.Cos(obliquityRad)*math.Sin(eclipticRad), math.Cos(eclipticRad)) * 180 / math.Pi
	declination := math.Asin(math.Sin(obliquityRad) * math.Sin(eclipticRad))
	equationOfTimeMinutes := 4 * (meanLongitude - rightAscension)

	latRad := loc.Latitude * math.Pi / 180
	cosHourAngle := (math.Cos(90.833*math.Pi/180) - math.Sin(latRad)*math.Sin(declination)) /
		(math.Cos(latRad) * math.Cos(declination))

	switch {
	case cosHourAngle > 1: // polar night: sun never rises
		return noon, noon
	case cosHourAngle < -1: // polar day: sun never sets
		return time.Date(year, month, date, 0, 0, 0, 0, time.UTC),
			time.Date(year, month, date, 23, 59, 59, 0, time.UTC)
	}

	hourAngle := math.Acos(cosHourAngle) * 180 / math.Pi
	solarNoon := 12.0 - loc.Longitude/15.0 - equationOfTimeMinutes/60.0
	sunrise = atDecimalHour(solarNoon-hourAngle/15.0, year, month, date)
	sunset = atDecimalHour(solarNoon+hourAngle/15.0, year, month, date)
	return sunrise, sunset
}

// atDecimalHour builds the UTC instant `hours` (may fall outside [0,24), in
// which case it rolls onto the neighbouring calendar day) past midnight of
// the given calendar date.
func atDecimalHour(hours float64, year int, month time.Month, day int) time.Time {
	base := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(hours * float64(time.Hour)))
}

// sunTimesForDay returns the sunrise/sunset pair, as Julian days, for the
// civil day moment falls on, at loc.
func sunTimesForDay(moment jd.JulianDay, loc GeoPosition) (sunriseJD, sunsetJD jd.JulianDay) {
	sunrise, sunset := civilSunTimes(jd.ToTime(moment), loc)
	return jd.FromTime(sunrise), jd.FromTime(sunset)
}

// SunriseBefore implements Adapter.SunriseBefore: the most recent sunrise at
// or before moment, searching backward up to two civil days to cover
// locations where sunrise falls just after local midnight relative to moment.
func (a *SimplifiedAdapter) SunriseBefore(_ context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error) {
	t := jd.ToTime(moment)
	for offset := 0; offset <= 2; offset++ {
		candidate := jd.FromTime(t.AddDate(0, 0, -offset))
		riseJD, _ := sunTimesForDay(candidate, loc)
		if riseJD <= moment {
			return riseJD, nil
		}
	}
	return 0, fmt.Errorf("ephemeris: no sunrise found before %v within search window", t)
}

// SunsetAfter implements Adapter.SunsetAfter: the next sunset at or after
// moment.
func (a *SimplifiedAdapter) SunsetAfter(_ context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error) {
	t := jd.ToTime(moment)
	for offset := 0; offset <= 2; offset++ {
		candidate := jd.FromTime(t.AddDate(0, 0, offset))
		_, setJD := sunTimesForDay(candidate, loc)
		if setJD >= moment {
			return setJD, nil
		}
	}
	return 0, fmt.Errorf("ephemeris: no sunset found after %v within search window", t)
}

// SunriseAfter implements Adapter.SunriseAfter: the next sunrise at or after
// moment.
func (a *SimplifiedAdapter) SunriseAfter(_ context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error) {
	t := jd.ToTime(moment)
	for offset := 0; offset <= 2; offset++ {
		candidate := jd.FromTime(t.AddDate(0, 0, offset))
		riseJD, _ := sunTimesForDay(candidate, loc)
		if riseJD >= moment {
			return riseJD, nil
		}
	}
	return 0, fmt.Errorf("ephemeris: no sunrise found after %v within search window", t)
}

// SunsetBefore implements Adapter.SunsetBefore: the most recent sunset at or
// before moment.
func (a *SimplifiedAdapter) SunsetBefore(_ context.Context, moment jd.JulianDay, loc GeoPosition) (jd.JulianDay, error) {
	t := jd.ToTime(moment)
	for offset := 0; offset <= 2; offset++ {
		candidate := jd.FromTime(t.AddDate(0, 0, -offset))
		_, setJD := sunTimesForDay(candidate, loc)
		if setJD <= moment {
			return setJD, nil
		}
	}
	return 0, fmt.Errorf("ephemeris: no sunset found before %v within search window", t)
}
