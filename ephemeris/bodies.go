package ephemeris

import (
	"math"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/reftables"
)

// rawPosition is a body's tropical ecliptic position before the ayanamsa
// correction BodyState applies.
type rawPosition struct {
	Longitude float64
	Latitude  float64
	Distance  float64 // AU
	Speed     float64 // degrees/day, geocentric mean motion
}

// daysSinceJ2000 converts a Julian day to the "t" every formula below is
// parameterised on.
func daysSinceJ2000(rawJD float64) float64 {
	return rawJD - 2451545.0
}

// sunPosition is the standard low-precision solar position formula (mean
// longitude and anomaly, equation-of-center correction), the same one
// civilSunTimes uses for sunrise/sunset.
func sunPosition(t float64) rawPosition {
	meanLongitude := angle.Norm(280.4664567 + 0.9856235*t)
	meanAnomaly := angle.Norm(357.5291092 + 0.9856002585*t)
	mRad := meanAnomaly * math.Pi / 180

	equationOfCenter := 1.9148*math.Sin(mRad) + 0.0200*math.Sin(2*mRad) + 0.0003*math.Sin(3*mRad)
	distance := 1.000001018 * (1 - 0.01671123*math.Cos(mRad) - 0.00014*math.Cos(2*mRad))
	speed := 0.9856 * (1 + 0.0167*math.Cos(mRad))

	return rawPosition{
		Longitude: angle.Norm(meanLongitude + equationOfCenter),
		Distance:  distance,
		Speed:     speed,
	}
}

// moonPosition is a truncated lunar-theory formula: mean longitude,
// anomaly, elongation and node distance, combined through the handful of
// periodic terms that dominate the Moon's true position.
func moonPosition(t float64) rawPosition {
	meanLongitude := angle.Norm(218.3164477 + 13.17639648*t)
	meanAnomaly := angle.Norm(134.9633964 + 13.06499295*t)
	sunAnomaly := angle.Norm(357.5291092 + 0.9856002585*t)
	elongation := angle.Norm(297.8501921 + 12.19074912*t)
	nodeDistance := angle.Norm(93.2720950 + 13.22935025*t)

	mRad := meanAnomaly * math.Pi / 180
	mpRad := sunAnomaly * math.Pi / 180
	dRad := elongation * math.Pi / 180
	fRad := nodeDistance * math.Pi / 180

	deltaLongitude := 6.289*math.Sin(mRad) + 1.274*math.Sin(2*dRad-mRad) + 0.658*math.Sin(2*dRad) -
		0.186*math.Sin(mpRad) - 0.059*math.Sin(2*mRad-2*dRad) - 0.057*math.Sin(mRad-2*dRad+mpRad)
	deltaLatitude := 5.128*math.Sin(fRad) + 0.281*math.Sin(mRad+fRad) + 0.277*math.Sin(mRad-fRad) +
		0.173*math.Sin(2*dRad-fRad) + 0.055*math.Sin(2*dRad-mRad+fRad)
	deltaDistanceKm := -20905*math.Cos(mRad) - 3699*math.Cos(2*dRad-mRad) - 2956*math.Cos(2*dRad) -
		570*math.Cos(2*mRad) + 246*math.Cos(2*mRad-2*dRad)

	const earthMoonMeanDistanceKm = 385000.56
	const auInKm = 149597870.7

	return rawPosition{
		Longitude: angle.Norm(meanLongitude + deltaLongitude),
		Latitude:  deltaLatitude,
		Distance:  (earthMoonMeanDistanceKm + deltaDistanceKm) / auInKm,
		Speed:     13.18 * (1 + 0.055*math.Cos(mRad)),
	}
}

// planetElements are the mean-element rates and single-term perturbation a
// planet's position is read off of: L/M grow linearly with t, and a
// periodic correction (amplitude corrL/corrM/corrR at a phase advancing at
// phaseRate) stands in for the planet's principal inequality.
type planetElements struct {
	longitude0, longitudeRate float64
	anomaly0, anomalyRate     float64
	distance, speed           float64
	phase0, phaseRate         float64
	corrLongitude             float64
	corrAnomaly               float64
	corrDistance              float64
}

var planetTable = map[reftables.Planet]planetElements{
	reftables.Mercury: {252.2509, 4.092338, 174.7948, 4.092335, 0.387098, 4.092, 157.074, 4.092338, 0.378, 0.321, 0.007824},
	reftables.Venus:   {181.9798, 1.602136, 50.4161, 1.602136, 0.723327, 1.602, 89.44, 1.602136, 0.775, 0.007, 0.000005},
	reftables.Mars:    {355.433, 0.524033, 19.3870, 0.524033, 1.523679, 0.524, 68.98, 0.524033, 10.691, 0.606, 0.141063},
	reftables.Jupiter: {34.3515, 0.083091, 20.0202, 0.083091, 5.204267, 0.083, 318.16, 0.083091, 5.555, 0.164, 0.262127},
	reftables.Saturn:  {50.0774, 0.033494, 317.021, 0.033494, 9.5820172, 0.033, 231.46, 0.033494, 6.406, 0.407, 0.301020},
	reftables.Uranus:  {314.055, 0.011733, 142.238, 0.011733, 19.189253, 0.012, 77.25, 0.011733, 1.681, 0.104, 0.09142},
	reftables.Neptune: {304.348, 0.005965, 256.225, 0.005965, 30.070900, 0.006, 84.457, 0.005965, 1.021, 0.058, 0.046116},
	reftables.Pluto:   {238.956, 0.003968, 14.8820, 0.003968, 39.481686, 0.004, 322.16, 0.003968, 0.041, 0.004, 0.0064},
}

// tabulatedPlanetPosition reads a planet's mean elements plus its single
// dominant perturbation term from planetTable, then applies the same
// equation-of-center form sunPosition uses to turn mean anomaly into true
// longitude.
func tabulatedPlanetPosition(body reftables.Planet, t float64) (rawPosition, bool) {
	el, ok := planetTable[body]
	if !ok {
		return rawPosition{}, false
	}

	phaseRad := angle.Norm(el.phase0+el.phaseRate*t) * math.Pi / 180
	longitude := angle.Norm(el.longitude0+el.longitudeRate*t) + el.corrLongitude*math.Sin(phaseRad)
	anomaly := angle.Norm(el.anomaly0+el.anomalyRate*t) + el.corrAnomaly*math.Sin(phaseRad)
	anomalyRad := anomaly * math.Pi / 180

	trueLongitude := longitude + 1.915*math.Sin(anomalyRad) + 0.020*math.Sin(2*anomalyRad)
	distance := el.distance + el.corrDistance*math.Cos(phaseRad)

	return rawPosition{
		Longitude: angle.Norm(trueLongitude),
		Distance:  distance,
		Speed:     el.speed,
	}, true
}
