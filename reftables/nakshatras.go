package reftables

// NakshatraWidth is the span of one nakshatra in degrees (360/27).
const NakshatraWidth = 360.0 / 27.0

// PadaWidth is the span of one pada in degrees (NakshatraWidth/4).
const PadaWidth = NakshatraWidth / 4.0

// NakshatraCount is the number of nakshatras spanning the zodiac.
const NakshatraCount = 27

// NakshatraNames indexes nakshatra names by (1-based nakshatra number - 1).
var NakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Moola", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraName returns the name of nakshatra n (1..27).
func NakshatraName(n int) (string, bool) {
	if n < 1 || n > NakshatraCount {
		return "", false
	}
	return NakshatraNames[n-1], true
}

// NakshatraLord returns the ruling planet of nakshatra n (1..27), following
// the Vimsottari cycle Ketu-Venus-Sun-Moon-Mars-Rahu-Jupiter-Saturn-Mercury
// repeated three times across the 27 nakshatras.
func NakshatraLord(n int) (Planet, bool) {
	if n < 1 || n > NakshatraCount {
		return "", false
	}
	return NavagrahaOrder[(n-1)%9], true
}
