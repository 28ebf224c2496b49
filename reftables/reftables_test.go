package reftables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVimsottariSumsTo120(t *testing.T) {
	var sum float64
	for _, y := range VimsottariYears {
		sum += y
	}
	assert.InDelta(t, 120.0, sum, 1e-9)
}

func TestNakshatraLordCyclesOverThreeRounds(t *testing.T) {
	first, _ := NakshatraLord(1)
	tenth, _ := NakshatraLord(10)
	nineteenth, _ := NakshatraLord(19)
	assert.Equal(t, Ketu, first)
	assert.Equal(t, first, tenth)
	assert.Equal(t, first, nineteenth)
}

func TestNakshatraLordOutOfRange(t *testing.T) {
	_, ok := NakshatraLord(0)
	assert.False(t, ok)
	_, ok = NakshatraLord(28)
	assert.False(t, ok)
}

func TestSignRulersComplete(t *testing.T) {
	for s := Aries; s <= Pisces; s++ {
		_, ok := RulerOf(s)
		assert.True(t, ok, "sign %v has no ruler", s)
	}
}

func TestDebilitationIsOppositeExaltation(t *testing.T) {
	ex := ExaltationPoints[Sun]
	deb, ok := DebilitationPoint(Sun)
	assert.True(t, ok)
	assert.Equal(t, Libra, deb.Sign)
	assert.InDelta(t, ex.Degree, deb.Degree, 1e-9)
}

func TestMoonMulatrikonaIsTaurus(t *testing.T) {
	// Pinned per spec.md design note (c): the Moon's Moolatrikona sign is
	// Taurus in this repository, not Cancer.
	r := MulatrikonaRanges[Moon]
	assert.Equal(t, Taurus, r.Sign)
}

func TestNaturalFriendshipIsSymmetricWhereTraditionSaysSo(t *testing.T) {
	f, ok := NaturalFriendshipOf(Sun, Moon)
	assert.True(t, ok)
	assert.Equal(t, FriendshipFriend, f)
	g, ok := NaturalFriendshipOf(Moon, Sun)
	assert.True(t, ok)
	assert.Equal(t, f, g)
}

func TestKPSegmentsTileZodiacWithoutGapOrOverlap(t *testing.T) {
	assert.Len(t, kpSegments, NakshatraCount*9)
	assert.InDelta(t, 0.0, kpSegments[0].Start, 1e-9)
	for i := 1; i < len(kpSegments); i++ {
		assert.InDelta(t, kpSegments[i-1].End, kpSegments[i].Start, 1e-6)
	}
	assert.InDelta(t, 360.0, kpSegments[len(kpSegments)-1].End, 1e-6)
}

func TestKPPointerAtBoundaries(t *testing.T) {
	p, ok := KPPointerAt(0.0)
	assert.True(t, ok)
	assert.Equal(t, Mars, p.SignLord) // Aries ruler
	assert.Equal(t, Ketu, p.NakshatraLord)
	assert.Equal(t, Ketu, p.SubLord)
}

func TestKPPointerWrapsAt360(t *testing.T) {
	p1, _ := KPPointerAt(0.0)
	p2, _ := KPPointerAt(360.0)
	assert.Equal(t, p1, p2)
}

func TestAyanamsaRegistryCoversAllTags(t *testing.T) {
	tags := []Ayanamsa{Lahiri, Raman, Krishnamurti, Yukteshwar, JNBhasin, SuryaSiddhanta, Aryabhata, TrueCitra, TrueRevati}
	for _, tag := range tags {
		_, ok := tag.Info()
		assert.True(t, ok, "missing registry entry for %s", tag)
	}
}

func TestCalendarSystemForUnknownRegionFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Amanta, CalendarSystemForRegion("atlantis"))
	assert.Equal(t, Purnimanta, CalendarSystemForRegion("north_india"))
}
