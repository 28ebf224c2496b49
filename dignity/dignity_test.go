package dignity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedastra/jyotisha/reftables"
)

func TestScoreExactExaltation(t *testing.T) {
	// Sun exalts at Aries 10.
	lvl, err := Score(reftables.Sun, 10.0, false)
	require.NoError(t, err)
	assert.Equal(t, ExactExaltation, lvl)
}

func TestScoreExaltationOffExactDegree(t *testing.T) {
	lvl, err := Score(reftables.Sun, 20.0, false)
	require.NoError(t, err)
	assert.Equal(t, Exaltation, lvl)
}

func TestScoreExactDebilitation(t *testing.T) {
	// Sun debilitates at Libra 10 (180 from Aries 10).
	lvl, err := Score(reftables.Sun, 180.0+10.0, false)
	require.NoError(t, err)
	assert.Equal(t, ExactDebilitation, lvl)
}

func TestScoreNeechaBhangaRetrogradeOverride(t *testing.T) {
	lvl, err := Score(reftables.Sun, 180.0+10.0, true)
	require.NoError(t, err)
	assert.Equal(t, Exaltation, lvl)
}

func TestScoreMoolatrikona(t *testing.T) {
	// Sun's Moolatrikona: Leo 0-20.
	lvl, err := Score(reftables.Sun, 120.0+10.0, false)
	require.NoError(t, err)
	assert.Equal(t, Moolatrikona, lvl)
}

func TestScoreOwnSign(t *testing.T) {
	// Sun's Moolatrikona ends at Leo 20; Leo 25 is own sign, not Moolatrikona.
	lvl, err := Score(reftables.Sun, 120.0+25.0, false)
	require.NoError(t, err)
	assert.Equal(t, OwnSign, lvl)
}

func TestScoreNeutral(t *testing.T) {
	lvl, err := Score(reftables.Sun, 30.0+10.0, false) // Taurus, no relation to Sun
	require.NoError(t, err)
	assert.Equal(t, Neutral, lvl)
}

func TestTemporalFriendshipSecondHouseIsFriend(t *testing.T) {
	f := TemporalFriendship(reftables.Aries, reftables.Taurus)
	assert.Equal(t, reftables.FriendshipFriend, f)
}

func TestTemporalFriendshipEighthHouseIsEnemy(t *testing.T) {
	f := TemporalFriendship(reftables.Aries, reftables.Scorpio)
	assert.Equal(t, reftables.FriendshipEnemy, f)
}

func TestCombinedGreatFriendWhenBothFriend(t *testing.T) {
	lvl, err := Combined(reftables.Sun, reftables.Moon, reftables.Aries, reftables.Taurus)
	require.NoError(t, err)
	assert.Equal(t, GreatFriend, lvl)
}

func TestCombinedUnknownPlanetErrors(t *testing.T) {
	_, err := Combined(reftables.Rahu, reftables.Sun, reftables.Aries, reftables.Taurus)
	assert.Error(t, err)
}
