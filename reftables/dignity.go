package reftables

// Point is a (sign, degree-within-sign) reference point: an exaltation or
// debilitation degree.
type Point struct {
	Sign   Sign
	Degree float64
}

// ExaltationPoints gives each classical planet's exact exaltation degree.
// Debilitation is always the same degree in the opposite sign (spec.md
// 4.2); DebilitationPoint derives it rather than tabulating it separately.
var ExaltationPoints = map[Planet]Point{
	Sun:     {Aries, 10},
	Moon:    {Taurus, 3},
	Mars:    {Capricorn, 28},
	Mercury: {Virgo, 15},
	Jupiter: {Cancer, 5},
	Venus:   {Pisces, 27},
	Saturn:  {Libra, 20},
}

// DebilitationPoint returns the debilitation point of p: the sign 180
// degrees from its exaltation sign, at the same degree.
func DebilitationPoint(p Planet) (Point, bool) {
	ex, ok := ExaltationPoints[p]
	if !ok {
		return Point{}, false
	}
	return Point{Sign((int(ex.Sign) + 6) % 12), ex.Degree}, true
}

// Range is a start..end degree span within a single sign.
type Range struct {
	Sign  Sign
	Start float64
	End   float64
}

// MulatrikonaRanges gives each planet's Moolatrikona span. Per spec.md's
// design note (c), the Moon's Moolatrikona sign is carried as Taurus in
// this repository, matching Parasara's Hora Shastra, even though some
// traditions instead give Cancer; this is a deliberate, pinned choice, not
// an oversight — see DESIGN.md.
var MulatrikonaRanges = map[Planet]Range{
	Sun:     {Leo, 0, 20},
	Moon:    {Taurus, 4, 30},
	Mars:    {Aries, 0, 12},
	Mercury: {Virgo, 15, 20},
	Jupiter: {Sagittarius, 0, 10},
	Venus:   {Libra, 0, 15},
	Saturn:  {Aquarius, 0, 20},
}

// OwnSigns gives each planet's own sign(s).
var OwnSigns = map[Planet][]Sign{
	Sun:     {Leo},
	Moon:    {Cancer},
	Mars:    {Aries, Scorpio},
	Mercury: {Gemini, Virgo},
	Jupiter: {Sagittarius, Pisces},
	Venus:   {Taurus, Libra},
	Saturn:  {Capricorn, Aquarius},
}

// Friendship is natural (or temporal) relationship between two planets,
// three-valued per spec.md 4.7/4.8.
type Friendship string

const (
	FriendshipFriend  Friendship = "friend"
	FriendshipNeutral Friendship = "neutral"
	FriendshipEnemy   Friendship = "enemy"
)

// NaturalFriendship is the fixed 7x7 matrix of natural relationships
// between the seven classical planets (Parasara's naisargika maitri).
var NaturalFriendship = map[Planet]map[Planet]Friendship{
	Sun: {
		Sun: FriendshipNeutral, Moon: FriendshipFriend, Mars: FriendshipFriend, Mercury: FriendshipNeutral,
		Jupiter: FriendshipFriend, Venus: FriendshipEnemy, Saturn: FriendshipEnemy,
	},
	Moon: {
		Sun: FriendshipFriend, Moon: FriendshipNeutral, Mars: FriendshipNeutral, Mercury: FriendshipFriend,
		Jupiter: FriendshipNeutral, Venus: FriendshipNeutral, Saturn: FriendshipNeutral,
	},
	Mars: {
		Sun: FriendshipFriend, Moon: FriendshipFriend, Mars: FriendshipNeutral, Mercury: FriendshipEnemy,
		Jupiter: FriendshipFriend, Venus: FriendshipNeutral, Saturn: FriendshipNeutral,
	},
	Mercury: {
		Sun: FriendshipFriend, Moon: FriendshipEnemy, Mars: FriendshipNeutral, Mercury: FriendshipNeutral,
		Jupiter: FriendshipNeutral, Venus: FriendshipFriend, Saturn: FriendshipNeutral,
	},
	Jupiter: {
		Sun: FriendshipFriend, Moon: FriendshipFriend, Mars: FriendshipFriend, Mercury: FriendshipEnemy,
		Jupiter: FriendshipNeutral, Venus: FriendshipEnemy, Saturn: FriendshipNeutral,
	},
	Venus: {
		Sun: FriendshipEnemy, Moon: FriendshipEnemy, Mars: FriendshipNeutral, Mercury: FriendshipFriend,
		Jupiter: FriendshipNeutral, Venus: FriendshipNeutral, Saturn: FriendshipFriend,
	},
	Saturn: {
		Sun: FriendshipEnemy, Moon: FriendshipEnemy, Mars: FriendshipNeutral, Mercury: FriendshipFriend,
		Jupiter: FriendshipNeutral, Venus: FriendshipFriend, Saturn: FriendshipNeutral,
	},
}

// NaturalFriendshipOf looks up the natural relationship of p2 as seen from
// p1. A missing entry is MissingData: both planets must be one of the
// seven classical grahas.
func NaturalFriendshipOf(p1, p2 Planet) (Friendship, bool) {
	row, ok := NaturalFriendship[p1]
	if !ok {
		return "", false
	}
	f, ok := row[p2]
	return f, ok
}
