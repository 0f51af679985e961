package deck

// countValues is the scoring value of each rank: aces count one,
// numerals their face value, court cards ten.
var countValues = map[Rank]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  10,
	Queen: 10,
	King:  10,
}

// buildValues is the value a card contributes to a build. Court cards
// carry no build value and can never be summed.
var buildValues = map[Rank]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  0,
	Queen: 0,
	King:  0,
}

// captureValues ranks every card for rank-independent combination
// variants: aces high, court cards above the ten.
var captureValues = map[Rank]int{
	Ace:   14,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
}

// CountValue returns the scoring value of a rank
func CountValue(r Rank) int {
	return countValues[r]
}

// BuildValue returns the value a rank contributes to a build.
// Court cards return 0: they are unusable in builds.
func BuildValue(r Rank) int {
	return buildValues[r]
}

// CaptureValue returns the rank's value in the aces-high ordering
func CaptureValue(r Rank) int {
	return captureValues[r]
}

// RankForValue maps a build value onto the rank able to capture it:
// 1 is captured by an ace, 2 to 10 by the matching numeral. Values
// outside that range have no capturing rank.
func RankForValue(v int) (Rank, bool) {
	if v < 1 || v > 10 {
		return 0, false
	}
	if v == 1 {
		return Ace, true
	}
	return Rank(v - 1), true
}
