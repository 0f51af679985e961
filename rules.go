package casino

// Rules holds the table-rule variants the engine supports. The zero
// value is the standard two-player game.
type Rules struct {
	// FaceCardsCaptureTens lets a Jack, Queen or King capture a build
	// of ten.
	FaceCardsCaptureTens bool

	// AceHighCombinations makes combination captures target the played
	// card's aces-high capture value (Ace=14, J=11, Q=12, K=13)
	// instead of its build value.
	AceHighCombinations bool

	// BuildsInCombinations lets simple builds contribute their value to
	// combination captures alongside loose cards.
	BuildsInCombinations bool
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{}
}
