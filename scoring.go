package casino

import "github.com/royalmatch/casino/deck"

const (
	mostCardsPoints  = 3
	mostSpadesPoints = 1
	acePoints        = 1
	bigCasinoPoints  = 2 // ten of diamonds
	lilCasinoPoints  = 1 // two of spades
	mostCardsFloor   = 26
)

// CalculateScores applies end-of-hand points for both capture piles
// onto the running scores: three points for holding more than half the
// deck, one for the spade majority, one per ace, two for the ten of
// diamonds and one for the two of spades. Ties award nothing.
func CalculateScores(p1Pile, p2Pile []deck.Card, p1Score, p2Score int) (int, int) {
	if len(p1Pile) > mostCardsFloor {
		p1Score += mostCardsPoints
	} else if len(p2Pile) > mostCardsFloor {
		p2Score += mostCardsPoints
	}

	p1Spades, p2Spades := countSuit(p1Pile, deck.Spades), countSuit(p2Pile, deck.Spades)
	if p1Spades > p2Spades {
		p1Score += mostSpadesPoints
	} else if p2Spades > p1Spades {
		p2Score += mostSpadesPoints
	}

	p1Score += pilePoints(p1Pile)
	p2Score += pilePoints(p2Pile)

	return p1Score, p2Score
}

// pilePoints totals the per-card points of one pile
func pilePoints(pile []deck.Card) int {
	points := 0
	for _, c := range pile {
		if c.Rank == deck.Ace {
			points += acePoints
		}
		if c == deck.NewCard(deck.Ten, deck.Diamonds) {
			points += bigCasinoPoints
		}
		if c == deck.NewCard(deck.Two, deck.Spades) {
			points += lilCasinoPoints
		}
	}
	return points
}

func countSuit(pile []deck.Card, suit deck.Suit) int {
	count := 0
	for _, c := range pile {
		if c.Suit == suit {
			count++
		}
	}
	return count
}
