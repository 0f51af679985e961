package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// IsFace reports whether the rank is a Jack, Queen or King
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Card represents a playing card. Cards are immutable values: two cards
// are the same card iff rank and suit are equal.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. Arguments out of range panic, as a deck
// only ever constructs cards from the enums above.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// SuitRank returns a stable identity key for the card (suit + rank)
func (c Card) SuitRank() string {
	return suitNames[c.Suit] + "-" + rankNames[c.Rank]
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], suitNames[c.Suit])
}
