package casino

import (
	"fmt"
	"strings"

	"github.com/royalmatch/casino/deck"
)

// PlayerID identifies a seat at the table
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

var playerNames = []string{"nobody", "Player 1", "Player 2"}

func (p PlayerID) String() string {
	if p < NoPlayer || p > Player2 {
		return "unknown"
	}
	return playerNames[p]
}

// ItemID identifies a table item. IDs are assigned monotonically by the
// engine for the lifetime of a game session and are never reused.
type ItemID int

// TableItem is one of the three kinds of item that can lie on the
// table: a loose card, a build or a pair. The union is closed; every
// consumer switches exhaustively over the three variants.
type TableItem interface {
	ID() ItemID
	// Cards returns the physical cards folded into the item
	Cards() []deck.Card
	String() string

	tableItem()
}

// LooseCard is a single physical card lying face-up on the table
type LooseCard struct {
	id   ItemID
	Card deck.Card
}

// NewLooseCard wraps a card in a table item
func NewLooseCard(id ItemID, card deck.Card) *LooseCard {
	return &LooseCard{id: id, Card: card}
}

func (l *LooseCard) ID() ItemID         { return l.id }
func (l *LooseCard) Cards() []deck.Card { return []deck.Card{l.Card} }
func (l *LooseCard) String() string     { return l.Card.String() }
func (l *LooseCard) tableItem()         {}

// Build is a group of cards collectively promised to sum to Value,
// capturable by a card of the matching rank. Compound marks a build
// formed from more than one contributing group; once compound, a build
// never reverts to simple.
type Build struct {
	id         ItemID
	Value      int
	Controller PlayerID
	Compound   bool
	cards      []deck.Card
}

// NewBuild constructs a build from the cards folded into it
func NewBuild(id ItemID, value int, controller PlayerID, compound bool, cards []deck.Card) *Build {
	return &Build{id: id, Value: value, Controller: controller, Compound: compound, cards: cards}
}

func (b *Build) ID() ItemID { return b.id }

func (b *Build) Cards() []deck.Card {
	cards := make([]deck.Card, len(b.cards))
	copy(cards, b.cards)
	return cards
}

// CapturingRank returns the rank able to capture the build
func (b *Build) CapturingRank() deck.Rank {
	rank, _ := deck.RankForValue(b.Value)
	return rank
}

func (b *Build) String() string {
	kind := "build"
	if b.Compound {
		kind = "compound build"
	}
	return fmt.Sprintf("%s of %d (%s)", kind, b.Value, b.Controller)
}

func (b *Build) tableItem() {}

// Pair is a group of two or more cards of identical rank
type Pair struct {
	id         ItemID
	Rank       deck.Rank
	Controller PlayerID
	cards      []deck.Card
}

// NewPair constructs a pair from the cards folded into it
func NewPair(id ItemID, rank deck.Rank, controller PlayerID, cards []deck.Card) *Pair {
	return &Pair{id: id, Rank: rank, Controller: controller, cards: cards}
}

func (p *Pair) ID() ItemID { return p.id }

func (p *Pair) Cards() []deck.Card {
	cards := make([]deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pair) String() string {
	return fmt.Sprintf("pair of %ss (%s)", p.Rank, p.Controller)
}

func (p *Pair) tableItem() {}

// itemIDs allocates item ids for one game session
type itemIDs struct {
	next ItemID
}

func (a *itemIDs) nextID() ItemID {
	a.next++
	return a.next
}

func findItem(table []TableItem, id ItemID) TableItem {
	for _, item := range table {
		if item != nil && item.ID() == id {
			return item
		}
	}
	return nil
}

// removeItems returns a new table with the given items taken off it.
// The input table is never modified.
func removeItems(table []TableItem, ids map[ItemID]bool) []TableItem {
	remaining := []TableItem{}
	for _, item := range table {
		if !ids[item.ID()] {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

func itemIDSet(items []TableItem) map[ItemID]bool {
	ids := map[ItemID]bool{}
	for _, item := range items {
		if item != nil {
			ids[item.ID()] = true
		}
	}
	return ids
}

// itemCards flattens the physical cards of a group of items,
// preserving table order
func itemCards(items []TableItem) []deck.Card {
	cards := []deck.Card{}
	for _, item := range items {
		cards = append(cards, item.Cards()...)
	}
	return cards
}

func itemNames(items []TableItem) string {
	names := []string{}
	for _, item := range items {
		names = append(names, item.String())
	}
	return strings.Join(names, ", ")
}
