package casino

import (
	"github.com/royalmatch/casino/deck"
	"github.com/royalmatch/casino/protocol"
)

// InboundMessage is a message from Player to GameEngine. Card indexes
// into the player's hand; Selection carries table item ids.
type InboundMessage struct {
	PlayerID  string       `json:"playerID"`
	Command   protocol.Cmd `json:"command"`
	Card      int          `json:"card"`
	Selection []int        `json:"selection"`
}

// OutboundMessage is a message from GameEngine to Player
type OutboundMessage struct {
	PlayerID      string               `json:"playerID"`
	Command       protocol.Cmd         `json:"command"`
	Joiner        protocol.PlayerInfo  `json:"joiner,omitempty"`
	Message       string               `json:"message"`
	Hand          []deck.Card          `json:"hand"`
	Table         []protocol.TableItem `json:"table"`
	DeckCount     int                  `json:"deckCount"`
	PileCount     int                  `json:"pileCount"`
	P1Score       int                  `json:"p1Score"`
	P2Score       int                  `json:"p2Score"`
	CurrentTurn   protocol.PlayerInfo  `json:"currentTurn,omitempty"`
	Opponents     []Opponent           `json:"opponents,omitempty"`
	ShouldRespond bool                 `json:"shouldRespond"`
	Error         string               `json:"error,omitempty"`
}

// Opponent is a representation of an opponent player. Hands are
// hidden; only the count travels.
type Opponent struct {
	PlayerID  string `json:"playerID"`
	Name      string `json:"name"`
	HandCount int    `json:"handCount"`
	PileCount int    `json:"pileCount"`
}

// wireTable converts engine table items to their wire representation
func wireTable(table []TableItem) []protocol.TableItem {
	wire := []protocol.TableItem{}
	for _, item := range table {
		switch it := item.(type) {
		case *LooseCard:
			wire = append(wire, protocol.TableItem{
				ID:    int(it.ID()),
				Kind:  "card",
				Cards: it.Cards(),
			})
		case *Build:
			wire = append(wire, protocol.TableItem{
				ID:         int(it.ID()),
				Kind:       "build",
				Cards:      it.Cards(),
				Value:      it.Value,
				Compound:   it.Compound,
				Controller: it.Controller.String(),
			})
		case *Pair:
			wire = append(wire, protocol.TableItem{
				ID:         int(it.ID()),
				Kind:       "pair",
				Cards:      it.Cards(),
				Rank:       it.Rank.String(),
				Controller: it.Controller.String(),
			})
		}
	}
	return wire
}
