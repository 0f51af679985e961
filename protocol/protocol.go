package protocol

import (
	"github.com/royalmatch/casino/deck"
)

// PlayerInfo identifies a player to the outside world
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// TableItem is the wire representation of an item on the table
type TableItem struct {
	ID         int         `json:"id"`
	Kind       string      `json:"kind"` // "card", "build" or "pair"
	Cards      []deck.Card `json:"cards"`
	Value      int         `json:"value,omitempty"`
	Rank       string      `json:"rank,omitempty"`
	Compound   bool        `json:"compound,omitempty"`
	Controller string      `json:"controller,omitempty"`
}

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	Start
	HasStarted
	Error
	Turn
	Build
	Pair
	Capture
	Trail
	ReplenishHand
	GameOver
)

var cmdNames = []string{
	"Null",
	"NewJoiner",
	"Start",
	"HasStarted",
	"Error",
	"Turn",
	"Build",
	"Pair",
	"Capture",
	"Trail",
	"ReplenishHand",
	"GameOver",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
