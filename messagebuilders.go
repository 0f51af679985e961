package casino

import (
	"fmt"

	"github.com/royalmatch/casino/protocol"
)

func (g *casinoGame) buildBaseMessage(playerID string) OutboundMessage {
	return OutboundMessage{
		PlayerID:    playerID,
		CurrentTurn: g.currentPlayer(),
		Hand:        g.hands[playerID],
		Table:       wireTable(g.table),
		DeckCount:   len(g.deck),
		PileCount:   len(g.piles[playerID]),
		P1Score:     g.P1Score,
		P2Score:     g.P2Score,
		Opponents:   g.buildOpponents(playerID),
	}
}

func (g *casinoGame) buildOpponents(playerID string) []Opponent {
	opponents := []Opponent{}
	for _, p := range g.PlayerInfo {
		if p.PlayerID != playerID {
			opponents = append(opponents, Opponent{
				PlayerID:  p.PlayerID,
				Name:      p.Name,
				HandCount: len(g.hands[p.PlayerID]),
				PileCount: len(g.piles[p.PlayerID]),
			})
		}
	}
	return opponents
}

func (g *casinoGame) buildTurnMessages(text string) []OutboundMessage {
	toSend := []OutboundMessage{}
	for _, info := range g.PlayerInfo {
		msg := g.buildBaseMessage(info.PlayerID)
		msg.Command = protocol.Turn
		msg.Message = text
		msg.ShouldRespond = info.PlayerID == g.currentPlayer().PlayerID
		toSend = append(toSend, msg)
	}
	return toSend
}

// buildErrorMessages re-prompts the current player with the rejection
// and tells the opponent nothing new
func (g *casinoGame) buildErrorMessages(err error) []OutboundMessage {
	current := g.currentPlayer()
	msg := g.buildBaseMessage(current.PlayerID)
	msg.Command = protocol.Error
	msg.Message = err.Error()
	msg.Error = err.Error()
	msg.ShouldRespond = true
	return []OutboundMessage{msg}
}

func (g *casinoGame) buildGameOverMessages(text string) []OutboundMessage {
	toSend := []OutboundMessage{}
	for _, info := range g.PlayerInfo {
		msg := g.buildBaseMessage(info.PlayerID)
		msg.Command = protocol.GameOver
		msg.Message = fmt.Sprintf("%s The game is over: %d to %d.", text, g.P1Score, g.P2Score)
		toSend = append(toSend, msg)
	}
	return toSend
}
