package casino

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/royalmatch/casino/deck"
	"github.com/royalmatch/casino/protocol"
)

// Stage represents the main stages in the game
type Stage int

const (
	preGame Stage = iota
	inHand
	gameOver
)

const (
	numSeats  = 2
	handSize  = 4
	tableOpen = 4
)

var (
	ErrNilGame                = errors.New("game is nil")
	ErrTwoPlayersRequired     = errors.New("casino is a game for exactly 2 players")
	ErrGameAwaitingResponse   = errors.New("game is awaiting a response")
	ErrGameUnexpectedResponse = errors.New("game is not awaiting a response")
	ErrGameOver               = errors.New("game is over")
	ErrOutOfTurn              = errors.New("it is not that player's turn")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrUnknownCard            = errors.New("played card is not in hand")
	ErrUnknownSelection       = errors.New("selection includes an unknown table item")
)

// Game represents a game
type Game interface {
	Start(playerInfo []protocol.PlayerInfo) error
	Next() ([]OutboundMessage, error)
	ReceiveResponse([]InboundMessage) ([]OutboundMessage, error)
	AwaitingResponse() bool
	GameOver() bool
}

type casinoGame struct {
	engine           *Engine
	deck             deck.Deck
	table            []TableItem
	PlayerInfo       []protocol.PlayerInfo
	seats            map[string]PlayerID
	hands            map[string][]deck.Card
	piles            map[string][]deck.Card
	P1Score          int
	P2Score          int
	lastCapturer     PlayerID
	currentTurnIdx   int
	stage            Stage
	awaitingResponse bool
}

// CasinoOpts is the configuration for a game of Casino
type CasinoOpts struct {
	Deck  deck.Deck
	Rules Rules
}

// NewCasino constructs a new game of Casino
func NewCasino(opts CasinoOpts) *casinoGame {
	d := opts.Deck
	if d == nil {
		d = deck.New()
	}
	return &casinoGame{
		engine: NewEngine(opts.Rules),
		deck:   d,
		table:  []TableItem{},
		seats:  map[string]PlayerID{},
		hands:  map[string][]deck.Card{},
		piles:  map[string][]deck.Card{},
	}
}

func (g *casinoGame) Start(playerInfo []protocol.PlayerInfo) error {
	if g == nil {
		return ErrNilGame
	}
	if len(playerInfo) != numSeats {
		return ErrTwoPlayersRequired
	}

	g.PlayerInfo = playerInfo
	for i, info := range playerInfo {
		g.seats[info.PlayerID] = PlayerID(i + 1)
		g.piles[info.PlayerID] = []deck.Card{}
	}

	g.deck.Shuffle()
	g.dealHands()
	for i := 0; i < tableOpen; i++ {
		card := g.deck.Deal(1)
		g.table = append(g.table, g.engine.PlaceCard(card[0]))
	}

	rand.Seed(time.Now().UnixNano())
	g.currentTurnIdx = rand.Intn(numSeats)
	g.stage = inHand

	return nil
}

func (g *casinoGame) AwaitingResponse() bool {
	return g.awaitingResponse
}

func (g *casinoGame) GameOver() bool {
	return g.stage == gameOver
}

func (g *casinoGame) Next() ([]OutboundMessage, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if len(g.PlayerInfo) == 0 {
		return nil, ErrTwoPlayersRequired
	}
	if g.awaitingResponse {
		return nil, ErrGameAwaitingResponse
	}
	if g.stage == gameOver {
		return nil, ErrGameOver
	}

	msgs := g.buildTurnMessages(fmt.Sprintf("It's %s's turn!", g.currentPlayer().Name))
	g.awaitingResponse = true
	return msgs, nil
}

func (g *casinoGame) ReceiveResponse(msgs []InboundMessage) ([]OutboundMessage, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if !g.awaitingResponse {
		return nil, ErrGameUnexpectedResponse
	}
	if g.stage == gameOver {
		return nil, ErrGameOver
	}
	if len(msgs) != 1 {
		return nil, fmt.Errorf("expected one response, got %d", len(msgs))
	}

	msg := msgs[0]
	current := g.currentPlayer()
	if msg.PlayerID != current.PlayerID {
		return nil, ErrOutOfTurn
	}

	hand := g.hands[current.PlayerID]
	if msg.Card < 0 || msg.Card >= len(hand) {
		return g.buildErrorMessages(ErrUnknownCard), nil
	}
	played := hand[msg.Card]

	selection, err := g.resolveSelection(msg.Selection)
	if err != nil {
		return g.buildErrorMessages(err), nil
	}

	seat := g.seats[current.PlayerID]
	turn := Turn{
		Player:       seat,
		Played:       played,
		Selection:    selection,
		Hand:         hand,
		Table:        g.table,
		P1Score:      g.P1Score,
		P2Score:      g.P2Score,
		LastCapturer: g.lastCapturer,
	}

	var result TurnResult
	switch msg.Command {
	case protocol.Build:
		result = g.engine.HandleBuild(turn)
	case protocol.Pair:
		result = g.engine.HandlePair(turn)
	case protocol.Capture:
		result = g.engine.HandleCapture(turn)
	case protocol.Trail:
		result = g.engine.HandleTrail(turn)
	default:
		return g.buildErrorMessages(ErrUnknownCommand), nil
	}

	if !result.Success {
		return g.buildErrorMessages(errors.New(result.Message)), nil
	}

	g.table = result.Table
	g.P1Score = result.P1Score
	g.P2Score = result.P2Score
	g.lastCapturer = result.LastCapturer
	g.hands[current.PlayerID] = append(hand[:msg.Card], hand[msg.Card+1:]...)
	if len(result.CapturedCards) > 0 {
		g.piles[current.PlayerID] = append(g.piles[current.PlayerID], result.CapturedCards...)
	}

	g.turn()

	if g.handsEmpty() {
		if len(g.deck) >= numSeats*handSize {
			g.dealHands()
			msgs := g.buildTurnMessages(result.Message + " Fresh hands are dealt.")
			for i := range msgs {
				msgs[i].Command = protocol.ReplenishHand
			}
			return msgs, nil
		}
		return g.endHand(result.Message), nil
	}

	return g.buildTurnMessages(result.Message), nil
}

// endHand sweeps the residual table to the last capturer, applies
// end-of-hand scoring and closes the game
func (g *casinoGame) endHand(message string) []OutboundMessage {
	if g.lastCapturer != NoPlayer {
		id := g.PlayerInfo[g.lastCapturer-1].PlayerID
		g.piles[id] = append(g.piles[id], itemCards(g.table)...)
	}
	g.table = []TableItem{}

	p1Pile := g.piles[g.PlayerInfo[0].PlayerID]
	p2Pile := g.piles[g.PlayerInfo[1].PlayerID]
	g.P1Score, g.P2Score = CalculateScores(p1Pile, p2Pile, g.P1Score, g.P2Score)

	g.stage = gameOver
	g.awaitingResponse = false

	return g.buildGameOverMessages(message)
}

func (g *casinoGame) dealHands() {
	for _, info := range g.PlayerInfo {
		g.hands[info.PlayerID] = append(g.hands[info.PlayerID], g.deck.Deal(handSize)...)
	}
}

func (g *casinoGame) handsEmpty() bool {
	for _, hand := range g.hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

func (g *casinoGame) resolveSelection(ids []int) ([]TableItem, error) {
	selection := []TableItem{}
	for _, id := range ids {
		item := findItem(g.table, ItemID(id))
		if item == nil {
			return nil, ErrUnknownSelection
		}
		selection = append(selection, item)
	}
	return selection, nil
}

func (g *casinoGame) currentPlayer() protocol.PlayerInfo {
	return g.PlayerInfo[g.currentTurnIdx]
}

func (g *casinoGame) turn() {
	g.currentTurnIdx = (g.currentTurnIdx + 1) % numSeats
}
