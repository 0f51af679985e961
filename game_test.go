package casino

import (
	"testing"

	"github.com/royalmatch/casino/deck"
	utils "github.com/royalmatch/casino/internal"
	"github.com/royalmatch/casino/protocol"
	"github.com/stretchr/testify/assert"
)

var twoPlayers = func() []protocol.PlayerInfo {
	return []protocol.PlayerInfo{{PlayerID: "p1", Name: "Harry"}, {PlayerID: "p2", Name: "Sally"}}
}

func TestNewCasino(t *testing.T) {
	t.Run("a new game deals four cards each and four to the table", func(t *testing.T) {
		t.Log("Given a new game")
		game := NewCasino(CasinoOpts{})

		t.Log("When the game starts")
		err := game.Start(twoPlayers())
		utils.AssertNoError(t, err)

		t.Log("Then hands, table and deck are set up")
		utils.AssertEqual(t, len(game.hands["p1"]), handSize)
		utils.AssertEqual(t, len(game.hands["p2"]), handSize)
		utils.AssertEqual(t, len(game.table), tableOpen)
		utils.AssertEqual(t, len(game.deck), 52-2*handSize-tableOpen)
		utils.AssertEqual(t, game.stage, inHand)

		for _, item := range game.table {
			_, ok := item.(*LooseCard)
			utils.AssertTrue(t, ok)
		}
	})

	t.Run("casino seats exactly two players", func(t *testing.T) {
		game := NewCasino(CasinoOpts{})

		err := game.Start([]protocol.PlayerInfo{{PlayerID: "p1"}})
		utils.AssertErrorIs(t, err, ErrTwoPlayersRequired)

		err = game.Start([]protocol.PlayerInfo{{PlayerID: "p1"}, {PlayerID: "p2"}, {PlayerID: "p3"}})
		utils.AssertErrorIs(t, err, ErrTwoPlayersRequired)
	})

	t.Run("responses are rejected before the first turn is announced", func(t *testing.T) {
		game := NewCasino(CasinoOpts{})
		utils.AssertNoError(t, game.Start(twoPlayers()))

		_, err := game.ReceiveResponse([]InboundMessage{{PlayerID: "p1", Command: protocol.Trail}})
		utils.AssertErrorIs(t, err, ErrGameUnexpectedResponse)
	})
}

func TestGameTurns(t *testing.T) {
	startedGame := func(t *testing.T) *casinoGame {
		t.Helper()
		game := NewCasino(CasinoOpts{})
		utils.AssertNoError(t, game.Start(twoPlayers()))
		msgs, err := game.Next()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 2)
		return game
	}

	t.Run("turns alternate between the players", func(t *testing.T) {
		game := startedGame(t)

		first := game.currentPlayer().PlayerID
		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID: first,
			Command:  protocol.Trail,
			Card:     0,
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 2)

		second := game.currentPlayer().PlayerID
		assert.NotEqual(t, first, second)
		utils.AssertEqual(t, len(game.hands[first]), handSize-1)
		utils.AssertEqual(t, len(game.table), tableOpen+1)
	})

	t.Run("playing out of turn is rejected", func(t *testing.T) {
		game := startedGame(t)

		notCurrent := game.PlayerInfo[(game.currentTurnIdx+1)%numSeats].PlayerID
		_, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID: notCurrent,
			Command:  protocol.Trail,
			Card:     0,
		}})
		utils.AssertErrorIs(t, err, ErrOutOfTurn)
	})

	t.Run("a bad card index re-prompts the current player", func(t *testing.T) {
		game := startedGame(t)

		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID: game.currentPlayer().PlayerID,
			Command:  protocol.Trail,
			Card:     handSize + 3,
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 1)
		utils.AssertEqual(t, msgs[0].Command, protocol.Error)
		utils.AssertTrue(t, msgs[0].ShouldRespond)
	})

	t.Run("an unknown selection id re-prompts the current player", func(t *testing.T) {
		game := startedGame(t)

		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID:  game.currentPlayer().PlayerID,
			Command:   protocol.Capture,
			Card:      0,
			Selection: []int{9999},
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, msgs[0].Command, protocol.Error)
		utils.AssertEqual(t, msgs[0].Error, ErrUnknownSelection.Error())
	})
}

func TestGameCapture(t *testing.T) {
	// riggedGame sets up a mid-hand position by hand: Harry holds a
	// Seven and the table offers a Seven and a Queen
	riggedGame := func() *casinoGame {
		game := NewCasino(CasinoOpts{})
		game.PlayerInfo = twoPlayers()
		game.seats = map[string]PlayerID{"p1": Player1, "p2": Player2}
		game.hands = map[string][]deck.Card{
			"p1": {deck.NewCard(deck.Seven, deck.Clubs), deck.NewCard(deck.Two, deck.Hearts)},
			"p2": {deck.NewCard(deck.Nine, deck.Spades)},
		}
		game.piles = map[string][]deck.Card{"p1": {}, "p2": {}}
		game.table = []TableItem{
			game.engine.PlaceCard(deck.NewCard(deck.Seven, deck.Diamonds)),
			game.engine.PlaceCard(deck.NewCard(deck.Queen, deck.Spades)),
		}
		game.deck = deck.Deck{}
		game.stage = inHand
		game.currentTurnIdx = 0
		game.awaitingResponse = true
		return game
	}

	t.Run("a capture moves cards into the pile", func(t *testing.T) {
		game := riggedGame()

		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID:  "p1",
			Command:   protocol.Capture,
			Card:      0,
			Selection: []int{int(game.table[0].ID())},
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 2)

		assert.ElementsMatch(t, game.piles["p1"], []deck.Card{
			deck.NewCard(deck.Seven, deck.Clubs),
			deck.NewCard(deck.Seven, deck.Diamonds),
		})
		utils.AssertEqual(t, len(game.table), 1)
		utils.AssertEqual(t, game.lastCapturer, Player1)
		utils.AssertEqual(t, len(game.hands["p1"]), 1)
	})

	t.Run("a repeated selection id is rejected at the wire", func(t *testing.T) {
		game := riggedGame()

		sevenID := int(game.table[0].ID())
		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID:  "p1",
			Command:   protocol.Build,
			Card:      1,
			Selection: []int{sevenID, sevenID},
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 1)
		utils.AssertEqual(t, msgs[0].Command, protocol.Error)
		utils.AssertEqual(t, msgs[0].Error, ErrDuplicateItem.Error())
		utils.AssertEqual(t, len(game.table), 2)
	})

	t.Run("an illegal capture re-prompts without touching the table", func(t *testing.T) {
		game := riggedGame()

		msgs, err := game.ReceiveResponse([]InboundMessage{{
			PlayerID:  "p1",
			Command:   protocol.Capture,
			Card:      1, // the Two captures nothing here
			Selection: []int{int(game.table[0].ID())},
		}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(msgs), 1)
		utils.AssertEqual(t, msgs[0].Command, protocol.Error)
		utils.AssertEqual(t, len(game.table), 2)
		utils.AssertEqual(t, len(game.piles["p1"]), 0)
	})
}

func TestGameEndOfHand(t *testing.T) {
	t.Run("trailing out the whole deck ends the game", func(t *testing.T) {
		game := NewCasino(CasinoOpts{})
		utils.AssertNoError(t, game.Start(twoPlayers()))
		_, err := game.Next()
		utils.AssertNoError(t, err)

		sawReplenish := false
		var last []OutboundMessage
		for !game.GameOver() {
			current := game.currentPlayer().PlayerID
			msgs, err := game.ReceiveResponse([]InboundMessage{{
				PlayerID: current,
				Command:  protocol.Trail,
				Card:     0,
			}})
			utils.AssertNoError(t, err)
			if msgs[0].Command == protocol.ReplenishHand {
				sawReplenish = true
				utils.AssertEqual(t, len(game.hands[current]), handSize)
			}
			last = msgs
		}

		utils.AssertTrue(t, sawReplenish)
		utils.AssertEqual(t, len(game.deck), 0)
		utils.AssertEqual(t, last[0].Command, protocol.GameOver)

		// nobody captured, so nobody scored
		utils.AssertEqual(t, game.P1Score, 0)
		utils.AssertEqual(t, game.P2Score, 0)

		_, err = game.Next()
		utils.AssertErrorIs(t, err, ErrGameOver)
	})
}
