package casino

import (
	"errors"

	"github.com/royalmatch/casino/protocol"
)

// playState represents the state of the current game
// idle -> pre game and post game
// inProgress -> game in progress
type playState int

const (
	idle playState = iota
	inProgress
)

func (ps playState) String() string {
	switch ps {
	case idle:
		return "idle"
	case inProgress:
		return "inProgress"
	}
	return ""
}

var (
	ErrTooFewPlayers  = errors.New("2 players required")
	ErrTooManyPlayers = errors.New("casino seats only 2 players")
	ErrNilEngine      = errors.New("game engine is nil")
)

// GameEngine represents the engine of the game: it owns the players,
// relays inbound messages into the Game and outbound messages back out
type GameEngine interface {
	Start() error
	MessagePlayers([]OutboundMessage) error
	Players() Players
	ID() string
	CreatorID() string
	AddPlayer(Player) error
	Receive(InboundMessage)
	Listen()
}

// GameEngineOpts is the configuration for a GameEngine
type GameEngineOpts struct {
	GameID     string
	CreatorID  string
	Players    Players
	Game       Game
	Store      GameStore
	RegisterCh chan Player
	InboundCh  chan InboundMessage
}

type gameEngine struct {
	id        string
	creatorID string
	playState playState
	players   Players
	game      Game
	store     GameStore
	register  chan Player
	inbound   chan InboundMessage
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Game == nil {
		return nil, errors.New("a GameEngine needs a Game")
	}
	if opts.RegisterCh == nil {
		opts.RegisterCh = make(chan Player)
	}
	if opts.InboundCh == nil {
		opts.InboundCh = make(chan InboundMessage)
	}
	return &gameEngine{
		id:        opts.GameID,
		creatorID: opts.CreatorID,
		players:   opts.Players,
		game:      opts.Game,
		store:     opts.Store,
		register:  opts.RegisterCh,
		inbound:   opts.InboundCh,
	}, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) Players() Players {
	return ge.players
}

// AddPlayer adds a player to a game
func (ge *gameEngine) AddPlayer(p Player) error {
	ge.register <- p
	return nil
}

// Start deals the opening table and announces the first turn
func (ge *gameEngine) Start() error {
	if ge == nil {
		return ErrNilEngine
	}
	if err := ge.checkNumPlayers(); err != nil {
		return err
	}
	if ge.playState != idle {
		return nil
	}

	if err := ge.game.Start(ge.players.Info()); err != nil {
		return err
	}

	if err := ge.MessagePlayers(ge.buildHasStartedMessages()); err != nil {
		return err
	}

	msgs, err := ge.game.Next()
	if err != nil {
		return err
	}
	if err := ge.MessagePlayers(msgs); err != nil {
		return err
	}

	ge.playState = inProgress

	if ge.store != nil {
		if err := ge.store.ActivateGame(ge.id); err != nil {
			return err
		}
	}
	return nil
}

func (ge *gameEngine) buildHasStartedMessages() []OutboundMessage {
	msgs := []OutboundMessage{}
	for _, p := range ge.players {
		msgs = append(msgs, OutboundMessage{
			PlayerID: p.ID(),
			Command:  protocol.HasStarted,
			Message:  "The game has started!",
		})
	}
	return msgs
}

// MessagePlayers sends each message to its target player
func (ge *gameEngine) MessagePlayers(messages []OutboundMessage) error {
	for _, m := range messages {
		if p, ok := ge.players.Find(m.PlayerID); ok {
			if err := p.Send(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Receive forwards an InboundMessage from a Player to the hub
func (ge *gameEngine) Receive(msg InboundMessage) {
	ge.inbound <- msg
}

// Listen runs the hub: joiners are registered, player responses are
// fed into the game one at a time
func (ge *gameEngine) Listen() {
	for {
		select {
		case joiner := <-ge.register:
			ge.players = AddPlayer(ge.players, joiner)
			for _, p := range ge.players {
				p.Send(buildNewJoinerMessage(joiner, p))
			}

		case msg := <-ge.inbound:
			switch msg.Command {
			case protocol.Start:
				if msg.PlayerID == ge.creatorID {
					ge.Start()
				}
			default:
				ge.handleResponse(msg)
			}
		}
	}
}

func (ge *gameEngine) handleResponse(msg InboundMessage) {
	if ge.playState != inProgress {
		return
	}
	outbound, err := ge.game.ReceiveResponse([]InboundMessage{msg})
	if err != nil {
		ge.MessagePlayers(ge.buildErrorMessage(msg.PlayerID, err))
		return
	}
	ge.MessagePlayers(outbound)

	if ge.game.GameOver() {
		ge.playState = idle
	}
}

func (ge *gameEngine) buildErrorMessage(playerID string, err error) []OutboundMessage {
	return []OutboundMessage{{
		PlayerID:      playerID,
		Command:       protocol.Error,
		Message:       err.Error(),
		Error:         err.Error(),
		ShouldRespond: true,
	}}
}

func (ge *gameEngine) checkNumPlayers() error {
	if len(ge.players) < numSeats {
		return ErrTooFewPlayers
	}
	if len(ge.players) > numSeats {
		return ErrTooManyPlayers
	}
	return nil
}

func buildNewJoinerMessage(joiner, recipient Player) OutboundMessage {
	return OutboundMessage{
		PlayerID: recipient.ID(),
		Command:  protocol.NewJoiner,
		Joiner:   protocol.PlayerInfo{PlayerID: joiner.ID(), Name: joiner.Name()},
		Message:  joiner.Name() + " has joined the game!",
	}
}
