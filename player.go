package casino

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/royalmatch/casino/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player interface {
	ID() string
	Name() string
	Send(msg OutboundMessage) error
	Receive(data []byte)
}

// WSPlayer is a player connected over a websocket
type WSPlayer struct {
	id     string
	name   string
	conn   *websocket.Conn
	send   chan []byte
	engine GameEngine
}

// NewWSPlayer constructs a player from a live websocket connection.
// Inbound messages are forwarded to the engine's hub.
func NewWSPlayer(id, name string, ws *websocket.Conn, engine GameEngine) *WSPlayer {
	player := &WSPlayer{
		id:     id,
		name:   name,
		conn:   ws,
		send:   make(chan []byte, 4),
		engine: engine,
	}
	go player.writePump()
	go player.readPump()
	return player
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

func (p *WSPlayer) Send(msg OutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	p.send <- data
	return nil
}

func (p *WSPlayer) Receive(data []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("player %s sent an unreadable message: %s", p.id, err)
		return
	}
	msg.PlayerID = p.id
	p.engine.Receive(msg)
}

func (p *WSPlayer) readPump() {
	defer p.conn.Close()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		p.Receive(data)
	}
}

func (p *WSPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players
func AddPlayer(ps Players, p Player) Players {
	if _, ok := ps.Find(p.ID()); !ok {
		return Players(append(ps, p))
	}
	return ps
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Info lists the players' public identities in order
func (ps Players) Info() []protocol.PlayerInfo {
	info := []protocol.PlayerInfo{}
	for _, p := range ps {
		info = append(info, protocol.PlayerInfo{PlayerID: p.ID(), Name: p.Name()})
	}
	return info
}
