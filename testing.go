package casino

// TestPlayer collects outbound messages in memory
type TestPlayer struct {
	id       string
	name     string
	Outbound []OutboundMessage
}

// NewTestPlayer constructs a TestPlayer
func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (p *TestPlayer) ID() string {
	return p.id
}

func (p *TestPlayer) Name() string {
	return p.name
}

func (p *TestPlayer) Send(msg OutboundMessage) error {
	p.Outbound = append(p.Outbound, msg)
	return nil
}

func (p *TestPlayer) Receive(data []byte) {}

// SomePlayers returns two named test players
func SomePlayers() Players {
	return NewPlayers(
		NewTestPlayer(NewID(), "Harry"),
		NewTestPlayer(NewID(), "Sally"),
	)
}
