package casino

import (
	"github.com/royalmatch/casino/protocol"
)

func playersToNames(players Players) []string {
	names := []string{}
	for _, p := range players {
		names = append(names, p.Name())
	}
	return names
}

func gameEngineWithPlayers() GameEngine {
	ge, _ := NewGameEngine(GameEngineOpts{
		GameID:  "theid",
		Players: SomePlayers(),
		Game:    NewCasino(CasinoOpts{}),
	})
	return ge
}

// NewTestGameStore is a convenience function for creating an
// InMemoryGameStore in tests
func NewTestGameStore(
	active,
	inactive map[string]GameEngine,
	pendingPlayers map[string][]protocol.PlayerInfo,
) *InMemoryGameStore {
	if active == nil {
		active = map[string]GameEngine{}
	}
	if inactive == nil {
		inactive = map[string]GameEngine{}
	}
	if pendingPlayers == nil {
		pendingPlayers = map[string][]protocol.PlayerInfo{}
	}

	return &InMemoryGameStore{
		Active:         active,
		Inactive:       inactive,
		PendingPlayers: pendingPlayers,
	}
}
