package casino

import (
	"fmt"
	"sync"

	"github.com/royalmatch/casino/protocol"
)

// GameStore holds game engines by game id
type GameStore interface {
	FindActiveGame(gameID string) (GameEngine, bool)
	FindInactiveGame(gameID string) (GameEngine, bool)
	FindPendingPlayer(gameID, playerID string) (protocol.PlayerInfo, bool)
	AddInactiveGame(engine GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	ActivateGame(gameID string) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.RWMutex
	Active         map[string]GameEngine
	Inactive       map[string]GameEngine
	PendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Active:         map[string]GameEngine{},
		Inactive:       map[string]GameEngine{},
		PendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindActiveGame(gameID string) (GameEngine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Active[gameID]
	return game, ok
}

func (s *InMemoryGameStore) FindInactiveGame(gameID string) (GameEngine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Inactive[gameID]
	return game, ok
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) (protocol.PlayerInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, info := range s.PendingPlayers[gameID] {
		if info.PlayerID == playerID {
			return info, true
		}
	}
	return protocol.PlayerInfo{}, false
}

func (s *InMemoryGameStore) AddInactiveGame(engine GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := engine.ID()
	if _, exists := s.Inactive[gameID]; exists {
		return fmt.Errorf("game with id %s already exists", gameID)
	}
	if _, exists := s.Active[gameID]; exists {
		return fmt.Errorf("game with id %s is already active", gameID)
	}

	s.Inactive[gameID] = engine
	return nil
}

func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Inactive[gameID]; !ok {
		return fmt.Errorf("pending game with id %s does not exist", gameID)
	}
	if len(s.PendingPlayers[gameID]) >= numSeats {
		return fmt.Errorf("game %s already has %d players", gameID, numSeats)
	}

	s.PendingPlayers[gameID] = append(s.PendingPlayers[gameID], protocol.PlayerInfo{
		PlayerID: playerID,
		Name:     name,
	})
	return nil
}

// ActivateGame moves a game from the inactive to the active map
func (s *InMemoryGameStore) ActivateGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Active[gameID]; ok {
		return nil
	}

	game, ok := s.Inactive[gameID]
	if !ok {
		return fmt.Errorf("game with id %s does not exist", gameID)
	}

	s.Active[gameID] = game
	delete(s.Inactive, gameID)
	return nil
}
