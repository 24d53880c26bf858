package server

import (
	"fmt"
	"sync"

	"github.com/dekarrin/playingsim/klondike"
)

// GameStore holds the games the server is hosting
type GameStore interface {
	AddGame(h *HostedGame) error
	FindGame(id string) (*HostedGame, bool)
	RemoveGame(id string)
}

// HostedGame is one game plus the lock that serialises access to it. The
// engine itself is single-owner; every handler touches the game only
// through Do.
type HostedGame struct {
	ID string

	mu   sync.Mutex
	game *klondike.Game
}

// NewHostedGame wraps a game for hosting
func NewHostedGame(id string, g *klondike.Game) *HostedGame {
	return &HostedGame{ID: id, game: g}
}

// Do runs fn with exclusive access to the game
func (h *HostedGame) Do(fn func(g *klondike.Game) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.game)
}

// InMemoryGameStore maps game id to hosted game
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*HostedGame
}

// NewInMemoryGameStore constructs an empty InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{games: map[string]*HostedGame{}}
}

func (s *InMemoryGameStore) AddGame(h *HostedGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.games[h.ID]; exists {
		return fmt.Errorf("game with id %s already exists", h.ID)
	}
	s.games[h.ID] = h
	return nil
}

func (s *InMemoryGameStore) FindGame(id string) (*HostedGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.games[id]
	return h, ok
}

func (s *InMemoryGameStore) RemoveGame(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}
