// Package store keeps hosted games in memory. Each game has its own lock, so
// work on different games runs in parallel while work on one game is
// serialized.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Entry is a hosted game and the players bound to it.
type Entry struct {
	Game  *game.Game
	White string // player id bound to white, empty until bound
	Black string

	// DrawOffer is the colour with a pending draw offer, zero if none.
	DrawOffer chess.Color
}

// ColorOf returns the colour bound to playerID.
func (e *Entry) ColorOf(playerID string) (chess.Color, bool) {
	switch {
	case playerID == "":
		return 0, false
	case e.White == playerID:
		return chess.White, true
	case e.Black == playerID:
		return chess.Black, true
	}
	return 0, false
}

type slot struct {
	mu    sync.Mutex
	entry Entry
}

// MemoryStore is a thread-safe in-memory game repository.
type MemoryStore struct {
	mu       sync.RWMutex
	games    map[string]*slot
	maxGames int
	newID    func() string
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMaxGames caps the number of stored games. 0 means unlimited.
func WithMaxGames(n int) Option {
	return func(s *MemoryStore) {
		if n >= 0 {
			s.maxGames = n
		}
	}
}

// WithIDFunc replaces the uuid game id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *MemoryStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		games: make(map[string]*slot),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new game from the initial position with white bound to
// the given player and returns its id.
func (s *MemoryStore) Create(white string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return "", errors.ErrStoreFull
	}
	id := s.newID()
	if _, dup := s.games[id]; dup {
		return "", errors.Wrapf(errors.ErrStoreFull, "game id %s already in use", id)
	}
	s.games[id] = &slot{entry: Entry{Game: game.New(id), White: white}}
	return id, nil
}

// Update runs fn with exclusive access to the game's entry. Changes fn makes
// to the entry are kept even when it returns an error.
func (s *MemoryStore) Update(id string, fn func(e *Entry) error) error {
	sl, err := s.lookup(id)
	if err != nil {
		return err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn(&sl.entry)
}

// View runs fn with exclusive access to the game's entry. fn must not
// modify the entry.
func (s *MemoryStore) View(id string, fn func(e Entry) error) error {
	sl, err := s.lookup(id)
	if err != nil {
		return err
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn(sl.entry)
}

// Delete removes a game. Deleting an unknown id is not an error.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// Len returns the number of stored games.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// IsFull returns true if the store has reached its capacity limit.
// Always returns false for unlimited capacity.
func (s *MemoryStore) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxGames > 0 && len(s.games) >= s.maxGames
}

func (s *MemoryStore) lookup(id string) (*slot, error) {
	s.mu.RLock()
	sl, ok := s.games[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return sl, nil
}
