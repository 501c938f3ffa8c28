// Package store keeps HTTP game sessions in memory.
//
// Each session wraps one game.Game. Games are not safe for concurrent use, so
// every access goes through Session.Do, which holds the session's lock.
// State is lost when the process restarts.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/samdwyer/wordscramble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the interface for game sessions.
type Store interface {
	// Create registers g under a new random ID.
	Create(ctx context.Context, g *game.Game) (*Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len returns the number of live sessions.
	Len() int
}

// Session is one player's game behind a mutex.
type Session struct {
	ID string

	mu   sync.Mutex
	game *game.Game
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Create(ctx context.Context, g *game.Game) (*Session, error) {
	if g == nil {
		return nil, errors.New("nil game")
	}
	s := &Session{ID: uuid.NewString(), game: g}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
