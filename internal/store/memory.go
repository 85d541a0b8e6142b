// internal/store/memory.go
//
// In-memory implementation of the Store interface for live guessing games.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get hands out copies; all mutation goes through Update.
//   - Prune drops games saved before a cutoff; the server sweeps with the
//     session TTL since an expired token can no longer reach its game.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/rusty-dusty/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a snapshot of the game with the given ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update runs fn against the stored game while holding the write lock.
	// An error from fn is returned unchanged.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Prune removes games saved before cutoff and returns their IDs.
	Prune(ctx context.Context, cutoff time.Time) []string
}

type entry struct {
	g     *game.Game
	saved time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex     // guards games map and the games in it
	games map[string]entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = entry{g: g, saved: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e.g
	return &cp, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(e.g)
}

func (m *memory) Prune(ctx context.Context, cutoff time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var gone []string
	for id, e := range m.games {
		if e.saved.Before(cutoff) {
			delete(m.games, id)
			gone = append(gone, id)
		}
	}
	return gone
}
