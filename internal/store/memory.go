// internal/store/memory.go
//
// In-process round registry.
//
// Characteristics:
//   - Stores *game.Round values keyed by round ID.
//   - Bounded by an ARC cache: idle rounds are evicted once capacity is reached.
//   - Concurrency-safe; state is lost when the process restarts.

package store

import (
	"context"
	"errors"

	"github.com/robalobadob/wordscramble/internal/cache"
	"github.com/robalobadob/wordscramble/internal/game"
)

var ErrNotFound = errors.New("store: round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save adds or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Delete forgets a round. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many rounds are held.
	Len() int
}

type memory struct {
	rounds cache.Cache
}

// NewMemoryStore holds at most size rounds.
func NewMemoryStore(size int) (Store, error) {
	c, err := cache.NewLRU(size)
	if err != nil {
		return nil, err
	}
	return &memory{rounds: c}, nil
}

func (m *memory) Save(_ context.Context, r *game.Round) error {
	if r == nil {
		return errors.New("store: nil round")
	}
	m.rounds.Add(r.ID(), r)
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Round, error) {
	if v, ok := m.rounds.Get(id); ok {
		return v.(*game.Round), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(_ context.Context, id string) error {
	m.rounds.Delete(id)
	return nil
}

func (m *memory) Len() int { return m.rounds.Len() }
