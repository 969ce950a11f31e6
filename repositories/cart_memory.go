package repositories

import (
	"context"
	"sync"

	"school-store/models"
)

// MemoryCartStore is the fallback cart store for runs without Redis,
// and the store the tests use.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[int][]models.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[int][]models.CartLine)}
}

func (s *MemoryCartStore) Get(ctx context.Context, userID int) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]models.CartLine, len(s.carts[userID]))
	copy(lines, s.carts[userID])
	return lines, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, userID int, lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]models.CartLine, len(lines))
	copy(stored, lines)
	s.carts[userID] = stored
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
