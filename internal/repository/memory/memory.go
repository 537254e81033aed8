package memory

import (
	"context"
	"sync"

	"fruitstand/internal/domain"
	"fruitstand/internal/repository"
)

// Store keeps the full demo data set in memory. One mutex guards both
// sequences so the item and user repositories always observe a single
// consistent state. Contents are recreated from seed data on every
// process start and never persisted.
type Store struct {
	mu    sync.RWMutex
	items []string
	users []domain.User
}

// NewStore returns a Store holding copies of the supplied items and users.
func NewStore(items []string, users []domain.User) *Store {
	return &Store{
		items: append([]string(nil), items...),
		users: append([]domain.User(nil), users...),
	}
}

// NewSeededStore returns a Store preloaded with the fixed demo data set.
func NewSeededStore() *Store {
	return NewStore(SeedItems(), SeedUsers())
}

// ListItems returns a copy of the ordered item sequence.
func (s *Store) ListItems(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.items...), nil
}

// AppendItem appends name to the item sequence and returns a copy of the
// updated sequence. Duplicates are allowed; insertion order is preserved.
func (s *Store) AppendItem(_ context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, name)
	return append([]string(nil), s.items...), nil
}

// CountItems returns the current number of items.
func (s *Store) CountItems(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// ListUsers returns a copy of the seeded user records.
func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...), nil
}

// CountUsers returns the number of seeded users.
func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

var (
	_ repository.ItemRepository = (*Store)(nil)
	_ repository.UserRepository = (*Store)(nil)
)
