package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ermek/bilim/internal/results"
)

// ChangedMsg is broadcast on the UI event loop after a result lands, so
// anything displaying stats can reload.
type ChangedMsg struct{}

// Service keeps a cached rollup per user, recomputed from the result store
// whenever a new result lands. It satisfies the recorder's refresh hook, so
// finishing an exercise refreshes the cache before the stats screen opens.
type Service struct {
	store results.Store
	now   func() time.Time

	mu    sync.RWMutex
	cache map[string]UserStats
}

// NewService wraps a result store.
func NewService(store results.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		cache: make(map[string]UserStats),
	}
}

// Recompute reloads the user's history and rebuilds the cached rollup.
func (s *Service) Recompute(ctx context.Context, userID string) error {
	history, err := s.store.LoadResults(ctx, userID)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	s.mu.Lock()
	s.cache[userID] = Compute(history, s.now())
	s.mu.Unlock()
	return nil
}

// ForUser returns the user's rollup, computing it on first access.
func (s *Service) ForUser(ctx context.Context, userID string) (UserStats, error) {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if err := s.Recompute(ctx, userID); err != nil {
		return UserStats{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[userID], nil
}
