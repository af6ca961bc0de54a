// Package cache holds the idempotency-key stores used by the HTTP command
// boundary: Redis for shared deployments, process memory otherwise.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/erp/installment/internal/domain/shared"
)

const defaultSweepInterval = 5 * time.Minute

// MemoryIdempotencyStore keeps keys in a map guarded by a mutex.
// Keys are not shared between processes.
type MemoryIdempotencyStore struct {
	mu        sync.Mutex
	expiry    map[string]time.Time
	now       func() time.Time
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryIdempotencyStore creates a store and starts its expiry sweeper.
// A non-positive interval uses the default of five minutes.
func NewMemoryIdempotencyStore(sweepInterval time.Duration) *MemoryIdempotencyStore {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	s := &MemoryIdempotencyStore{
		expiry: make(map[string]time.Time),
		now:    time.Now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.sweepLoop(sweepInterval)
	return s
}

// MarkProcessed records key until ttl elapses. It returns false if the key
// is already recorded and has not expired.
func (s *MemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.expiry[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.expiry[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether key is recorded and unexpired
func (s *MemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.expiry[key]
	return ok && s.now().Before(exp), nil
}

// Release forgets key
func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.expiry, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *MemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// Len returns the number of recorded keys, expired ones included
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expiry)
}

func (s *MemoryIdempotencyStore) sweepLoop(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryIdempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, exp := range s.expiry {
		if !now.Before(exp) {
			delete(s.expiry, key)
		}
	}
}

var _ shared.IdempotencyStore = (*MemoryIdempotencyStore)(nil)
