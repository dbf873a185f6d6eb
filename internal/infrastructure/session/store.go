package session

import (
	"sync"
	"time"

	"news-dashboard/internal/infrastructure/metrics"

	"github.com/google/uuid"
)

// entry is one visitor's state with a sliding expiry.
type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Store provides thread-safe in-memory per-visitor state with a sliding TTL.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	ttl     time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store whose entries expire ttl after their last access,
// and starts the background sweep.
func NewStore[T any](ttl time.Duration) *Store[T] {
	s := newStore[T](ttl, time.Now)
	go s.cleanupLoop(time.Minute)
	return s
}

func newStore[T any](ttl time.Duration, now func() time.Time) *Store[T] {
	return &Store[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Create stores value under a new random session ID and returns the ID.
func (s *Store[T]) Create(value T) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.entries[id] = &entry[T]{value: value, expiresAt: s.now().Add(s.ttl)}
	n := len(s.entries)
	s.mu.Unlock()

	metrics.SetActiveSessions(n)
	return id
}

// Get returns the value for id and extends its expiry.
func (s *Store[T]) Get(id string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries[id]
	now := s.now()
	if !found || now.After(e.expiresAt) {
		return zero, false
	}
	e.expiresAt = now.Add(s.ttl)
	return e.value, true
}

// Delete removes id from the store.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	n := len(s.entries)
	s.mu.Unlock()

	metrics.SetActiveSessions(n)
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the background sweep.
func (s *Store[T]) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// cleanup removes expired entries.
func (s *Store[T]) cleanup() {
	s.mu.Lock()
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	n := len(s.entries)
	s.mu.Unlock()

	metrics.SetActiveSessions(n)
}

// cleanupLoop runs periodic cleanup of expired entries.
func (s *Store[T]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}
