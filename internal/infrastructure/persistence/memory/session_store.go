// Package memory provides an in-process session store implementation
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/larderly/v2/internal/ports/outbound"
)

// sessionEntry holds one stored value and its expiry
type sessionEntry struct {
	value     []byte
	expiresAt time.Time
}

// SessionStore implements outbound.SessionStore with an in-process map.
// Suitable for single-instance deployments and tests; use the Redis store
// when state must survive restarts or be shared.
type SessionStore struct {
	data  map[string]sessionEntry
	mutex sync.RWMutex
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() outbound.SessionStore {
	store := &SessionStore{
		data: make(map[string]sessionEntry),
	}

	go store.cleanup()

	return store
}

// Set stores a value with TTL. A zero TTL falls back to one hour.
func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if ttl <= 0 {
		ttl = time.Hour
	}

	s.data[key] = sessionEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Get retrieves a value; nil when absent or expired
func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	entry, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.data, key)
		s.mutex.Unlock()
		return nil, nil
	}

	return entry.value, nil
}

// Delete removes a key
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// cleanup removes expired entries
func (s *SessionStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.data {
			if now.After(entry.expiresAt) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}
