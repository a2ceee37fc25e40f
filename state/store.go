package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps conversation states keyed by user id. The in-memory
// implementation below can be swapped for a durable one without touching
// dispatch logic.
type Store interface {
	Get(userID int64) (State, bool)
	Put(userID int64, st State)
	Clear(userID int64)
}

type entry struct {
	st        State
	createdAt time.Time
}

// MemoryStore is a mutex-guarded map with TTL expiry. Entries left behind by
// abandoned flows are reaped by a background janitor.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]entry
	ttl     time.Duration
}

// NewMemoryStore creates a store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[int64]entry),
		ttl:     ttl,
	}
	go s.startJanitor()
	return s
}

// Get returns the user's current state. Expired entries count as absent.
func (s *MemoryStore) Get(userID int64) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.entries[userID]
	if !found || time.Since(e.createdAt) > s.ttl {
		return State{}, false
	}
	return e.st, true
}

// Put replaces the user's state. A fresh correlation token is assigned when
// the state doesn't carry one yet.
func (s *MemoryStore) Put(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Token == "" {
		st.Token = uuid.New().String()
	}
	s.entries[userID] = entry{st: st, createdAt: time.Now()}
}

// Clear removes the user's state.
func (s *MemoryStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
}

// startJanitor runs a background process to clean up expired entries.
func (s *MemoryStore) startJanitor() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for id, e := range s.entries {
			if time.Since(e.createdAt) > s.ttl {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
