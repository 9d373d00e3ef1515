package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live login flows in memory, keyed by flow ID, with sliding
// TTL eviction. Access is serialized by a mutex; each flow is driven by a
// single caller at a time by contract.
type Store struct {
	mu    sync.Mutex
	flows map[uuid.UUID]*storeEntry
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

type storeEntry struct {
	flow      *Flow
	expiresAt time.Time
}

// NewStore creates a flow store and starts its eviction loop.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	s := &Store{
		flows: make(map[uuid.UUID]*storeEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	go s.evictLoop()
	return s
}

// Put stores a flow and refreshes its TTL
func (s *Store) Put(f *Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flows[f.ID] = &storeEntry{
		flow:      f,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Get returns a live flow and slides its TTL. Expired flows are dropped.
func (s *Store) Get(id uuid.UUID) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.flows[id]
	if !ok {
		return nil, false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.flows, id)
		return nil, false
	}

	entry.expiresAt = s.now().Add(s.ttl)
	return entry.flow, true
}

// Delete removes a flow
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, id)
}

// Len reports the number of live flows
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flows)
}

// Close stops the eviction loop
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *Store) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.flows {
		if now.After(entry.expiresAt) {
			delete(s.flows, id)
		}
	}
}
