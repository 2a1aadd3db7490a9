package storage

import (
	"context"
	"sync"
)

// Store is the durable home of the one session credential. Implementations
// must be safe for concurrent use.
type Store interface {
	// Read reports the stored credential, or ok=false when none is
	// readable. It never fails: backend errors degrade to absent.
	Read(ctx context.Context) (credential string, ok bool)
	// Write replaces the stored credential. Fire-and-forget.
	Write(ctx context.Context, credential string)
	// Clear removes the stored credential. Idempotent.
	Clear(ctx context.Context)
}

// MemoryStore is an in-process [Store] for tests and examples.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	present    bool
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Read implements [Store].
func (s *MemoryStore) Read(context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, s.present
}

// Write implements [Store].
func (s *MemoryStore) Write(_ context.Context, credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	s.present = true
}

// Clear implements [Store].
func (s *MemoryStore) Clear(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.present = false
}
