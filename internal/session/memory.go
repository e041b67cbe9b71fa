package session

import (
	"context"
	"sync"

	"core/internal/dialog"
)

// MemoryStore is the default in-process store for single-instance
// deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*dialog.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*dialog.Session),
	}
}

// Get returns the session for the conversation, or (nil, nil) if unknown.
func (s *MemoryStore) Get(_ context.Context, conversationID string) (*dialog.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[conversationID], nil
}

// Save stores the session under its conversation id.
func (s *MemoryStore) Save(_ context.Context, sess *dialog.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Delete drops the session for the conversation.
func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, conversationID)
	return nil
}
