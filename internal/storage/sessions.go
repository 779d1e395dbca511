package storage

import (
	"sync"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// SessionStore provides in-memory storage for active quiz sessions keyed by
// (chat, user). It owns all session instances; callers never hold a session
// that was removed from the store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[entities.SessionKey]*entities.Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[entities.SessionKey]*entities.Session),
	}
}

// Create adds a new session for the given key. It fails with
// ErrQuizAlreadyActive when a session for that key already exists, which is
// what enforces the one-quiz-per-user-per-chat rule.
func (s *SessionStore) Create(key entities.SessionKey, userName string) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[key]; ok {
		return nil, entities.ErrQuizAlreadyActive
	}

	session := entities.NewSession(key, userName)
	s.sessions[key] = session
	return session, nil
}

// Get retrieves the session for a key, if any.
func (s *SessionStore) Get(key entities.SessionKey) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[key]
	return session, ok
}

// Remove deletes the session for a key. Removing an absent key is a no-op.
func (s *SessionStore) Remove(key entities.SessionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Len reports the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
