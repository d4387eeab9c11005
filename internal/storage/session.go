package storage

import (
	"errors"
	"sync"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

// ErrSessionNotFound is returned when no session exists for a key.
var ErrSessionNotFound = errors.New("test session not found")

// SessionStorage provides in-memory storage for test sessions by key
// (a chat ID for the bot, a session UUID for the HTTP API).
// Access to a session goes through Update or View, which hold the storage
// lock for the whole callback so every session step is atomic.
type SessionStorage[K comparable] struct {
	mu       sync.Mutex
	sessions map[K]*entities.TestSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage[K comparable]() *SessionStorage[K] {
	return &SessionStorage[K]{
		sessions: make(map[K]*entities.TestSession),
	}
}

// Update runs fn on the session stored under key, creating a NotStarted
// session first if none exists.
func (s *SessionStorage[K]) Update(key K, fn func(*entities.TestSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		session = entities.NewTestSession()
		s.sessions[key] = session
	}

	return fn(session)
}

// View runs fn on an existing session.
func (s *SessionStorage[K]) View(key K, fn func(*entities.TestSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return ErrSessionNotFound
	}

	return fn(session)
}

// Delete removes the session stored under key.
func (s *SessionStorage[K]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}
