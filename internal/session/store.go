// Package session keeps the live editing sessions of the service in memory.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/form"
)

var ErrNotFound = errors.New("session not found")

// Factory builds the controller for a new session.
type Factory func(id string) *form.Controller

// Store is a registry of controllers keyed by session id. Nothing is
// persisted; a restart drops every session.
type Store struct {
	newController Factory
	log           *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*form.Controller
}

func NewStore(f Factory, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{newController: f, log: log, sessions: map[string]*form.Controller{}}
}

// Create registers a new session and returns its id.
func (s *Store) Create() (string, *form.Controller) {
	id := uuid.NewString()
	c := s.newController(id)

	s.mu.Lock()
	s.sessions[id] = c
	n := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug("session created", zap.String("session", id), zap.Int("active", n))
	return id, c
}

func (s *Store) Get(id string) (*form.Controller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Delete removes a session and waits for its background work.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	c, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	c.Close()
	s.log.Debug("session deleted", zap.String("session", id))
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CloseAll closes and forgets every session. Used on shutdown.
func (s *Store) CloseAll() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = map[string]*form.Controller{}
	s.mu.Unlock()
	for _, c := range all {
		c.Close()
	}
}
