package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	inErrors "github.com/farmasystem/pos/internal/errors"
)

// Session is one terminal's active sale: its own cart and checkout,
// never shared with another session.
type Session struct {
	ID       uuid.UUID
	Cart     *Cart
	Checkout *Checkout
}

type Sessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: map[uuid.UUID]*Session{}}
}

func (s *Sessions) Create() *Session {
	session := &Session{
		ID:       uuid.New(),
		Cart:     NewCart(),
		Checkout: NewCheckout(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

func (s *Sessions) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("sessionId=%s: %w", id.String(), inErrors.ErrSessionNotFound)
	}
	return session, nil
}

func (s *Sessions) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
