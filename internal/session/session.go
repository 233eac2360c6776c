// Package session holds the per-process authentication state and the Gate
// that guards the detection commands behind it.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// State is the authentication state of a Session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the state of one interactive user. The identity is the raw
// identifier typed at login, username or email.
type Session struct {
	id string

	mu       sync.RWMutex
	state    State
	identity string
}

// New returns an anonymous session with a fresh random ID.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns the logged-in identifier, or "" when anonymous.
func (s *Session) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s *Session) authenticate(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Authenticated
	s.identity = identity
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
	s.identity = ""
}
