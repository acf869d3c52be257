package admin

import (
	"slices"
	"sync"
)

// Sessions is the set of nicks currently authorized to issue remote
// commands. Authorization is bound to the live nick, not to the login
// username: a rename carries it over, a quit drops it, and a later
// reconnect under the same nick starts unauthenticated. Nothing here is
// persisted.
type Sessions struct {
	mu     sync.RWMutex
	admins []string
}

func NewSessions() *Sessions {
	return &Sessions{}
}

func (s *Sessions) IsAuthenticated(nick string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.admins, nick)
}

// Authenticate is idempotent: an already-present nick is left untouched.
func (s *Sessions) Authenticate(nick string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.admins, nick) {
		return
	}
	s.admins = append(s.admins, nick)
}

// Deauthenticate reports whether the nick was actually removed.
func (s *Sessions) Deauthenticate(nick string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.admins, nick)
	if idx == -1 {
		return false
	}
	s.admins = slices.Delete(s.admins, idx, idx+1)

	return true
}

// Rename replaces oldNick with newNick in place. No-op when oldNick is
// not a member; collapses to a removal when newNick already is.
func (s *Sessions) Rename(oldNick, newNick string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.admins, oldNick)
	if idx == -1 {
		return
	}

	if slices.Contains(s.admins, newNick) {
		s.admins = slices.Delete(s.admins, idx, idx+1)
		return
	}
	s.admins[idx] = newNick
}

func (s *Sessions) Remove(nick string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := slices.Index(s.admins, nick); idx != -1 {
		s.admins = slices.Delete(s.admins, idx, idx+1)
	}
}

func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins)
}
