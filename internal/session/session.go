// Package session holds transient per-user authentication and display
// state. Every interactive browser session gets its own independent
// Session instance; nothing here is persisted, and all of it is lost on
// restart.
package session

import (
	"sync"

	"expensehero/internal/core"
)

// Session is the mutable context for one interactive user. It moves
// between two states: Anonymous and Authenticated(email, currency).
// Invariant: the email is non-empty exactly when authenticated.
type Session struct {
	mu            sync.Mutex
	authenticated bool
	email         string
	currency      core.Currency
}

// New returns a session in the Anonymous state.
func New() *Session {
	return &Session{currency: core.DefaultCurrency}
}

// Login transitions to Authenticated, mirroring the account's email and
// currency preference into the session.
func (s *Session) Login(acc core.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.email = acc.Email
	s.currency = acc.Currency
}

// Logout resets all fields to their unauthenticated initial values.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.email = ""
	s.currency = core.DefaultCurrency
}

// UpdateCurrency mutates the display currency only. The caller persists
// the change through the credential store first, then updates the
// session, so a persistence failure never leaves the session claiming a
// currency the store never recorded.
func (s *Session) UpdateCurrency(cur core.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return
	}
	s.currency = cur
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Email returns the authenticated account's email, empty when anonymous.
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Currency returns the current display currency.
func (s *Session) Currency() core.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}
