// Package session holds the single authoritative copy of the bearer token.
// Components receive the Session object explicitly instead of re-reading
// storage, and subscribe to flips between public and admin mode.
package session

import "sync"

// TokenStore persists the token across runs.
type TokenStore interface {
	Token() string
	SaveToken(token string) error
	ClearToken() error
}

// Session is safe for use from the UI goroutine and command goroutines.
type Session struct {
	mu       sync.RWMutex
	token    string
	store    TokenStore
	onChange []func(authenticated bool)
}

// New loads any persisted token from store.
func New(store TokenStore) *Session {
	s := &Session{store: store}
	if store != nil {
		s.token = store.Token()
	}
	return s
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present. Its mere presence is
// what flips the application into admin mode.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores a freshly issued token and notifies subscribers.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	store := s.store
	s.mu.Unlock()
	if store != nil {
		if err := store.SaveToken(token); err != nil {
			return err
		}
	}
	s.notify(token != "")
	return nil
}

// Clear drops the token locally. No backend call is made: the server never
// learns about logout.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	store := s.store
	s.mu.Unlock()
	if store != nil {
		if err := store.ClearToken(); err != nil {
			return err
		}
	}
	s.notify(false)
	return nil
}

// OnChange registers a callback invoked after every token change.
func (s *Session) OnChange(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Session) notify(authenticated bool) {
	s.mu.RLock()
	handlers := append([]func(bool){}, s.onChange...)
	s.mu.RUnlock()
	for _, fn := range handlers {
		fn(authenticated)
	}
}
