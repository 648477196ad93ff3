// Package session holds the signed-in identity of a client and notifies its views when it changes.
package session

import (
	"slices"
	"sync"

	"adresses/internal/domain/entity"
)

// Listener is called with the new identity, nil after sign-out.
type Listener func(identity *entity.Identity)

// Session is the explicit replacement of an ambient auth listener. It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	current   *entity.Session
	listeners map[uint64]Listener
	nextID    uint64
}

// New returns a signed-out session.
func New() *Session {
	return &Session{listeners: make(map[uint64]Listener)}
}

// Identity returns the signed-in identity, or nil.
func (s *Session) Identity() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}

	return s.current.Identity
}

// Token returns the bearer token of the signed-in identity, or an empty string.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}

	return s.current.Token
}

// SignedIn reports whether an identity is present.
func (s *Session) SignedIn() bool {
	return s.Identity() != nil
}

// Start installs a new session, or clears it when next is nil, and notifies listeners.
func (s *Session) Start(next *entity.Session) {
	s.mu.Lock()
	if next != nil && next.Identity == nil {
		next = nil
	}
	s.current = next
	s.mu.Unlock()

	s.notify()
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.Start(nil)
}

// UpdateIdentity replaces the profile of the signed-in identity and keeps its token.
// It does nothing when signed out or when identity belongs to another uid.
func (s *Session) UpdateIdentity(identity *entity.Identity) {
	s.mu.Lock()
	if s.current == nil || identity == nil || s.current.Identity.UID != identity.UID {
		s.mu.Unlock()

		return
	}
	s.current = &entity.Session{Identity: identity, Token: s.current.Token}
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn for identity changes. The returned function unsubscribes and may be called more than once.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// notify calls the listeners in subscription order, outside the lock so they may read the session.
func (s *Session) notify() {
	s.mu.RLock()
	var identity *entity.Identity
	if s.current != nil {
		identity = s.current.Identity
	}
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(identity)
	}
}
