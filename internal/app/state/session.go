package state

import (
	"sync"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// Listener is notified with a copy of the snapshot after every change; nil means logged out
type Listener func(user *models.User)

// SessionStore holds the snapshot of the authenticated user. The last write wins.
type SessionStore struct {
	mu        sync.RWMutex
	user      *models.User
	listeners map[int]Listener
	nextID    int
}

// NewSessionStore creates an empty SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{listeners: make(map[int]Listener)}
}

// Save replaces the snapshot wholesale
func (s *SessionStore) Save(user *models.User) {
	s.mu.Lock()
	s.user = user.Clone()
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a copy of the current user, or nil when logged out
func (s *SessionStore) Snapshot() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// Loaded reports whether a user snapshot is present
func (s *SessionStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// UserID returns the id of the current user, or "" when logged out
func (s *SessionStore) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// AddCommunity appends a membership to the loaded snapshot
func (s *SessionStore) AddCommunity(community models.UserCommunity) error {
	return s.mutate("addCommunity", func(u *models.User) {
		u.Communities = append(u.Communities, community)
	})
}

// AddFriend appends a friend to the loaded snapshot
func (s *SessionStore) AddFriend(friend models.Friend) error {
	return s.mutate("addFriend", func(u *models.User) {
		u.Friends = append(u.Friends, friend)
	})
}

// RemoveRequest drops every incoming request sent by senderID
func (s *SessionStore) RemoveRequest(senderID string) error {
	return s.mutate("removeRequest", func(u *models.User) {
		kept := u.Requests[:0]
		for _, r := range u.Requests {
			if r.SenderID != senderID {
				kept = append(kept, r)
			}
		}
		u.Requests = kept
	})
}

// Logout clears the snapshot. Persisted credentials are cleared by the session manager.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers l and returns a function that removes it
func (s *SessionStore) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate applies fn to the loaded snapshot or fails when no user is loaded
func (s *SessionStore) mutate(op string, fn func(u *models.User)) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return apperrors.NewStateError(op, apperrors.ErrSessionNotLoaded, apperrors.MsgNotLoggedIn)
	}
	fn(s.user)
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *SessionStore) notify() {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	snapshot := s.user.Clone()
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snapshot.Clone())
	}
}
