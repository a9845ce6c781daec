package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session binds a browser token to an authenticated username.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// SessionStore is an in-memory token -> session map with TTL. Entries are
// expired lazily on lookup; there is no background sweeper. Sessions do not
// survive process restarts.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create issues a new session for username and returns it.
func (s *SessionStore) Create(username string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.sessions[sess.Token] = sess
	return sess
}

// Lookup returns the session for token, or false if the token is unknown
// or expired. Expired entries are removed on the way out.
func (s *SessionStore) Lookup(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	return sess, true
}

// Destroy removes the session for token. Destroying an unknown token is a
// no-op.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of live entries, counting not-yet-collected
// expired sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
