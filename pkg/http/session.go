package http

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "feeder_session"

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

type Session struct {
	Token     string
	UserID    uint
	Username  string
	ExpiresAt time.Time
}

// SessionStore keeps admin sessions in memory: token -> session. The feeder
// is a single-admin local appliance, so sessions do not survive a restart.
type SessionStore struct {
	sessions map[string]Session
	mu       sync.Mutex
	ttl      time.Duration
	clock    func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		clock:    time.Now,
	}
}

func (s *SessionStore) Create(userID uint, username string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: s.clock().Add(s.ttl),
	}
	s.sessions[session.Token] = session
	return session
}

// Get returns the session for token, dropping it when expired.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if s.clock().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// TTLSeconds is the cookie max age matching the store expiry.
func (s *SessionStore) TTLSeconds() int {
	return int(s.ttl / time.Second)
}
