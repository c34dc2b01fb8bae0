package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Session is the server-side state tied to one browser session.
// UserID is zero for anonymous sessions; Visits counts dashboard hits for
// the lifetime of the session.
type Session struct {
	ID     string `json:"-"`
	UserID uint   `json:"user_id"`
	Visits int    `json:"visits"`
}

// SessionStore keeps sessions in memory with TTL eviction. Expiration slides
// on every access, so a session lives as long as the browser keeps using it.
type SessionStore struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewSessionStore creates a session store with the given TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Create makes a new anonymous session with a random identifier.
func (s *SessionStore) Create() (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	sess := &Session{ID: id}
	s.store.Set(id, sess, s.ttl)
	return sess, nil
}

// Get returns the session for id, refreshing its expiration.
func (s *SessionStore) Get(id string) (*Session, bool) {
	v, found := s.store.Get(id)
	if !found {
		return nil, false
	}
	sess := v.(*Session)
	s.store.Set(id, sess, s.ttl)
	return sess, true
}

// Save persists the session back into the store.
func (s *SessionStore) Save(sess *Session) {
	s.store.Set(sess.ID, sess, s.ttl)
}

// Delete removes the session (logout).
func (s *SessionStore) Delete(id string) {
	s.store.Delete(id)
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var sessionStoreInstance *SessionStore

// InitSessionStore initializes the package-level session store
func InitSessionStore(ttl time.Duration) *SessionStore {
	sessionStoreInstance = NewSessionStore(ttl)
	return sessionStoreInstance
}

// GetSessionStore returns the initialized session store instance
func GetSessionStore() *SessionStore {
	return sessionStoreInstance
}

// SetSessionStore sets the session store instance (primarily for testing)
func SetSessionStore(s *SessionStore) {
	sessionStoreInstance = s
}
