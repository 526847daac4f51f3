// Package session provides an in-memory store for browser login sessions.
//
// A session is created after a successful OIDC callback and referenced by an
// opaque cookie token. Sessions expire after a TTL and are swept by a
// background goroutine; Stop shuts the sweeper down.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the identity established by a completed login
type Session struct {
	Sub       string
	IDToken   string
	CreatedAt time.Time
	expiresAt time.Time
}

// Config holds session store settings
type Config struct {
	TTL     time.Duration // How long a session stays valid (default 24h)
	Cleanup time.Duration // Sweep interval (default 1h)
}

// Store is an in-memory session store
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopChan chan struct{}
}

// NewStore creates a session store and starts its sweeper
func NewStore(cfg Config) *Store {
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = time.Hour
	}

	store := &Store{
		sessions: make(map[string]*Session),
		ttl:      cfg.TTL,
		stopChan: make(chan struct{}),
	}

	go store.cleanupLoop(cfg.Cleanup)

	return store
}

// Stop stops the sweeper goroutine
func (s *Store) Stop() {
	close(s.stopChan)
}

// Create stores a new session and returns its opaque token
func (s *Store) Create(sub, idToken string) string {
	token := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	s.sessions[token] = &Session{
		Sub:       sub,
		IDToken:   idToken,
		CreatedAt: now,
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return token
}

// Get returns the session for a token, or nil when the token is unknown
// or expired
func (s *Store) Get(token string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.expiresAt) {
		return nil
	}
	return sess
}

// Delete removes a session
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, sess := range s.sessions {
		if sess.expiresAt.Before(now) {
			delete(s.sessions, token)
		}
	}
}
