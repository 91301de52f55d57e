package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultSessionTTL = 24 * time.Hour

// Manager owns the cart stores for all live sessions. It is constructed once
// and injected; nothing in the codebase reaches for a package-level cart.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		ttl:      defaultSessionTTL,
		now:      time.Now,
	}
}

// Acquire returns the store for the given session id, creating the session
// when the id is unknown or empty. The returned id is the one callers must
// present on subsequent requests.
func (m *Manager) Acquire(sessionID string) (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()

	if sessionID != "" {
		if sess, ok := m.sessions[sessionID]; ok {
			sess.lastSeen = m.now()
			return sessionID, sess.store
		}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess := &session{store: NewStore(), lastSeen: m.now()}
	m.sessions[sessionID] = sess
	return sessionID, sess.store
}

// Drop forgets a session entirely, e.g. after checkout hand-off.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// evictExpired must be called with the lock held.
func (m *Manager) evictExpired() {
	cutoff := m.now().Add(-m.ttl)
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
