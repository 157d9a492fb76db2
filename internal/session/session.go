// Package session implements server-side cookie sessions. Tokens are opaque
// uuids mapped to user ids in memory; logging out or restarting the process
// invalidates them. Nothing is persisted.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on register/login.
const CookieName = "travel_session"

// Manager owns the token -> user id map.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]int64
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]int64)}
}

// Create opens a session for userID and returns its token.
func (m *Manager) Create(userID int64) string {
	token := uuid.New().String()
	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()
	return token
}

// Get resolves a token to the user id it was issued for.
func (m *Manager) Get(token string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.sessions[token]
	return userID, ok
}

// Destroy ends the session. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
