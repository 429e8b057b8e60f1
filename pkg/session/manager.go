package session

import (
	"sync"
	"time"

	"bookreviews/pkg/generator"
)

const sessionIDLen = 24

// MemoryManager keeps sessions in process memory; they are lost on restart.
type MemoryManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryManager(ttl time.Duration) *MemoryManager {
	return &MemoryManager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (m *MemoryManager) Create(username, accessToken string) (*Session, error) {
	id, err := generator.RandomID(sessionIDLen)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &Session{
		ID:          id,
		Username:    username,
		AccessToken: accessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return sess, nil
}

func (m *MemoryManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemoryManager) Invalidate(id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
