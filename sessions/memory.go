package sessions

import (
	"context"
	"sync"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
)

// MemoryStore keeps sessions in process, for tests and single-instance runs without MongoDB.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]Session{}}
}

func (m *MemoryStore) Insert(ctx context.Context, session Session) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.Token] = session
	return nil
}

func (m *MemoryStore) GetByToken(ctx context.Context, token string) (Session, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[token]
	if !ok {
		return Session{}, serverError.UnauthorizedError.New()
	}

	return session, nil
}

func (m *MemoryStore) Delete(ctx context.Context, token string) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}
