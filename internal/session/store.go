package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound cobre token desconhecido e token expirado: para o
// chamador a sessão simplesmente não existe mais.
var ErrNotFound = errors.New("session not found")

type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store guarda as sessões do admin. A implementação em memória atende
// uma instância só; para rodar com réplicas, use o RedisStore.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// ===============================
// In-memory store
// ===============================

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (m *MemoryStore) Put(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}

	// poda preguiçosa: sessão expirada é removida no acesso
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return nil, ErrNotFound
	}

	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Compile-time check
var _ Store = (*MemoryStore)(nil)
