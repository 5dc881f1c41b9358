package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/shop_discovery/internal/ports"
)

// Проверка, что SessionStore удовлетворяет интерфейсу SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore — in-memory реализация долговременного сессионного KV.
// Используется в тестах и при пустом DSN Postgres: сессия тогда живёт
// ровно столько, сколько процесс.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewSessionStore — конструктор.
func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]string)}
}

func (s *SessionStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *SessionStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
