package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что SessionStore удовлетворяет интерфейсу SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore — долговременное сессионное KV на Postgres (pgxpool).
// Строки скоупятся session id: перезапуск процесса с тем же id
// продолжает сессию, новый id начинает пустую.
type SessionStore struct {
	pool      *pgxpool.Pool
	sessionID string
}

// NewSessionStore — конструктор SessionStore.
func NewSessionStore(pool *pgxpool.Pool, sessionID string) *SessionStore {
	return &SessionStore{pool: pool, sessionID: sessionID}
}

// Read — значение по ключу; ("", false, nil) при отсутствии.
func (s *SessionStore) Read(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.pool.QueryRow(ctx, `
		SELECT payload FROM session_cache
		WHERE session_id = $1 AND cache_key = $2
	`, s.sessionID, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

// Write — идемпотентный upsert значения по ключу.
func (s *SessionStore) Write(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO session_cache (session_id, cache_key, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, s.sessionID, key, value)
	return err
}
