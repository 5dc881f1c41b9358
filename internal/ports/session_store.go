package ports

import "context"

// SessionStore — долговременное KV-хранилище, ограниченное одной сессией.
// Req-к реализации: Read при отсутствии ключа возвращает ("", false, nil);
// ошибки записи вызывающая сторона глотает (in-memory состояние главнее).
type SessionStore interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
}
