package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// ResultCache — сессионный кэш разрешённых результатов.
// Требования: потокобезопасность; возврат копий; запись с непустым и с
// пустым списком одинаково считается попаданием (fetch-once).
type ResultCache interface {
	// Hydrate — однократное восстановление из долговременного хранилища
	// при старте; битые данные → пустой кэш, без ошибки.
	Hydrate(ctx context.Context)

	// Get — (entry, true) при попадании, (zero, false) при промахе.
	Get(namespace, key string) (domain.CacheEntry, bool)

	// Put — вставка/перезапись + немедленная персистенция пространства имён;
	// ошибка персистенции глотается.
	Put(ctx context.Context, namespace, key string, entry domain.CacheEntry)
}
