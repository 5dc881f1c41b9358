package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/pkg/metrics"
)

// Пространства имён сессионного кэша — два ключа долговременного
// хранилища (§6): полнотекстовый поиск и рекомендации главной.
const (
	NamespaceSearch = "searchRecsV1"
	NamespaceHome   = "homeRecsV1"
)

// Проверка, что ResultCache удовлетворяет интерфейсу ResultCache.
var _ ports.ResultCache = (*ResultCache)(nil)

// ResultCache — сессионный кэш результатов поверх долговременного KV.
// Источник истины — память; KV лишь зеркало на случай перезапуска
// процесса внутри той же сессии. Запись с пустым списком — полноценное
// попадание: ключ не перезапрашивается до конца сессии (fetch-once).
type ResultCache struct {
	store ports.SessionStore
	log   ports.Logger

	mu       sync.Mutex
	data     map[string]map[string]domain.CacheEntry
	hydrated bool
}

// NewResultCache — конструктор; кэш создаётся пустым, Hydrate — отдельно.
func NewResultCache(store ports.SessionStore, log ports.Logger) *ResultCache {
	return &ResultCache{
		store: store,
		log:   log,
		data: map[string]map[string]domain.CacheEntry{
			NamespaceSearch: {},
			NamespaceHome:   {},
		},
	}
}

// Hydrate — однократное восстановление обоих пространств имён из KV.
// Любая ошибка чтения или битый JSON → пустое пространство, без паники
// и без ошибки наружу.
func (c *ResultCache) Hydrate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hydrated {
		return
	}
	c.hydrated = true

	for _, ns := range []string{NamespaceSearch, NamespaceHome} {
		raw, found, err := c.store.Read(ctx, ns)
		if err != nil {
			c.log.Warnf(ctx, "session store read failed ns=%s err=%v (starting empty)", ns, err)
			continue
		}
		if !found {
			continue
		}
		var entries map[string]domain.CacheEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
			c.log.Warnf(ctx, "malformed cached payload ns=%s err=%v (starting empty)", ns, err)
			continue
		}
		c.data[ns] = entries
	}
	metrics.CacheSize.Set(float64(c.size()))
}

// Get — (entry, true) при попадании; возвращается копия.
func (c *ResultCache) Get(namespace, key string) (domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[namespace][key]
	if !ok {
		metrics.CacheOps.WithLabelValues(namespace, "miss").Inc()
		return domain.CacheEntry{}, false
	}
	metrics.CacheOps.WithLabelValues(namespace, "hit").Inc()
	return entry.Clone(), true
}

// Put — вставка/перезапись (копией) и немедленная персистенция всего
// пространства имён. Ошибка записи в KV глотается: память остаётся
// авторитетной до конца сессии.
func (c *ResultCache) Put(ctx context.Context, namespace, key string, entry domain.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns, ok := c.data[namespace]
	if !ok {
		ns = map[string]domain.CacheEntry{}
		c.data[namespace] = ns
	}
	ns[key] = entry.Clone()
	metrics.CacheOps.WithLabelValues(namespace, "put").Inc()
	metrics.CacheSize.Set(float64(c.size()))

	payload, err := json.Marshal(ns)
	if err != nil {
		metrics.CacheOps.WithLabelValues(namespace, "persist_failed").Inc()
		c.log.Warnf(ctx, "marshal cache ns=%s err=%v", namespace, err)
		return
	}
	if err := c.store.Write(ctx, namespace, string(payload)); err != nil {
		metrics.CacheOps.WithLabelValues(namespace, "persist_failed").Inc()
		c.log.Warnf(ctx, "session store write failed ns=%s err=%v (in-memory cache stays valid)", namespace, err)
	}
}

// size — суммарное число записей; вызывается под mu.
func (c *ResultCache) size() int {
	total := 0
	for _, ns := range c.data {
		total += len(ns)
	}
	return total
}
