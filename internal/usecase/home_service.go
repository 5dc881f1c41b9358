package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/shop_discovery/internal/cache/session"
	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
)

// Проверка, что HomeService удовлетворяет интерфейсу ports.HomeService.
var _ ports.HomeService = (*HomeService)(nil)

// homeCacheKey — у главной страницы один безпараметрный набор рекомендаций.
const homeCacheKey = "home"

// HomeService — рекомендации главной страницы. Fetch-once на сессию:
// флаг attempted взводится даже при сбое — повторных походов в сеть
// в рамках сессии не будет, пустая выдача остаётся пустой.
type HomeService struct {
	resolver ports.Resolver
	cache    ports.ResultCache
	log      ports.Logger

	mu        sync.Mutex
	attempted bool
	items     []domain.Product
}

// NewHomeService — DI-конструктор.
func NewHomeService(resolver ports.Resolver, cache ports.ResultCache, log ports.Logger) *HomeService {
	return &HomeService{resolver: resolver, cache: cache, log: log}
}

// EnsureFetched — идемпотентная загрузка рекомендаций главной.
// Гидратированная запись кэша считается уже выполненной загрузкой.
func (s *HomeService) EnsureFetched(ctx context.Context) []domain.Product {
	s.mu.Lock()
	if s.attempted {
		defer s.mu.Unlock()
		return append([]domain.Product(nil), s.items...)
	}
	s.attempted = true
	s.mu.Unlock()

	if entry, ok := s.cache.Get(session.NamespaceHome, homeCacheKey); ok {
		return s.store(entry.Items)
	}

	items, err := s.resolver.ResolveForHome(ctx)
	if err != nil {
		s.log.Errorf(ctx, "home recommendations failed err=%v", err)
		return s.store(nil)
	}

	s.cache.Put(ctx, session.NamespaceHome, homeCacheKey, domain.CacheEntry{
		Items:     items,
		CreatedAt: time.Now().UTC(),
	})
	return s.store(items)
}

// Recommended — текущий набор без побочных эффектов.
func (s *HomeService) Recommended() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.items...)
}

func (s *HomeService) store(items []domain.Product) []domain.Product {
	if items == nil {
		items = []domain.Product{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return append([]domain.Product(nil), items...)
}
