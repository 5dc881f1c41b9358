package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/shop_discovery/internal/cache/session"
	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/internal/projector"
)

// Проверка, что SearchService удовлетворяет интерфейсу ports.SearchService.
var _ ports.SearchService = (*SearchService)(nil)

// SearchService — поисковый оркестратор: нормализация запроса,
// кэш разрешённых результатов (fetch-once на сессию), проецирование
// страницы. Публикуемое состояние защищено мьютексом; кэш переживает
// и Clear, и сбои.
type SearchService struct {
	resolver ports.Resolver
	cache    ports.ResultCache
	proj     *projector.Projector
	log      ports.Logger

	mu   sync.Mutex
	view domain.SearchView
}

// NewSearchService — DI-конструктор.
func NewSearchService(
	resolver ports.Resolver,
	cache ports.ResultCache,
	proj *projector.Projector,
	log ports.Logger,
) *SearchService {
	return &SearchService{
		resolver: resolver,
		cache:    cache,
		proj:     proj,
		log:      log,
		view:     domain.EmptySearchView(),
	}
}

// Search — выполнить поиск и опубликовать результат.
// Пустой (после нормализации) запрос — no-op: возвращается текущее
// состояние без изменений. Попадание в кэш не проходит фазу loading.
// Сбой разрешения публикует пустую выдачу с текстом ошибки и НЕ пишет
// в кэш — повтор того же запроса снова пойдёт в сеть.
func (s *SearchService) Search(ctx context.Context, rawQuery string, page int, sort *domain.SortSpec) domain.SearchView {
	key := domain.NormalizeQuery(rawQuery)
	if key == "" {
		return s.Snapshot()
	}

	if entry, ok := s.cache.Get(session.NamespaceSearch, key); ok {
		return s.publishSuccess(rawQuery, entry.Items, page, sort)
	}

	s.publishLoading(rawQuery)

	items, err := s.resolver.ResolveForQuery(ctx, key)
	if err != nil {
		s.log.Errorf(ctx, "search resolution failed query=%q err=%v", key, err)
		return s.publishFailure(rawQuery, "Failed to fetch search results. Please try again.")
	}

	s.cache.Put(ctx, session.NamespaceSearch, key, domain.CacheEntry{
		Items:     items,
		CreatedAt: time.Now().UTC(),
	})
	return s.publishSuccess(rawQuery, items, page, sort)
}

// Clear — сброс опубликованного состояния к начальному; кэш не трогается.
func (s *SearchService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = domain.EmptySearchView()
}

// Snapshot — копия текущего опубликованного состояния.
func (s *SearchService) Snapshot() domain.SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneView(s.view)
}

func (s *SearchService) publishLoading(rawQuery string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = domain.SearchView{
		Results:    []domain.Product{},
		Query:      rawQuery,
		Status:     domain.SearchLoading,
		Pagination: domain.DefaultPagination(),
	}
}

func (s *SearchService) publishSuccess(rawQuery string, items []domain.Product, page int, sort *domain.SortSpec) domain.SearchView {
	projected := s.proj.Project(items, page, sort)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = domain.SearchView{
		Results:    projected.Items,
		Query:      rawQuery,
		Status:     domain.SearchIdle,
		Pagination: projected.Pagination,
	}
	return cloneView(s.view)
}

func (s *SearchService) publishFailure(rawQuery, msg string) domain.SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = domain.SearchView{
		Results:    []domain.Product{},
		Query:      rawQuery,
		Status:     domain.SearchIdle,
		Error:      msg,
		Pagination: domain.DefaultPagination(),
	}
	return cloneView(s.view)
}

func cloneView(v domain.SearchView) domain.SearchView {
	out := v
	out.Results = append([]domain.Product(nil), v.Results...)
	if out.Results == nil {
		out.Results = []domain.Product{}
	}
	return out
}
