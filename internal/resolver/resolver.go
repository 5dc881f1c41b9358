package resolver

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/pkg/metrics"
)

// Проверка, что Resolver удовлетворяет интерфейсу ports.Resolver.
var _ ports.Resolver = (*Resolver)(nil)

// Resolver — двухфазное разрешение: ranking отдаёт упорядоченные
// идентификаторы, каталог разворачивает их в записи. Параллельные
// запросы к каталогу пишут в слайс по своим индексам, затем срез
// уплотняется — порядок ранжирования сохраняется, дыры от сбоев
// выпадают без ошибки.
type Resolver struct {
	ranking ports.RankingClient
	catalog ports.CatalogClient
	log     ports.Logger
}

// NewResolver — конструктор.
func NewResolver(ranking ports.RankingClient, catalog ports.CatalogClient, log ports.Logger) *Resolver {
	return &Resolver{ranking: ranking, catalog: catalog, log: log}
}

// ResolveForQuery — записи для поискового запроса.
func (r *Resolver) ResolveForQuery(ctx context.Context, query string) ([]domain.Product, error) {
	return r.resolve(ctx, "query", func() ([]string, error) {
		return r.ranking.RecommendForQuery(ctx, query)
	})
}

// ResolveForItem — записи для товарной позиции корзины.
func (r *Resolver) ResolveForItem(ctx context.Context, productID string) ([]domain.Product, error) {
	return r.resolve(ctx, "item", func() ([]string, error) {
		return r.ranking.RecommendForItem(ctx, productID)
	})
}

// ResolveForHome — записи для главной страницы.
func (r *Resolver) ResolveForHome(ctx context.Context) ([]domain.Product, error) {
	return r.resolve(ctx, "home", func() ([]string, error) {
		return r.ranking.RecommendForHome(ctx)
	})
}

func (r *Resolver) resolve(ctx context.Context, endpoint string, rank func() ([]string, error)) ([]domain.Product, error) {
	ids, err := rank()
	if err != nil {
		metrics.ResolverBatches.WithLabelValues(endpoint, "failed").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrResolutionFailed, err)
	}
	metrics.ResolverBatches.WithLabelValues(endpoint, "ok").Inc()

	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	// Слоты адресуются индексом — гонок по записи нет.
	slots := make([]*domain.Product, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			p, err := r.catalog.ProductByID(ctx, id)
			if err != nil {
				r.log.Warnf(ctx, "resolver: lookup dropped id=%s: %v", id, err)
				metrics.ResolverLookups.WithLabelValues("dropped").Inc()
				return
			}
			metrics.ResolverLookups.WithLabelValues("resolved").Inc()
			slots[i] = p
		}(i, id)
	}
	wg.Wait()

	products := make([]domain.Product, 0, len(ids))
	for _, p := range slots {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}
