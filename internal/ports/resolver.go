package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// Resolver — разрешение ранжированных идентификаторов в записи каталога.
// Порядок ranking-сервиса сохраняется; неразрешившиеся идентификаторы
// выпадают молча; сбой самого ranking-сервиса → domain.ErrResolutionFailed.
type Resolver interface {
	ResolveForQuery(ctx context.Context, query string) ([]domain.Product, error)
	ResolveForItem(ctx context.Context, productID string) ([]domain.Product, error)
	ResolveForHome(ctx context.Context) ([]domain.Product, error)
}
