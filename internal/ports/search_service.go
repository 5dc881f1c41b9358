package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// SearchService — поисковый оркестратор для транспортного слоя.
type SearchService interface {
	// Search — пустой запрос является no-op (текущее состояние не меняется).
	Search(ctx context.Context, rawQuery string, page int, sort *domain.SortSpec) domain.SearchView

	// Clear — сброс опубликованного состояния; кэш не очищается.
	Clear()

	// Snapshot — текущее опубликованное состояние.
	Snapshot() domain.SearchView
}

// HomeService — рекомендации главной страницы (fetch-once на сессию).
type HomeService interface {
	EnsureFetched(ctx context.Context) []domain.Product
	Recommended() []domain.Product
}

// CartService — рекомендации по позициям корзины, замена и агрегаты.
type CartService interface {
	// SyncLines — вызвать EnsureFetched для каждой текущей позиции.
	SyncLines(ctx context.Context, lines []domain.CartLine)

	// EnsureFetched — идемпотентный запуск подбора для позиции
	// (не чаще одного раза за сессию).
	EnsureFetched(ctx context.Context, line domain.CartLine, cartProductIDs map[string]struct{})

	// StateFor — состояние рекомендаций позиции.
	StateFor(lineID string) (domain.LineRecommendations, bool)

	// Replace — заменить продукт позиции на рекомендованный.
	Replace(ctx context.Context, lineID, targetProductID string) error

	// Summary — позиции корзины + агрегаты.
	Summary(ctx context.Context) ([]domain.CartLine, domain.CartTotals, error)

	// UpdateQuantity — прокси к корзинному сервису (qty прижимается к >= 1).
	UpdateQuantity(ctx context.Context, lineID string, quantity int) (*domain.CartLine, error)
}
