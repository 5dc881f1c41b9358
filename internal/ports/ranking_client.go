package ports

import "context"

// RankingClient — клиент ranking-сервиса. Отдаёт упорядоченные списки
// непрозрачных идентификаторов; деталей каталога не знает.
type RankingClient interface {
	// RecommendForQuery — подбор по свободному тексту.
	RecommendForQuery(ctx context.Context, query string) ([]string, error)

	// RecommendForItem — подбор по одному товару (позиция корзины).
	RecommendForItem(ctx context.Context, productID string) ([]string, error)

	// RecommendForHome — подбор для главной страницы.
	RecommendForHome(ctx context.Context) ([]string, error)
}
