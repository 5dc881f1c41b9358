package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// CatalogClient — клиент каталога: разрешает идентификатор в полную запись.
type CatalogClient interface {
	// ProductByID — (product, nil) при успехе; ошибка оборачивает
	// domain.ErrLookupFailed при not-found/сбое.
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
}
