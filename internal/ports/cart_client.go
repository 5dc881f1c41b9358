package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// CartClient — внешний интерфейс мутации корзины (§6).
// Request/response с единственной попыткой; ретраи — не наша забота.
type CartClient interface {
	// Lines — текущие позиции корзины.
	Lines(ctx context.Context) ([]domain.CartLine, error)

	// ReplaceProduct — заменить продукт позиции на newProductID.
	ReplaceProduct(ctx context.Context, lineID, newProductID string) (*domain.CartLine, error)

	// UpdateQuantity — обновить количество позиции.
	UpdateQuantity(ctx context.Context, lineID string, quantity int) (*domain.CartLine, error)
}
