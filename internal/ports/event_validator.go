package ports

import (
	"context"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
)

// EventValidator — валидация события изменения корзины до обработки.
type EventValidator interface {
	Validate(ctx context.Context, event *domain.CartUpdateEvent) error
}
