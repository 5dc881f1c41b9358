package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
)

// Проверка, что EventValidator удовлетворяет интерфейсу EventValidator.
var _ ports.EventValidator = (*EventValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка валидации события.
// Консьюмер по ней отличает «яд» (коммит и пропуск) от временного сбоя.
var ErrInvalidEvent = errors.New("cart update event validation failed")

// EventValidator — валидация событий изменения корзины.
type EventValidator struct{}

// NewEventValidator — конструктор EventValidator.
func NewEventValidator() *EventValidator { return &EventValidator{} }

// Validate — проверяет корректность полей события.
// Возвращает ErrInvalidEvent (с обёрнутой причиной) при любой проблеме.
func (v *EventValidator) Validate(_ context.Context, event *domain.CartUpdateEvent) error {
	if event == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if event.CartID == "" {
		return fmt.Errorf("%w: cart_id обязателен", ErrInvalidEvent)
	}
	seen := make(map[string]struct{}, len(event.Lines))
	for i := range event.Lines {
		line := &event.Lines[i]
		if line.ID == "" {
			return fmt.Errorf("%w: lines[%d].id обязателен", ErrInvalidEvent, i)
		}
		if line.ProductID == "" {
			return fmt.Errorf("%w: lines[%d].product_id обязателен", ErrInvalidEvent, i)
		}
		if line.Quantity < 0 {
			return fmt.Errorf("%w: lines[%d].quantity не может быть отрицательным", ErrInvalidEvent, i)
		}
		if _, dup := seen[line.ID]; dup {
			return fmt.Errorf("%w: lines[%d].id дублируется", ErrInvalidEvent, i)
		}
		seen[line.ID] = struct{}{}
	}
	return nil
}
