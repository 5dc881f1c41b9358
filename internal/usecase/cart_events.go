package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/pkg/validate"
)

// ApplyUpdateMessage — обработать событие изменения корзины из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidEvent при проблемах);
//  3. синхронизация состояния рекомендаций с новым составом корзины.
func (s *CartService) ApplyUpdateMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var event domain.CartUpdateEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		// Битый JSON — такой же «яд», как и невалидное событие.
		return fmt.Errorf("invalid json: %w: %v", validate.ErrInvalidEvent, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data: %w", validate.ErrInvalidEvent)
	}

	// Доменная валидация (обязательные поля, дубликаты позиций, количества).
	if err := s.validator.Validate(ctx, &event); err != nil {
		s.log.Warnf(ctx, "validation failed cart_id=%s err=%v", event.CartID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	s.SyncLines(ctx, event.Lines)
	s.log.Infof(ctx, "cart update applied cart_id=%s lines=%d", event.CartID, len(event.Lines))
	return nil
}
