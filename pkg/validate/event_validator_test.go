package validate_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/pkg/validate"
)

func validEvent() *domain.CartUpdateEvent {
	return &domain.CartUpdateEvent{
		CartID: "cart-1",
		Lines: []domain.CartLine{
			{ID: "l1", ProductID: "p1", Quantity: 2},
			{ID: "l2", ProductID: "p2", Quantity: 1},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	v := validate.NewEventValidator()
	if err := v.Validate(context.Background(), validEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	v := validate.NewEventValidator()
	cases := []struct {
		name string
		mut  func(*domain.CartUpdateEvent)
	}{
		{"empty_cart_id", func(e *domain.CartUpdateEvent) { e.CartID = "" }},
		{"empty_line_id", func(e *domain.CartUpdateEvent) { e.Lines[0].ID = "" }},
		{"empty_product_id", func(e *domain.CartUpdateEvent) { e.Lines[1].ProductID = "" }},
		{"negative_qty", func(e *domain.CartUpdateEvent) { e.Lines[0].Quantity = -1 }},
		{"duplicate_line", func(e *domain.CartUpdateEvent) { e.Lines[1].ID = e.Lines[0].ID }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEvent()
			tc.mut(e)
			err := v.Validate(context.Background(), e)
			if !errors.Is(err, validate.ErrInvalidEvent) {
				t.Fatalf("want ErrInvalidEvent, got %v", err)
			}
		})
	}
}

func TestValidateEventFromJSON_StrictParsing(t *testing.T) {
	v := validate.NewEventValidator()

	if _, err := validate.ValidateEventFromJSON(context.Background(), v, []byte("{")); err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("want invalid json, got %v", err)
	}

	// неизвестное поле запрещено
	raw := []byte(`{"cart_id":"c1","lines":[],"extra":1}`)
	if _, err := validate.ValidateEventFromJSON(context.Background(), v, raw); err == nil {
		t.Fatalf("unknown field must fail")
	}

	raw = []byte(`{"cart_id":"c1","lines":[{"id":"l1","product_id":"p1","quantity":1}]}`)
	event, err := validate.ValidateEventFromJSON(context.Background(), v, raw)
	if err != nil || event.CartID != "c1" || len(event.Lines) != 1 {
		t.Fatalf("valid event rejected: %v %+v", err, event)
	}
}

func TestValidateJSONLStream_SkipsInvalid(t *testing.T) {
	v := validate.NewEventValidator()
	in := strings.Join([]string{
		`{"cart_id":"c1","lines":[{"id":"l1","product_id":"p1","quantity":1}]}`,
		``,
		`{"cart_id":"","lines":[]}`,
		`not json`,
		`{"cart_id":"c2","lines":[]}`,
	}, "\n")

	var out bytes.Buffer
	res, err := validate.ValidateJSONLStream(context.Background(), v, strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("want 2/2, got %+v", res)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Fatalf("want 2 output lines, got %d", got)
	}
}
