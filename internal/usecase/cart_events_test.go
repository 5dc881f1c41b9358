package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/shop_discovery/internal/ports/mocks"
	"github.com/Gunvolt24/shop_discovery/internal/usecase"
	"github.com/Gunvolt24/shop_discovery/pkg/validate"
)

func TestApplyUpdateMessage_ValidEventSyncsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	cart := mocks.NewMockCartClient(ctrl)

	resolver.EXPECT().ResolveForItem(gomock.Any(), "p1").Return(someProducts(2), nil)

	svc := usecase.NewCartService(resolver, cart, noopLogger{}, validate.NewEventValidator())

	raw := []byte(`{"cart_id":"c1","lines":[{"id":"l1","product_id":"p1","quantity":2}]}`)
	if err := svc.ApplyUpdateMessage(context.Background(), raw); err != nil {
		t.Fatalf("ApplyUpdateMessage: %v", err)
	}
	if _, ok := svc.StateFor("l1"); !ok {
		t.Error("line state missing after event")
	}
}

func TestApplyUpdateMessage_InvalidEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecase.NewCartService(mocks.NewMockResolver(ctrl), mocks.NewMockCartClient(ctrl), noopLogger{}, validate.NewEventValidator())

	tests := []struct {
		name string
		raw  string
	}{
		{"broken json", `{"cart_id":`},
		{"unknown field", `{"cart_id":"c1","lines":[],"extra":1}`},
		{"trailing data", `{"cart_id":"c1","lines":[]}{"again":true}`},
		{"missing cart_id", `{"lines":[{"id":"l1","product_id":"p1","quantity":1}]}`},
		{"negative quantity", `{"cart_id":"c1","lines":[{"id":"l1","product_id":"p1","quantity":-1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.ApplyUpdateMessage(context.Background(), []byte(tt.raw)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestApplyUpdateMessage_ValidationErrorIsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecase.NewCartService(mocks.NewMockResolver(ctrl), mocks.NewMockCartClient(ctrl), noopLogger{}, validate.NewEventValidator())

	raw := []byte(`{"cart_id":"","lines":[]}`)
	err := svc.ApplyUpdateMessage(context.Background(), raw)
	if !errors.Is(err, validate.ErrInvalidEvent) {
		t.Fatalf("err = %v, want wrapped ErrInvalidEvent", err)
	}
}
