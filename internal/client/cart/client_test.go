package cart

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/cart" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"id":"l1","product_id":"p1","quantity":2},
			{"id":"l2","product_id":"p2","quantity":1}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	lines, err := c.Lines(context.Background())
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(lines) != 2 || lines[0].ID != "l1" || lines[1].ProductID != "p2" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestClient_ReplaceProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/cart/items/l1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var got map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("body: %v", err)
		}
		if got["product"] != "p-new" {
			t.Errorf("product = %v", got["product"])
		}
		_, _ = w.Write([]byte(`{"id":"l1","product_id":"p-new","quantity":2}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	line, err := c.ReplaceProduct(context.Background(), "l1", "p-new")
	if err != nil {
		t.Fatalf("ReplaceProduct: %v", err)
	}
	if line.ProductID != "p-new" {
		t.Errorf("line = %+v", line)
	}
}

func TestClient_UpdateQuantity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["quantity"] != float64(5) {
			t.Errorf("quantity = %v", got["quantity"])
		}
		_, _ = w.Write([]byte(`{"id":"l1","product_id":"p1","quantity":5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	line, err := c.UpdateQuantity(context.Background(), "l1", 5)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if line.Quantity != 5 {
		t.Errorf("quantity = %d", line.Quantity)
	}
}

func TestClient_Mutation_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	if _, err := c.ReplaceProduct(context.Background(), "l1", "p2"); err == nil {
		t.Fatal("expected error on 409, got nil")
	}
}
