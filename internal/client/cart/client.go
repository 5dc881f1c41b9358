package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Проверка, что Client удовлетворяет интерфейсу CartClient.
var _ ports.CartClient = (*Client)(nil)

// Client — HTTP-клиент корзинного сервиса. Одна попытка на вызов,
// ретраи и их политика — забота внешнего коллаборатора.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient — конструктор; timeout <= 0 → 5s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Lines — текущие позиции корзины.
func (c *Client) Lines(ctx context.Context) ([]domain.CartLine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cart", http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cart request: unexpected status %d", resp.StatusCode)
	}

	var lines []domain.CartLine
	if err := json.NewDecoder(resp.Body).Decode(&lines); err != nil {
		return nil, fmt.Errorf("cart response: %w", err)
	}
	return lines, nil
}

// ReplaceProduct — заменить продукт позиции корзины.
func (c *Client) ReplaceProduct(ctx context.Context, lineID, newProductID string) (*domain.CartLine, error) {
	return c.patchLine(ctx, lineID, map[string]any{"product": newProductID})
}

// UpdateQuantity — обновить количество позиции корзины.
func (c *Client) UpdateQuantity(ctx context.Context, lineID string, quantity int) (*domain.CartLine, error) {
	return c.patchLine(ctx, lineID, map[string]any{"quantity": quantity})
}

func (c *Client) patchLine(ctx context.Context, lineID string, body map[string]any) (*domain.CartLine, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/cart/items/%s", c.baseURL, url.PathEscape(lineID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cart mutation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cart mutation: unexpected status %d", resp.StatusCode)
	}

	var line domain.CartLine
	if err := json.NewDecoder(resp.Body).Decode(&line); err != nil {
		return nil, fmt.Errorf("cart mutation response: %w", err)
	}
	return &line, nil
}
