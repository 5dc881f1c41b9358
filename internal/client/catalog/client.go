package catalog

import (
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

// Проверка, что Client удовлетворяет интерфейсу CatalogClient.
var _ ports.CatalogClient = (*Client)(nil)

// Client — HTTP-клиент каталога: идентификатор → полная запись.
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

// ProductByID — запись каталога по идентификатору.
// Любой сбой (сеть, не-200, битый JSON) оборачивает domain.ErrLookupFailed:
// на границе резолвера такие ошибки гасятся поштучно.
func (c *Client) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	u := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for id=%s", domain.ErrLookupFailed, resp.StatusCode, id)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	return &product, nil
}
