package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Проверка, что Client удовлетворяет интерфейсу RankingClient.
var _ ports.RankingClient = (*Client)(nil)

// Client — HTTP-клиент ranking-сервиса. Все три эндпоинта возвращают
// JSON-массив непрозрачных идентификаторов (возможно пустой).
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

// RecommendForQuery — подбор по свободному тексту.
func (c *Client) RecommendForQuery(ctx context.Context, query string) ([]string, error) {
	u := fmt.Sprintf("%s/api/recommendations/search?query=%s", c.baseURL, url.QueryEscape(query))
	return c.fetchIDs(ctx, u)
}

// RecommendForItem — подбор по одному товару.
func (c *Client) RecommendForItem(ctx context.Context, productID string) ([]string, error) {
	u := fmt.Sprintf("%s/api/recommendations/cart?product_id=%s", c.baseURL, url.QueryEscape(productID))
	return c.fetchIDs(ctx, u)
}

// RecommendForHome — подбор для главной страницы.
func (c *Client) RecommendForHome(ctx context.Context) ([]string, error) {
	return c.fetchIDs(ctx, c.baseURL+"/api/recommendations/home")
}

func (c *Client) fetchIDs(ctx context.Context, rawURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ranking request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranking request: unexpected status %d", resp.StatusCode)
	}

	var ids []string
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("ranking response: %w", err)
	}
	return ids, nil
}
