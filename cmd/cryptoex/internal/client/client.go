// Package client is a thin HTTP client for the CryptoEx API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
	"cryptoex/internal/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx response. The API answers with either a flat
// {"error": "..."} body or {"error": {"code", "message"}}.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// New builds a client for the api_url setting.
func New() *Client {
	return NewWithURL(viper.GetString("api_url"), &http.Client{Timeout: 30 * time.Second})
}

// NewWithURL builds a client rooted at baseURL.
func NewWithURL(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var flat string
		if json.Unmarshal(envelope.Error, &flat) == nil {
			apiErr.Message = flat
			return apiErr
		}
		var detail struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &detail) == nil && detail.Message != "" {
			apiErr.Code = detail.Code
			apiErr.Message = detail.Message
			return apiErr
		}
	}

	apiErr.Message = fmt.Sprintf("request failed with status %d: %s", status, strings.TrimSpace(string(body)))
	return apiErr
}

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return q
}

// Prices returns the live top-assets snapshot.
func (c *Client) Prices(ctx context.Context) ([]models.PriceAsset, error) {
	var assets []models.PriceAsset
	err := c.get(ctx, "/api/crypto", nil, &assets)
	return assets, err
}

// MarketsResponse is the body of /api/v1/markets.
type MarketsResponse struct {
	Markets []models.MarketPair `json:"markets"`
}

// MarketsFilter selects catalog pairs. Empty fields are omitted.
type MarketsFilter struct {
	Kind   string
	Quote  string
	Search string
}

func (c *Client) Markets(ctx context.Context, f MarketsFilter) ([]models.MarketPair, error) {
	q := url.Values{}
	if f.Kind != "" {
		q.Set("kind", f.Kind)
	}
	if f.Quote != "" {
		q.Set("quote", f.Quote)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	var resp MarketsResponse
	if err := c.get(ctx, "/api/v1/markets", q, &resp); err != nil {
		return nil, err
	}
	return resp.Markets, nil
}

func (c *Client) Dashboard(ctx context.Context) (*services.DashboardView, error) {
	var view services.DashboardView
	err := c.get(ctx, "/api/v1/dashboard", nil, &view)
	return &view, err
}

func (c *Client) Portfolio(ctx context.Context) (*services.PortfolioView, error) {
	var view services.PortfolioView
	err := c.get(ctx, "/api/v1/portfolio", nil, &view)
	return &view, err
}

func (c *Client) Wallet(ctx context.Context, search string) (*services.WalletView, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var view services.WalletView
	err := c.get(ctx, "/api/v1/wallet", q, &view)
	return &view, err
}

func (c *Client) Orders(ctx context.Context, page, pageSize int) (*pagination.PageResponse[models.Order], error) {
	var resp pagination.PageResponse[models.Order]
	err := c.get(ctx, "/api/v1/orders", pageQuery(page, pageSize), &resp)
	return &resp, err
}

func (c *Client) News(ctx context.Context, page, pageSize int) (*pagination.PageResponse[models.NewsItem], error) {
	var resp pagination.PageResponse[models.NewsItem]
	err := c.get(ctx, "/api/v1/news", pageQuery(page, pageSize), &resp)
	return &resp, err
}
