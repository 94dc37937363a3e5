package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cryptoex/internal/models"
)

// DefaultCoinGeckoURL is the public CoinGecko v3 API root.
const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider reads the /coins/markets listing from CoinGecko.
type CoinGeckoProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewCoinGeckoProvider creates a CoinGecko provider rooted at baseURL. An
// empty baseURL selects DefaultCoinGeckoURL.
func NewCoinGeckoProvider(httpClient *http.Client, baseURL string) *CoinGeckoProvider {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CoinGeckoProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Name returns the provider's display name.
func (p *CoinGeckoProvider) Name() string { return "CoinGecko" }

// FetchMarkets fetches one page of the market-cap ranked listing with 24h
// price change included.
func (p *CoinGeckoProvider) FetchMarkets(ctx context.Context, q MarketsQuery) ([]models.PriceAsset, error) {
	q = q.withDefaults()

	params := url.Values{}
	params.Set("vs_currency", q.VsCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(q.PerPage))
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "24h")

	reqURL := p.baseURL + "/coins/markets?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch markets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var assets []models.PriceAsset
	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return nil, fmt.Errorf("decode markets: %w", err)
	}
	if assets == nil {
		assets = []models.PriceAsset{}
	}
	return assets, nil
}
