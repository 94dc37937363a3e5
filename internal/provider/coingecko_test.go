package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const marketsBody = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":43567.2,
   "market_cap":854000000000,"market_cap_rank":1,"price_change_percentage_24h":2.34,"price_change_24h":996.1,
   "total_volume":1245678900,"high_24h":44102.5,"low_24h":42980.1,"ath":69045,"ath_date":"2021-11-10T14:24:11.849Z"},
  {"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img/eth.png","current_price":3256.12,
   "market_cap":391000000000,"market_cap_rank":2,"price_change_percentage_24h":1.56,"price_change_24h":50.01,
   "total_volume":678945230,"high_24h":null,"low_24h":null}
]`

func TestCoinGeckoProvider_FetchMarkets_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"vs_currency":             "usd",
			"order":                   "market_cap_desc",
			"per_page":                "20",
			"page":                    "1",
			"sparkline":               "false",
			"price_change_percentage": "24h",
		}
		for k, v := range want {
			if q.Get(k) != v {
				t.Errorf("query %s = %q, want %q", k, q.Get(k), v)
			}
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept application/json, got %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(marketsBody))
	}))
	defer server.Close()

	p := &CoinGeckoProvider{httpClient: server.Client(), baseURL: server.URL}
	assets, err := p.FetchMarkets(context.Background(), MarketsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}

	btc := assets[0]
	if btc.ID != "bitcoin" || btc.CurrentPrice != 43567.2 || btc.MarketCapRank != 1 {
		t.Errorf("unexpected bitcoin record: %+v", btc)
	}
	if btc.High24h == nil || *btc.High24h != 44102.5 {
		t.Errorf("expected high_24h 44102.5, got %v", btc.High24h)
	}
	if btc.ATHDate != "2021-11-10T14:24:11.849Z" {
		t.Errorf("unexpected ath_date %q", btc.ATHDate)
	}
	if assets[1].High24h != nil {
		t.Error("expected null high_24h to decode as nil")
	}
}

func TestCoinGeckoProvider_FetchMarkets_PerPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("per_page = %q, want 10", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	p := &CoinGeckoProvider{httpClient: server.Client(), baseURL: server.URL}
	assets, err := p.FetchMarkets(context.Background(), MarketsQuery{PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assets == nil || len(assets) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", assets)
	}
}

func TestCoinGeckoProvider_FetchMarkets_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := &CoinGeckoProvider{httpClient: server.Client(), baseURL: server.URL}
	_, err := p.FetchMarkets(context.Background(), MarketsQuery{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", statusErr.StatusCode)
	}
}

func TestCoinGeckoProvider_FetchMarkets_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"status":{"error_code":429}}`))
	}))
	defer server.Close()

	p := &CoinGeckoProvider{httpClient: server.Client(), baseURL: server.URL}
	if _, err := p.FetchMarkets(context.Background(), MarketsQuery{}); err == nil {
		t.Fatal("expected error for 429")
	}
}

func TestCoinGeckoProvider_FetchMarkets_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	p := &CoinGeckoProvider{httpClient: server.Client(), baseURL: server.URL}
	if _, err := p.FetchMarkets(context.Background(), MarketsQuery{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCoinGeckoProvider_FetchMarkets_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	p := &CoinGeckoProvider{httpClient: http.DefaultClient, baseURL: url}
	if _, err := p.FetchMarkets(context.Background(), MarketsQuery{}); err == nil {
		t.Fatal("expected network error")
	}
}

func TestNewCoinGeckoProvider_Defaults(t *testing.T) {
	p := NewCoinGeckoProvider(nil, "")
	if p.baseURL != DefaultCoinGeckoURL {
		t.Errorf("expected default base URL, got %s", p.baseURL)
	}
	if p.httpClient == nil {
		t.Error("expected default http client")
	}
	if p.Name() != "CoinGecko" {
		t.Errorf("unexpected name %s", p.Name())
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(0)
	if c.Transport == nil {
		t.Error("expected instrumented transport")
	}
}
