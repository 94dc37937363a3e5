// Package testutil provides shared fixtures, a stub price source, and
// assertion helpers for package tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"cryptoex/internal/models"
	"cryptoex/internal/seed"
)

// SeedData loads the embedded seed tables or fails the test.
func SeedData(t *testing.T) *seed.Data {
	t.Helper()

	data, err := seed.Default()
	if err != nil {
		t.Fatalf("failed to load seed data: %v", err)
	}
	return data
}

// PriceSnapshot returns a snapshot covering every seeded holding, priced at
// the catalog's USDT last prices.
func PriceSnapshot() []models.PriceAsset {
	return []models.PriceAsset{
		priceAsset("bitcoin", "btc", "Bitcoin", 1, 43567.2, 2.34),
		priceAsset("ethereum", "eth", "Ethereum", 2, 3256.12, 1.56),
		priceAsset("binancecoin", "bnb", "BNB", 4, 412.35, 0.89),
		priceAsset("solana", "sol", "Solana", 5, 102.78, 4.12),
		priceAsset("ripple", "xrp", "XRP", 6, 0.58, 0.75),
		priceAsset("cardano", "ada", "Cardano", 9, 0.52, -1.24),
	}
}

// PriceSnapshotWithout returns PriceSnapshot minus the given ids.
func PriceSnapshotWithout(ids ...string) []models.PriceAsset {
	skip := make(map[string]bool, len(ids))
	for _, id := range ids {
		skip[id] = true
	}

	var out []models.PriceAsset
	for _, p := range PriceSnapshot() {
		if !skip[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func priceAsset(id, symbol, name string, rank int, price, change float64) models.PriceAsset {
	return models.PriceAsset{
		ID:                       id,
		Symbol:                   symbol,
		Name:                     name,
		Image:                    "https://assets.coingecko.com/coins/images/" + id + ".png",
		CurrentPrice:             price,
		MarketCapRank:            rank,
		PriceChangePercentage24h: change,
		MarketCap:                price * 1e7,
		TotalVolume:              price * 1e5,
	}
}

// StubPrices is an in-memory price source. Err makes Markets fail and
// MarketsOrEmpty return an empty list.
type StubPrices struct {
	Assets []models.PriceAsset
	Err    error

	mu       sync.Mutex
	requests []int
}

// Markets returns at most perPage assets or Err.
func (s *StubPrices) Markets(_ context.Context, perPage int) ([]models.PriceAsset, error) {
	s.mu.Lock()
	s.requests = append(s.requests, perPage)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if perPage > 0 && perPage < len(s.Assets) {
		return s.Assets[:perPage], nil
	}
	return s.Assets, nil
}

// MarketsOrEmpty swallows Err and returns an empty list instead.
func (s *StubPrices) MarketsOrEmpty(ctx context.Context, perPage int) []models.PriceAsset {
	assets, err := s.Markets(ctx, perPage)
	if err != nil {
		return []models.PriceAsset{}
	}
	return assets
}

// Requests returns the perPage values seen so far.
func (s *StubPrices) Requests() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.requests...)
}
