// Package provider fetches live market snapshots from an external price
// index and caches them for a short interval.
package provider

import (
	"context"
	"fmt"

	"cryptoex/internal/models"
)

// MarketsQuery selects a page of the market-cap ranked asset list.
type MarketsQuery struct {
	VsCurrency string
	PerPage    int
	Page       int
}

// withDefaults fills unset fields with usd, 20 per page, page 1.
func (q MarketsQuery) withDefaults() MarketsQuery {
	if q.VsCurrency == "" {
		q.VsCurrency = "usd"
	}
	if q.PerPage <= 0 {
		q.PerPage = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return q
}

// cacheKey identifies the query within a provider.
func (q MarketsQuery) cacheKey(provider string) string {
	return fmt.Sprintf("markets:%s:%s:%d:%d", provider, q.VsCurrency, q.PerPage, q.Page)
}

// StatusError is returned when the price index answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("price index returned %s", e.Status)
}

// Provider fetches an ordered market snapshot from a price index.
type Provider interface {
	// Name returns the provider's display name (e.g., "CoinGecko").
	Name() string

	// FetchMarkets returns the assets on the requested page, ordered by
	// market capitalization descending.
	FetchMarkets(ctx context.Context, q MarketsQuery) ([]models.PriceAsset, error)
}
