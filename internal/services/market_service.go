package services

import (
	"context"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/generator"
	"cryptoex/internal/models"
	"cryptoex/internal/seed"
	"cryptoex/internal/validator"
)

// marketService serves live prices and the static market catalog.
type marketService struct {
	prices   PriceSource
	data     *seed.Data
	pageSize int
}

// NewMarketService creates a new MarketServicer. pageSize is the number of
// assets returned by GetPrices.
func NewMarketService(prices PriceSource, data *seed.Data, pageSize int) MarketServicer {
	return &marketService{prices: prices, data: data, pageSize: pageSize}
}

// GetPrices returns the top assets by market cap. Upstream failures map to
// ErrUpstreamUnavailable.
func (s *marketService) GetPrices(ctx context.Context) ([]models.PriceAsset, error) {
	assets, err := s.prices.Markets(ctx, s.pageSize)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUpstreamUnavailable, err)
	}
	return assets, nil
}

// ListMarkets returns catalog pairs matching filter. An empty kind selects
// spot.
func (s *marketService) ListMarkets(filter generator.MarketFilter) ([]models.MarketPair, error) {
	if filter.Kind == "" {
		filter.Kind = models.MarketKindSpot
	}
	if !filter.Kind.IsValid() {
		return nil, apperrors.ErrUnknownMarketKind
	}
	if filter.Quote != "" && !isQuoteFilter(filter.Quote) {
		return nil, apperrors.ErrUnknownQuoteAsset
	}

	return generator.FilterMarkets(generator.MarketPairs(s.data.Markets), filter), nil
}

func isQuoteFilter(q string) bool {
	for _, v := range validator.QuoteFilters {
		if q == v {
			return true
		}
	}
	return false
}
