package services

import (
	"context"

	"cryptoex/internal/generator"
	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
)

// PriceSource supplies live market snapshots. *provider.Fetcher satisfies it.
type PriceSource interface {
	Markets(ctx context.Context, perPage int) ([]models.PriceAsset, error)
	MarketsOrEmpty(ctx context.Context, perPage int) []models.PriceAsset
}

// MarketServicer defines the contract for price and market-pair queries.
type MarketServicer interface {
	GetPrices(ctx context.Context) ([]models.PriceAsset, error)
	ListMarkets(filter generator.MarketFilter) ([]models.MarketPair, error)
}

// PortfolioServicer defines the contract for the portfolio, dashboard and
// order history.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context) (*PortfolioView, error)
	GetDashboard(ctx context.Context) (*DashboardView, error)
	ListOrders(page pagination.PageRequest) (*pagination.PageResponse[models.Order], error)
}

// WalletServicer defines the contract for balances, asset accounts and the
// transaction history.
type WalletServicer interface {
	GetWallet(search string) (*WalletView, error)
	ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetOverview() (*OverviewView, error)
	GetSpotAssets(search string) (*SpotView, error)
	GetOptionsAssets(search string) (*OptionsView, error)
}

// NewsServicer defines the contract for headlines and the landing page.
type NewsServicer interface {
	ListNews(page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error)
	GetLanding(ctx context.Context) (*LandingView, error)
}
