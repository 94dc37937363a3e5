package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/format"
	"cryptoex/internal/generator"
	"cryptoex/internal/metrics"
	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
	"cryptoex/internal/presenter"
	"cryptoex/internal/seed"
)

const recentOrderCount = 5

// portfolioService values the seeded holdings against live prices.
type portfolioService struct {
	prices      PriceSource
	data        *seed.Data
	pageSize    int
	defaultPage int
	now         func() time.Time
	log         *zap.SugaredLogger
}

// NewPortfolioService creates a new PortfolioServicer. pageSize is the
// snapshot size used to price holdings; defaultPage the order page size.
func NewPortfolioService(prices PriceSource, data *seed.Data, pageSize, defaultPage int, log *zap.SugaredLogger) PortfolioServicer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &portfolioService{
		prices:      prices,
		data:        data,
		pageSize:    pageSize,
		defaultPage: defaultPage,
		now:         time.Now,
		log:         log,
	}
}

// GetPortfolio prices the holdings. Holdings missing from the snapshot are
// left out of the result and reported in Missing.
func (s *portfolioService) GetPortfolio(ctx context.Context) (*PortfolioView, error) {
	snapshot, err := s.prices.Markets(ctx, s.pageSize)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUpstreamUnavailable, err)
	}

	assets := generator.Portfolio(snapshot, s.data.Holdings)
	missing := generator.MissingHoldings(snapshot, s.data.Holdings)
	if len(missing) > 0 {
		metrics.DroppedHoldings(len(missing))
		s.log.Warnw("holdings missing from price snapshot", "ids", missing, "snapshot_size", len(snapshot))
	}

	value, pnl := generator.PortfolioTotals(assets)
	return &PortfolioView{
		Assets:     assets,
		Rows:       presenter.Portfolio(assets),
		TotalValue: value,
		TotalPnL:   pnl,
		Missing:    missing,
	}, nil
}

// GetDashboard combines the portfolio, the latest orders and the account
// balance figures.
func (s *portfolioService) GetDashboard(ctx context.Context) (*DashboardView, error) {
	portfolio, err := s.GetPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	orders := generator.OrderHistory(s.data.Orders, s.now())
	if len(orders) > recentOrderCount {
		orders = orders[:recentOrderCount]
	}

	b := s.data.Balances
	costBasis := portfolio.TotalValue - portfolio.TotalPnL
	pnlPct := 0.0
	if costBasis != 0 {
		pnlPct = portfolio.TotalPnL / costBasis * 100
	}

	return &DashboardView{
		Portfolio:        *portfolio,
		RecentOrders:     orders,
		EstimatedBalance: b.EstimatedBalance,
		DailyChange:      b.DailyChange,
		Display: DashboardDisplay{
			EstimatedBalance: format.Currency(b.EstimatedBalance),
			DailyChange:      format.Currency(b.DailyChange.Value),
			DailyChangePct:   format.Percentage(b.DailyChange.Percentage),
			PortfolioValue:   format.Currency(portfolio.TotalValue),
			PortfolioPnL:     format.Currency(portfolio.TotalPnL),
			PortfolioPnLPct:  format.Percentage(pnlPct),
		},
	}, nil
}

// ListOrders returns a page of the order history, newest first.
func (s *portfolioService) ListOrders(page pagination.PageRequest) (*pagination.PageResponse[models.Order], error) {
	page.Defaults(s.defaultPage)
	orders := generator.OrderHistory(s.data.Orders, s.now())
	resp := pagination.Paginate(orders, page)
	return &resp, nil
}
