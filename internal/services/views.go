package services

import (
	"cryptoex/internal/models"
	"cryptoex/internal/presenter"
)

// PortfolioView is the valued portfolio with totals and display rows.
type PortfolioView struct {
	Assets     []models.PortfolioAsset  `json:"assets"`
	Rows       []presenter.PortfolioRow `json:"rows"`
	TotalValue float64                  `json:"totalValue"`
	TotalPnL   float64                  `json:"totalPnl"`
	// Missing lists holdings that had no price in the snapshot.
	Missing []string `json:"missing,omitempty"`
}

// DashboardView is everything the dashboard renders in one response.
type DashboardView struct {
	Portfolio        PortfolioView      `json:"portfolio"`
	RecentOrders     []models.Order     `json:"recentOrders"`
	EstimatedBalance float64            `json:"estimatedBalance"`
	DailyChange      models.DailyChange `json:"dailyChange"`
	Display          DashboardDisplay   `json:"display"`
}

// DashboardDisplay holds the formatted headline figures.
type DashboardDisplay struct {
	EstimatedBalance string `json:"estimatedBalance"`
	DailyChange      string `json:"dailyChange"`
	DailyChangePct   string `json:"dailyChangePct"`
	PortfolioValue   string `json:"portfolioValue"`
	PortfolioPnL     string `json:"portfolioPnl"`
	PortfolioPnLPct  string `json:"portfolioPnlPct"`
}

// WalletView is the wallet page: balances, history and the headline total.
type WalletView struct {
	TotalBalance float64                    `json:"totalBalance"`
	Assets       []models.WalletAsset       `json:"assets"`
	Rows         []presenter.WalletRow      `json:"rows"`
	Transactions []models.Transaction       `json:"transactions"`
	TxRows       []presenter.TransactionRow `json:"transactionRows"`
}

// OverviewView is the assets overview page.
type OverviewView struct {
	TotalBalance float64                  `json:"totalBalance"`
	Distribution []models.AssetAllocation `json:"distribution"`
	Accounts     []models.AssetAllocation `json:"accounts"`
}

// SpotView is the spot account page.
type SpotView struct {
	TotalBalance float64               `json:"totalBalance"`
	Assets       []models.WalletAsset  `json:"assets"`
	Rows         []presenter.WalletRow `json:"rows"`
}

// OptionsView is the options account page.
type OptionsView struct {
	TotalValue float64                  `json:"totalValue"`
	TotalPnL   float64                  `json:"totalPnl"`
	Positions  []models.OptionsPosition `json:"positions"`
	Rows       []presenter.PositionRow  `json:"rows"`
}

// LandingView is the public landing page. Fallback is set when the live
// snapshot was unavailable and Featured holds the static cards instead.
type LandingView struct {
	Crypto   []models.PriceAsset  `json:"crypto"`
	Featured []presenter.PriceRow `json:"featured"`
	News     []models.NewsItem    `json:"news"`
	Fallback bool                 `json:"fallback"`
}
