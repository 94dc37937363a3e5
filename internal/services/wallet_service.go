package services

import (
	"math/rand/v2"
	"time"

	"cryptoex/internal/generator"
	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
	"cryptoex/internal/presenter"
	"cryptoex/internal/seed"
)

// walletService serves the wallet and the asset account pages.
type walletService struct {
	data        *seed.Data
	defaultPage int
	now         func() time.Time
	newRand     func() *rand.Rand
	loc         *time.Location
}

// NewWalletService creates a new WalletServicer. Dates in display rows are
// rendered in loc.
func NewWalletService(data *seed.Data, defaultPage int, loc *time.Location) WalletServicer {
	if loc == nil {
		loc = time.Local
	}
	return &walletService{
		data:        data,
		defaultPage: defaultPage,
		now:         time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		loc: loc,
	}
}

// GetWallet returns wallet assets matching search together with the full
// transaction history.
func (s *walletService) GetWallet(search string) (*WalletView, error) {
	assets := generator.SearchWallet(generator.WalletAssets(s.data.Wallet), search)
	txs := generator.TransactionHistory(s.data.Transactions, s.now())

	return &WalletView{
		TotalBalance: s.data.Balances.EstimatedBalance,
		Assets:       assets,
		Rows:         presenter.Wallet(assets),
		Transactions: txs,
		TxRows:       presenter.Transactions(txs, s.loc),
	}, nil
}

// ListTransactions returns a page of the transaction history.
func (s *walletService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults(s.defaultPage)
	txs := generator.TransactionHistory(s.data.Transactions, s.now())
	resp := pagination.Paginate(txs, page)
	return &resp, nil
}

// GetOverview returns the overview balance, its distribution and the split
// across accounts.
func (s *walletService) GetOverview() (*OverviewView, error) {
	b := s.data.Balances
	return &OverviewView{
		TotalBalance: b.OverviewBalance,
		Distribution: generator.AssetDistribution(b),
		Accounts:     generator.AccountSplit(b),
	}, nil
}

// GetSpotAssets returns spot balances matching search.
func (s *walletService) GetSpotAssets(search string) (*SpotView, error) {
	assets := generator.SearchWallet(generator.WalletAssets(s.data.Wallet), search)
	return &SpotView{
		TotalBalance: s.data.Balances.SpotBalance,
		Assets:       assets,
		Rows:         presenter.Wallet(assets),
	}, nil
}

// GetOptionsAssets derives fresh mock positions from the options catalog
// and filters them by search. The headline value is the options share of
// the spot balance; P&L is reported as zero.
func (s *walletService) GetOptionsAssets(search string) (*OptionsView, error) {
	positions := generator.OptionsPositions(s.data.Markets, s.newRand())
	positions = generator.SearchPositions(positions, search)

	return &OptionsView{
		TotalValue: s.data.Balances.SpotBalance * s.data.Balances.OptionsShare,
		TotalPnL:   0,
		Positions:  positions,
		Rows:       presenter.Positions(positions),
	}, nil
}
