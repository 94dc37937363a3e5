package generator

import (
	"slices"
	"time"

	"cryptoex/internal/models"
	"cryptoex/internal/seed"
)

// MarketPairs returns a copy of the market catalog. Repeated calls over the
// same catalog produce identical output.
func MarketPairs(catalog []models.MarketPair) []models.MarketPair {
	return slices.Clone(catalog)
}

// WalletAssets returns a copy of the wallet seed.
func WalletAssets(assets []models.WalletAsset) []models.WalletAsset {
	return slices.Clone(assets)
}

// OrderHistory dates each seeded order relative to now and computes its
// total as price * amount.
func OrderHistory(seeds []seed.OrderSeed, now time.Time) []models.Order {
	orders := make([]models.Order, 0, len(seeds))
	for _, s := range seeds {
		orders = append(orders, models.Order{
			ID:        s.ID,
			Pair:      s.Pair,
			Type:      s.Side,
			OrderType: s.OrderType,
			Price:     s.Price,
			Amount:    s.Amount,
			Total:     s.Price * s.Amount,
			Status:    s.Status,
			Date:      now.Add(-s.Age),
		})
	}
	return orders
}

// TransactionHistory dates each seeded transaction relative to now.
func TransactionHistory(seeds []seed.TransactionSeed, now time.Time) []models.Transaction {
	txs := make([]models.Transaction, 0, len(seeds))
	for _, s := range seeds {
		tx := models.Transaction{
			ID:     s.ID,
			Type:   s.Type,
			Asset:  s.Asset,
			Amount: s.Amount,
			Status: s.Status,
			Date:   now.Add(-s.Age),
			TxID:   s.TxID,
			From:   s.From,
			To:     s.To,
		}
		if s.Fee != nil {
			fee := *s.Fee
			tx.Fee = &fee
		}
		txs = append(txs, tx)
	}
	return txs
}

// NewsData dates each seeded headline relative to now.
func NewsData(seeds []seed.NewsSeed, now time.Time) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(seeds))
	for _, s := range seeds {
		items = append(items, models.NewsItem{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			URL:         s.URL,
			PublishedAt: now.Add(-s.Age),
			Source:      s.Source,
			Image:       s.Image,
			Category:    s.Category,
		})
	}
	return items
}

// AssetDistribution is the overview breakdown: the whole overview balance is
// held in Tether.
func AssetDistribution(b models.AccountBalances) []models.AssetAllocation {
	return []models.AssetAllocation{
		{Name: "Tether", Value: b.OverviewBalance, Percentage: 100},
	}
}

// AccountSplit divides the overview balance between the spot, options and
// earn accounts using the configured options share.
func AccountSplit(b models.AccountBalances) []models.AssetAllocation {
	share := b.OptionsShare
	return []models.AssetAllocation{
		{Name: "Spot", Value: b.OverviewBalance * (1 - share), Percentage: (1 - share) * 100},
		{Name: "Options", Value: b.OverviewBalance * share, Percentage: share * 100},
		{Name: "Earn", Value: 0, Percentage: 0},
	}
}
