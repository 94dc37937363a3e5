// Package generator builds the mock exchange records from seed tables and,
// for the portfolio, a live price snapshot. Nothing here performs I/O; the
// only outside input is the clock value callers pass in.
package generator

import (
	"strings"

	"cryptoex/internal/models"
)

// Portfolio values each holding at its snapshot price. Holdings whose id is
// absent from prices are skipped; MissingHoldings lists them.
func Portfolio(prices []models.PriceAsset, holdings []models.Holding) []models.PortfolioAsset {
	byID := indexPrices(prices)

	assets := make([]models.PortfolioAsset, 0, len(holdings))
	total := 0.0
	for _, h := range holdings {
		p, ok := byID[h.ID]
		if !ok {
			continue
		}

		value := h.Amount * p.CurrentPrice
		cost := h.Amount * h.AvgBuyPrice
		pnl := value - cost
		pnlPct := 0.0
		if cost != 0 {
			pnlPct = pnl / cost * 100
		}

		assets = append(assets, models.PortfolioAsset{
			ID:                       h.ID,
			Name:                     p.Name,
			Symbol:                   strings.ToUpper(p.Symbol),
			Amount:                   h.Amount,
			Image:                    p.Image,
			CurrentPrice:             p.CurrentPrice,
			PriceChangePercentage24h: p.PriceChangePercentage24h,
			Value:                    value,
			PnL:                      pnl,
			PnLPercentage:            pnlPct,
			AverageBuyPrice:          h.AvgBuyPrice,
		})
		total += value
	}

	if total != 0 {
		for i := range assets {
			assets[i].Percentage = assets[i].Value / total * 100
		}
	}
	return assets
}

// MissingHoldings returns the ids of holdings that have no entry in prices,
// in seed order.
func MissingHoldings(prices []models.PriceAsset, holdings []models.Holding) []string {
	byID := indexPrices(prices)

	var missing []string
	for _, h := range holdings {
		if _, ok := byID[h.ID]; !ok {
			missing = append(missing, h.ID)
		}
	}
	return missing
}

// PortfolioTotals sums value and pnl across assets.
func PortfolioTotals(assets []models.PortfolioAsset) (value, pnl float64) {
	for _, a := range assets {
		value += a.Value
		pnl += a.PnL
	}
	return value, pnl
}

func indexPrices(prices []models.PriceAsset) map[string]models.PriceAsset {
	byID := make(map[string]models.PriceAsset, len(prices))
	for _, p := range prices {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = p
		}
	}
	return byID
}
