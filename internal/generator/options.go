package generator

import (
	"fmt"
	"math/rand/v2"

	"cryptoex/internal/models"
)

// OptionsPositions derives a mock position for every options pair in
// catalog. Quantity is 1 to 10 contracts and the entry price lies within
// 10% of the last price, both drawn from rng.
func OptionsPositions(catalog []models.MarketPair, rng *rand.Rand) []models.OptionsPosition {
	var positions []models.OptionsPosition
	for _, m := range catalog {
		if m.Market != models.MarketKindOptions {
			continue
		}

		qty := rng.IntN(10) + 1
		avg := m.LastPrice * (0.9 + rng.Float64()*0.2)
		value := float64(qty) * m.LastPrice
		pnl := float64(qty) * (m.LastPrice - avg)
		pnlPct := 0.0
		if cost := float64(qty) * avg; cost != 0 {
			pnlPct = pnl / cost * 100
		}

		optionType := m.OptionType
		if optionType == "" {
			optionType = models.OptionTypeCall
		}

		positions = append(positions, models.OptionsPosition{
			ID:            fmt.Sprintf("pos-%d", len(positions)+1),
			Pair:          m.Pair,
			BaseAsset:     m.BaseAsset,
			QuoteAsset:    m.QuoteAsset,
			StrikePrice:   m.StrikePrice,
			ExpiryDate:    m.ExpiryDate,
			OptionType:    optionType,
			Quantity:      qty,
			AveragePrice:  avg,
			CurrentPrice:  m.LastPrice,
			Value:         value,
			PnL:           pnl,
			PnLPercentage: pnlPct,
		})
	}
	return positions
}
