// Package presenter turns domain records into display rows: every numeric
// field is rendered through the format package so the HTTP API and the CLI
// show identical strings.
package presenter

import (
	"strings"
	"time"

	"cryptoex/internal/format"
	"cryptoex/internal/models"
)

// PriceRow is one line of the live price table.
type PriceRow struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Change24h string `json:"change24h"`
	MarketCap string `json:"marketCap"`
	Volume    string `json:"volume"`
	Up        bool   `json:"up"`
}

// PortfolioRow is one holding of the portfolio table.
type PortfolioRow struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Amount        string `json:"amount"`
	Price         string `json:"price"`
	Change24h     string `json:"change24h"`
	AvgBuyPrice   string `json:"avgBuyPrice"`
	Value         string `json:"value"`
	Allocation    string `json:"allocation"`
	PnL           string `json:"pnl"`
	PnLPercentage string `json:"pnlPercentage"`
	Up            bool   `json:"up"`
}

// MarketRow is one line of the markets table.
type MarketRow struct {
	Pair       string `json:"pair"`
	Market     string `json:"market"`
	LastPrice  string `json:"lastPrice"`
	Change     string `json:"change"`
	High       string `json:"high"`
	Low        string `json:"low"`
	Volume     string `json:"volume"`
	Leverage   string `json:"leverage,omitempty"`
	Strike     string `json:"strike,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	OptionType string `json:"optionType,omitempty"`
	Up         bool   `json:"up"`
}

// WalletRow is one balance line.
type WalletRow struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Balance   string `json:"balance"`
	Available string `json:"available"`
	InOrder   string `json:"inOrder"`
	Value     string `json:"value"`
}

// OrderRow is one line of the order history.
type OrderRow struct {
	Date   string `json:"date"`
	Pair   string `json:"pair"`
	Side   string `json:"side"`
	Type   string `json:"type"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
	Total  string `json:"total"`
	Status string `json:"status"`
}

// TransactionRow is one line of the wallet history.
type TransactionRow struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
	Status string `json:"status"`
	Fee    string `json:"fee,omitempty"`
	TxID   string `json:"txid,omitempty"`
}

// NewsRow is one headline.
type NewsRow struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Published string `json:"published"`
	Ago       string `json:"ago"`
}

// PositionRow is one options position.
type PositionRow struct {
	Pair          string `json:"pair"`
	OptionType    string `json:"optionType"`
	Strike        string `json:"strike"`
	Expiry        string `json:"expiry"`
	Quantity      int    `json:"quantity"`
	AveragePrice  string `json:"averagePrice"`
	CurrentPrice  string `json:"currentPrice"`
	Value         string `json:"value"`
	PnL           string `json:"pnl"`
	PnLPercentage string `json:"pnlPercentage"`
	Up            bool   `json:"up"`
}

// MarketPrice picks the rendering used for pair prices: plain numbers with
// 6 digits below 0.01, 4 digits below 1, dollars otherwise.
func MarketPrice(v float64) string {
	switch {
	case v < 0.01:
		return format.Number(v, 6)
	case v < 1:
		return format.Number(v, 4)
	default:
		return format.Currency(v)
	}
}

// Prices renders a price snapshot.
func Prices(assets []models.PriceAsset) []PriceRow {
	rows := make([]PriceRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, PriceRow{
			Rank:      a.MarketCapRank,
			Name:      a.Name,
			Symbol:    strings.ToUpper(a.Symbol),
			Price:     format.Currency(a.CurrentPrice),
			Change24h: format.Percentage(a.PriceChangePercentage24h),
			MarketCap: format.CompactNumber(a.MarketCap),
			Volume:    format.CompactNumber(a.TotalVolume),
			Up:        a.PriceChangePercentage24h >= 0,
		})
	}
	return rows
}

// FeaturedCoins renders the static landing cards.
func FeaturedCoins(coins []models.FeaturedCoin) []PriceRow {
	rows := make([]PriceRow, 0, len(coins))
	for i, c := range coins {
		rows = append(rows, PriceRow{
			Rank:      i + 1,
			Name:      c.Name,
			Symbol:    c.Symbol,
			Price:     format.Currency(c.Price),
			Change24h: format.Percentage(c.Change),
			Up:        c.Change >= 0,
		})
	}
	return rows
}

// Portfolio renders portfolio holdings.
func Portfolio(assets []models.PortfolioAsset) []PortfolioRow {
	rows := make([]PortfolioRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, PortfolioRow{
			Name:          a.Name,
			Symbol:        a.Symbol,
			Amount:        format.Quantity(a.Amount),
			Price:         format.Currency(a.CurrentPrice),
			Change24h:     format.Percentage(a.PriceChangePercentage24h),
			AvgBuyPrice:   format.Currency(a.AverageBuyPrice),
			Value:         format.Currency(a.Value),
			Allocation:    format.Number(a.Percentage, 2) + "%",
			PnL:           format.Currency(a.PnL),
			PnLPercentage: format.Percentage(a.PnLPercentage),
			Up:            a.PnL >= 0,
		})
	}
	return rows
}

// Markets renders market pairs.
func Markets(pairs []models.MarketPair) []MarketRow {
	rows := make([]MarketRow, 0, len(pairs))
	for _, m := range pairs {
		row := MarketRow{
			Pair:      m.Pair,
			Market:    string(m.Market),
			LastPrice: MarketPrice(m.LastPrice),
			Change:    format.Percentage(m.PriceChangePercent),
			High:      MarketPrice(m.High),
			Low:       MarketPrice(m.Low),
			Volume:    format.CompactNumber(m.Volume),
			Leverage:  m.Leverage,
			Up:        m.PriceChangePercent >= 0,
		}
		if m.Market == models.MarketKindOptions {
			row.Strike = format.Currency(m.StrikePrice)
			row.Expiry = m.ExpiryDate
			row.OptionType = string(m.OptionType)
		}
		rows = append(rows, row)
	}
	return rows
}

// Wallet renders wallet balances.
func Wallet(assets []models.WalletAsset) []WalletRow {
	rows := make([]WalletRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, WalletRow{
			Name:      a.Name,
			Symbol:    a.Symbol,
			Balance:   format.Quantity(a.Balance) + " " + a.Symbol,
			Available: format.Quantity(a.AvailableBalance) + " " + a.Symbol,
			InOrder:   format.Quantity(a.InOrder) + " " + a.Symbol,
			Value:     format.Currency(a.Value),
		})
	}
	return rows
}

// Orders renders order history with dates in loc.
func Orders(orders []models.Order, loc *time.Location) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderRow{
			Date:   format.DateTime(o.Date.In(loc)),
			Pair:   o.Pair,
			Side:   string(o.Type),
			Type:   string(o.OrderType),
			Price:  format.Currency(o.Price),
			Amount: format.Quantity(o.Amount),
			Total:  format.Currency(o.Total),
			Status: string(o.Status),
		})
	}
	return rows
}

// Transactions renders wallet history with dates in loc.
func Transactions(txs []models.Transaction, loc *time.Location) []TransactionRow {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		row := TransactionRow{
			Date:   format.DateTime(tx.Date.In(loc)),
			Type:   string(tx.Type),
			Amount: format.Quantity(tx.Amount) + " " + tx.Asset,
			Status: string(tx.Status),
			TxID:   tx.TxID,
		}
		if tx.Fee != nil {
			row.Fee = format.Quantity(*tx.Fee) + " " + tx.Asset
		}
		rows = append(rows, row)
	}
	return rows
}

// News renders headlines relative to now.
func News(items []models.NewsItem, now time.Time) []NewsRow {
	rows := make([]NewsRow, 0, len(items))
	for _, n := range items {
		rows = append(rows, NewsRow{
			Title:     n.Title,
			Source:    n.Source,
			Category:  n.Category,
			Published: format.DateTime(n.PublishedAt.In(now.Location())),
			Ago:       format.Ago(n.PublishedAt, now),
		})
	}
	return rows
}

// Positions renders options positions.
func Positions(positions []models.OptionsPosition) []PositionRow {
	rows := make([]PositionRow, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, PositionRow{
			Pair:          p.Pair,
			OptionType:    string(p.OptionType),
			Strike:        format.Currency(p.StrikePrice),
			Expiry:        p.ExpiryDate,
			Quantity:      p.Quantity,
			AveragePrice:  format.Currency(p.AveragePrice),
			CurrentPrice:  format.Currency(p.CurrentPrice),
			Value:         format.Currency(p.Value),
			PnL:           format.Currency(p.PnL),
			PnLPercentage: format.Percentage(p.PnLPercentage),
			Up:            p.PnL >= 0,
		})
	}
	return rows
}
