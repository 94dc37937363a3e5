package generator

import (
	"strings"

	"cryptoex/internal/models"
)

// QuoteAll disables quote filtering in FilterMarkets.
const QuoteAll = "all"

// MarketFilter narrows a market list. Zero values match everything.
type MarketFilter struct {
	Kind   models.MarketKind
	Quote  string
	Search string
}

// FilterMarkets applies the kind filter, then the exact quote-asset filter,
// then a case-insensitive substring search over pair, base and quote.
func FilterMarkets(pairs []models.MarketPair, f MarketFilter) []models.MarketPair {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.MarketPair, 0, len(pairs))
	for _, m := range pairs {
		if f.Kind != "" && m.Market != f.Kind {
			continue
		}
		if f.Quote != "" && f.Quote != QuoteAll && m.QuoteAsset != f.Quote {
			continue
		}
		if query != "" && !containsAny(query, m.Pair, m.BaseAsset, m.QuoteAsset) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SearchWallet keeps assets whose name or symbol contains query, ignoring case.
func SearchWallet(assets []models.WalletAsset, query string) []models.WalletAsset {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return assets
	}

	out := make([]models.WalletAsset, 0, len(assets))
	for _, a := range assets {
		if containsAny(query, a.Name, a.Symbol) {
			out = append(out, a)
		}
	}
	return out
}

// SearchPositions keeps options positions whose pair, base or quote
// contains query, ignoring case.
func SearchPositions(positions []models.OptionsPosition, query string) []models.OptionsPosition {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return positions
	}

	out := make([]models.OptionsPosition, 0, len(positions))
	for _, p := range positions {
		if containsAny(query, p.Pair, p.BaseAsset, p.QuoteAsset) {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
