package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoex/internal/models"
	"cryptoex/internal/seed"
)

func pairsOf(markets []models.MarketPair) []string {
	out := make([]string, 0, len(markets))
	for _, m := range markets {
		out = append(out, m.Pair)
	}
	return out
}

func TestFilterMarkets(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)
	catalog := MarketPairs(data.Markets)

	t.Run("no filter returns everything", func(t *testing.T) {
		assert.Len(t, FilterMarkets(catalog, MarketFilter{}), len(catalog))
	})

	t.Run("kind", func(t *testing.T) {
		got := FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindFutures})
		assert.Equal(t, []string{"BTC/USDT", "ETH/USDT", "SOL/USDT"}, pairsOf(got))
	})

	t.Run("quote all", func(t *testing.T) {
		got := FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindSpot, Quote: QuoteAll})
		assert.Len(t, got, 15)
	})

	t.Run("quote BTC", func(t *testing.T) {
		got := FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindSpot, Quote: "BTC"})
		assert.Equal(t, []string{"ETH/BTC", "BNB/BTC", "SOL/BTC"}, pairsOf(got))
	})

	t.Run("search is case insensitive over pair base and quote", func(t *testing.T) {
		got := FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindSpot, Search: "sol"})
		assert.Equal(t, []string{"SOL/USDT", "SOL/BTC"}, pairsOf(got))

		got = FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindSpot, Search: "eth"})
		assert.Equal(t, []string{"ETH/USDT", "ETH/BTC", "LINK/ETH", "UNI/ETH"}, pairsOf(got))
	})

	t.Run("quote then search", func(t *testing.T) {
		got := FilterMarkets(catalog, MarketFilter{Kind: models.MarketKindSpot, Quote: "ETH", Search: "uni"})
		assert.Equal(t, []string{"UNI/ETH"}, pairsOf(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterMarkets(catalog, MarketFilter{Search: "zzz"}))
	})
}

func TestSearchWallet(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)

	assert.Len(t, SearchWallet(data.Wallet, ""), len(data.Wallet))

	got := SearchWallet(data.Wallet, "TeTh")
	require.Len(t, got, 1)
	assert.Equal(t, "USDT", got[0].Symbol)

	got = SearchWallet(data.Wallet, "ada")
	require.Len(t, got, 1)
	assert.Equal(t, "Cardano", got[0].Name)
}

func TestSearchPositions(t *testing.T) {
	positions := []models.OptionsPosition{
		{Pair: "BTC/USDT", BaseAsset: "BTC", QuoteAsset: "USDT"},
		{Pair: "ETH/USDT", BaseAsset: "ETH", QuoteAsset: "USDT"},
	}

	assert.Len(t, SearchPositions(positions, "usdt"), 2)
	assert.Len(t, SearchPositions(positions, "eth"), 1)
	assert.Empty(t, SearchPositions(positions, "sol"))
}
