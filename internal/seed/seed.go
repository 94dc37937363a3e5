// Package seed loads the static tables the mock exchange is built from:
// holdings, the market catalog, wallet balances, histories and news.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cryptoex/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// OrderSeed is an order history entry whose date is Age before the time of
// generation.
type OrderSeed struct {
	ID        string             `yaml:"id"`
	Pair      string             `yaml:"pair"`
	Side      models.OrderSide   `yaml:"side"`
	OrderType models.OrderType   `yaml:"order_type"`
	Price     float64            `yaml:"price"`
	Amount    float64            `yaml:"amount"`
	Status    models.OrderStatus `yaml:"status"`
	Age       time.Duration      `yaml:"age"`
}

// TransactionSeed is a wallet transaction entry dated Age before generation.
type TransactionSeed struct {
	ID     string                   `yaml:"id"`
	Type   models.TransactionType   `yaml:"type"`
	Asset  string                   `yaml:"asset"`
	Amount float64                  `yaml:"amount"`
	Status models.TransactionStatus `yaml:"status"`
	Age    time.Duration            `yaml:"age"`
	Fee    *float64                 `yaml:"fee,omitempty"`
	TxID   string                   `yaml:"txid,omitempty"`
	From   string                   `yaml:"from,omitempty"`
	To     string                   `yaml:"to,omitempty"`
}

// NewsSeed is a headline published Age before generation.
type NewsSeed struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	URL         string        `yaml:"url"`
	Source      string        `yaml:"source"`
	Image       string        `yaml:"image"`
	Category    string        `yaml:"category"`
	Age         time.Duration `yaml:"age"`
}

// Data is the full set of seed tables.
type Data struct {
	Holdings        []models.Holding       `yaml:"holdings"`
	Markets         []models.MarketPair    `yaml:"markets"`
	Wallet          []models.WalletAsset   `yaml:"wallet"`
	Transactions    []TransactionSeed      `yaml:"transactions"`
	Orders          []OrderSeed            `yaml:"orders"`
	News            []NewsSeed             `yaml:"news"`
	Balances        models.AccountBalances `yaml:"balances"`
	LandingFallback []models.FeaturedCoin  `yaml:"landing_fallback"`
}

// Default returns the embedded seed tables.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads seed tables from path. An empty path yields the embedded
// defaults.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates YAML seed tables.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks the enum-typed fields and the pair labels of the catalog.
func (d *Data) Validate() error {
	for i, m := range d.Markets {
		if !m.Market.IsValid() {
			return fmt.Errorf("markets[%d] %s: unknown market kind %q", i, m.Pair, m.Market)
		}
		if m.Pair != models.PairLabel(m.BaseAsset, m.QuoteAsset) {
			return fmt.Errorf("markets[%d]: pair %q does not match %s/%s", i, m.Pair, m.BaseAsset, m.QuoteAsset)
		}
		if m.Market == models.MarketKindOptions && m.OptionType != models.OptionTypeCall && m.OptionType != models.OptionTypePut {
			return fmt.Errorf("markets[%d] %s: options pair needs option_type call or put", i, m.Pair)
		}
	}
	for i, o := range d.Orders {
		if o.Side != models.OrderSideBuy && o.Side != models.OrderSideSell {
			return fmt.Errorf("orders[%d] %s: unknown side %q", i, o.ID, o.Side)
		}
		if o.Age < 0 {
			return fmt.Errorf("orders[%d] %s: negative age", i, o.ID)
		}
	}
	for i, tx := range d.Transactions {
		if tx.Age < 0 {
			return fmt.Errorf("transactions[%d] %s: negative age", i, tx.ID)
		}
	}
	for i, n := range d.News {
		if n.Age < 0 {
			return fmt.Errorf("news[%d] %s: negative age", i, n.ID)
		}
	}
	return nil
}
