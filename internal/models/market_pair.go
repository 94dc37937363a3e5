package models

// MarketKind tags a market pair as spot, futures, or options.
type MarketKind string

const (
	MarketKindSpot    MarketKind = "spot"
	MarketKindFutures MarketKind = "futures"
	MarketKindOptions MarketKind = "options"
)

// IsValid reports whether k is one of the known market kinds.
func (k MarketKind) IsValid() bool {
	switch k {
	case MarketKindSpot, MarketKindFutures, MarketKindOptions:
		return true
	}
	return false
}

// OptionType is the right carried by an options contract.
type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// MarketPair is a tradeable base/quote combination with 24h statistics.
// Leverage is only set for futures; StrikePrice, ExpiryDate and OptionType
// only for options.
type MarketPair struct {
	Pair               string     `yaml:"pair" json:"pair"`
	BaseAsset          string     `yaml:"base_asset" json:"baseAsset"`
	QuoteAsset         string     `yaml:"quote_asset" json:"quoteAsset"`
	LastPrice          float64    `yaml:"last_price" json:"lastPrice"`
	PriceChangePercent float64    `yaml:"price_change_percent" json:"priceChangePercent"`
	Volume             float64    `yaml:"volume" json:"volume"`
	High               float64    `yaml:"high" json:"high"`
	Low                float64    `yaml:"low" json:"low"`
	Market             MarketKind `yaml:"market" json:"market"`
	Leverage           string     `yaml:"leverage,omitempty" json:"leverage,omitempty"`
	ExpiryDate         string     `yaml:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	StrikePrice        float64    `yaml:"strike_price,omitempty" json:"strikePrice,omitempty"`
	OptionType         OptionType `yaml:"option_type,omitempty" json:"optionType,omitempty"`
}

// PairLabel builds the composite BASE/QUOTE label.
func PairLabel(base, quote string) string {
	return base + "/" + quote
}

// OptionsPosition is a mock position held in an options market.
type OptionsPosition struct {
	ID            string     `json:"id"`
	Pair          string     `json:"pair"`
	BaseAsset     string     `json:"baseAsset"`
	QuoteAsset    string     `json:"quoteAsset"`
	StrikePrice   float64    `json:"strikePrice"`
	ExpiryDate    string     `json:"expiryDate"`
	OptionType    OptionType `json:"optionType"`
	Quantity      int        `json:"quantity"`
	AveragePrice  float64    `json:"averagePrice"`
	CurrentPrice  float64    `json:"currentPrice"`
	Value         float64    `json:"value"`
	PnL           float64    `json:"pnl"`
	PnLPercentage float64    `json:"pnlPercentage"`
}
