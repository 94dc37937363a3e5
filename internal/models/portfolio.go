package models

// Holding is a seed entry describing a quantity and historical acquisition
// price for one asset. It is joined against a price snapshot by ID.
type Holding struct {
	ID          string  `yaml:"id" json:"id"`
	Amount      float64 `yaml:"amount" json:"amount"`
	AvgBuyPrice float64 `yaml:"avg_buy_price" json:"avgBuyPrice"`
}

// PortfolioAsset is a holding valued at the current snapshot price.
type PortfolioAsset struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	Amount                   float64 `json:"amount"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"currentPrice"`
	PriceChangePercentage24h float64 `json:"priceChangePercentage24h"`
	Value                    float64 `json:"value"`
	Percentage               float64 `json:"percentage"`
	PnL                      float64 `json:"pnl"`
	PnLPercentage            float64 `json:"pnlPercentage"`
	AverageBuyPrice          float64 `json:"averageBuyPrice"`
}

// CostBasis returns amount * average buy price.
func (p PortfolioAsset) CostBasis() float64 {
	return p.Amount * p.AverageBuyPrice
}
