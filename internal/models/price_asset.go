package models

// PriceAsset is a market-data record for one cryptocurrency as returned by the
// price index. Field names follow the upstream /coins/markets payload so the
// snapshot can be proxied through unmodified.
type PriceAsset struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             float64  `json:"current_price"`
	MarketCap                float64  `json:"market_cap"`
	MarketCapRank            int      `json:"market_cap_rank"`
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"`
	PriceChange24h           float64  `json:"price_change_24h"`
	TotalVolume              float64  `json:"total_volume"`
	High24h                  *float64 `json:"high_24h,omitempty"`
	Low24h                   *float64 `json:"low_24h,omitempty"`
	ATH                      *float64 `json:"ath,omitempty"`
	ATHDate                  string   `json:"ath_date,omitempty"`
	ATL                      *float64 `json:"atl,omitempty"`
	ATLDate                  string   `json:"atl_date,omitempty"`
}
