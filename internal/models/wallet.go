package models

// WalletAsset is a balance line in the mock wallet.
// Consumers expect Balance == AvailableBalance + InOrder; the seed data keeps
// that true but nothing enforces it.
type WalletAsset struct {
	ID               string  `yaml:"id" json:"id"`
	Name             string  `yaml:"name" json:"name"`
	Symbol           string  `yaml:"symbol" json:"symbol"`
	Balance          float64 `yaml:"balance" json:"balance"`
	AvailableBalance float64 `yaml:"available_balance" json:"availableBalance"`
	InOrder          float64 `yaml:"in_order" json:"inOrder"`
	Value            float64 `yaml:"value" json:"value"`
	Image            string  `yaml:"image" json:"image"`
}

// AccountBalances are the fixed headline figures shown by the account views.
type AccountBalances struct {
	EstimatedBalance float64     `yaml:"estimated_balance" json:"estimatedBalance"`
	SpotBalance      float64     `yaml:"spot_balance" json:"spotBalance"`
	OptionsShare     float64     `yaml:"options_share" json:"optionsShare"`
	OverviewBalance  float64     `yaml:"overview_balance" json:"overviewBalance"`
	DailyChange      DailyChange `yaml:"daily_change" json:"dailyChange"`
}

// DailyChange is the 24h movement of the estimated balance.
type DailyChange struct {
	Value      float64 `yaml:"value" json:"value"`
	Percentage float64 `yaml:"percentage" json:"percentage"`
}

// AssetAllocation is one slice of the assets overview distribution.
type AssetAllocation struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}
