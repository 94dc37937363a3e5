// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cryptoex/internal/models"
)

// QuoteFilters are the values accepted by the quote_filter tag.
var QuoteFilters = []string{"all", "USDT", "BTC", "ETH"}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("market_kind", validateMarketKind)
	_ = v.RegisterValidation("quote_filter", validateQuoteFilter)
}

func validateMarketKind(fl validator.FieldLevel) bool {
	return models.MarketKind(fl.Field().String()).IsValid()
}

func validateQuoteFilter(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, q := range QuoteFilters {
		if s == q {
			return true
		}
	}
	return false
}
