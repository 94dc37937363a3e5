package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/generator"
	"cryptoex/internal/models"
	"cryptoex/internal/presenter"
	"cryptoex/internal/services"
)

// MarketHandler handles market catalog requests.
type MarketHandler struct {
	marketService services.MarketServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// MarketQuery represents the query parameters of the markets page.
type MarketQuery struct {
	Kind   string `form:"kind" binding:"omitempty,market_kind"`
	Quote  string `form:"quote" binding:"omitempty,quote_filter"`
	Search string `form:"search" binding:"omitempty,max=64"`
}

// MarketsResponse is the markets page payload.
type MarketsResponse struct {
	Markets []models.MarketPair   `json:"markets"`
	Rows    []presenter.MarketRow `json:"rows"`
}

// ListMarkets handles listing trading pairs.
// @Summary     List markets
// @Description List spot, futures or options pairs filtered by quote asset and search text
// @Tags        markets
// @Produce     json
// @Param       kind   query string false "Market kind (spot, futures, options; default spot)"
// @Param       quote  query string false "Quote asset (all, USDT, BTC, ETH)"
// @Param       search query string false "Case-insensitive match on pair, base or quote"
// @Success     200 {object} MarketsResponse "Matching markets"
// @Failure     400 {object} ErrorResponse   "Invalid input"
// @Router      /v1/markets [get]
func (h *MarketHandler) ListMarkets(c *gin.Context) {
	var q MarketQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	markets, err := h.marketService.ListMarkets(generator.MarketFilter{
		Kind:   models.MarketKind(q.Kind),
		Quote:  q.Quote,
		Search: q.Search,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MarketsResponse{Markets: markets, Rows: presenter.Markets(markets)})
}
