package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/logger"
	"cryptoex/internal/services"
)

// CryptoHandler serves the live price proxy and the public landing page.
type CryptoHandler struct {
	marketService services.MarketServicer
	newsService   services.NewsServicer
}

// NewCryptoHandler creates a new CryptoHandler.
func NewCryptoHandler(marketService services.MarketServicer, newsService services.NewsServicer) *CryptoHandler {
	return &CryptoHandler{marketService: marketService, newsService: newsService}
}

// GetCrypto handles the price index proxy.
// @Summary     Top cryptocurrencies
// @Description Top assets by market cap in USD, passed through from the price index
// @Tags        crypto
// @Produce     json
// @Success     200 {array}  models.PriceAsset  "Market snapshot"
// @Failure     500 {object} FlatErrorResponse  "Upstream unavailable"
// @Router      /crypto [get]
func (h *CryptoHandler) GetCrypto(c *gin.Context) {
	assets, err := h.marketService.GetPrices(c.Request.Context())
	if err != nil {
		logger.Get().Errorw("failed to fetch cryptocurrency data",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusInternalServerError, FlatErrorResponse{Error: apperrors.ErrUpstreamUnavailable.Message})
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetLanding handles the public landing page.
// @Summary     Landing page
// @Description Top assets and headlines. Falls back to static featured coins when prices are unavailable
// @Tags        crypto
// @Produce     json
// @Success     200 {object} services.LandingView "Landing page"
// @Router      /v1/landing [get]
func (h *CryptoHandler) GetLanding(c *gin.Context) {
	view, err := h.newsService.GetLanding(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
