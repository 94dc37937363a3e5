package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptoex/internal/services"
)

// PortfolioHandler handles dashboard, portfolio and order history requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetDashboard handles the dashboard summary.
// @Summary     Dashboard
// @Description Valued portfolio, recent orders, estimated balance and daily change
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} services.DashboardView "Dashboard"
// @Failure     500 {object} ErrorResponse          "Upstream unavailable"
// @Router      /v1/dashboard [get]
func (h *PortfolioHandler) GetDashboard(c *gin.Context) {
	view, err := h.portfolioService.GetDashboard(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPortfolio handles the valued portfolio.
// @Summary     Portfolio
// @Description Holdings valued at live prices with totals. Holdings without a price are listed in missing
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} services.PortfolioView "Portfolio"
// @Failure     500 {object} ErrorResponse          "Upstream unavailable"
// @Router      /v1/portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	view, err := h.portfolioService.GetPortfolio(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListOrders handles the order history.
// @Summary     List orders
// @Description Paginated order history, newest first
// @Tags        portfolio
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Order] "Paginated orders"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /v1/orders [get]
func (h *PortfolioHandler) ListOrders(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.portfolioService.ListOrders(page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
