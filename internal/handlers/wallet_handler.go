package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptoex/internal/services"
)

// WalletHandler handles wallet, transaction and asset account requests.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetWallet handles the wallet page.
// @Summary     Wallet
// @Description Wallet balances, recent transactions and total balance
// @Tags        wallet
// @Produce     json
// @Param       search query string false "Case-insensitive match on name or symbol"
// @Success     200 {object} services.WalletView "Wallet"
// @Failure     400 {object} ErrorResponse       "Invalid input"
// @Router      /v1/wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	search, err := bindSearch(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.walletService.GetWallet(search)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListTransactions handles the transaction history.
// @Summary     List transactions
// @Description Paginated deposits, withdrawals and transfers
// @Tags        wallet
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /v1/transactions [get]
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.walletService.ListTransactions(page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOverview handles the assets overview.
// @Summary     Assets overview
// @Description Total balance, asset distribution and account split
// @Tags        assets
// @Produce     json
// @Success     200 {object} services.OverviewView "Overview"
// @Router      /v1/assets/overview [get]
func (h *WalletHandler) GetOverview(c *gin.Context) {
	view, err := h.walletService.GetOverview()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetSpotAssets handles the spot account.
// @Summary     Spot account
// @Description Spot balances with optional search
// @Tags        assets
// @Produce     json
// @Param       search query string false "Case-insensitive match on name or symbol"
// @Success     200 {object} services.SpotView "Spot account"
// @Failure     400 {object} ErrorResponse     "Invalid input"
// @Router      /v1/assets/spot [get]
func (h *WalletHandler) GetSpotAssets(c *gin.Context) {
	search, err := bindSearch(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.walletService.GetSpotAssets(search)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetOptionsAssets handles the options account.
// @Summary     Options account
// @Description Open options positions with optional search
// @Tags        assets
// @Produce     json
// @Param       search query string false "Case-insensitive match on pair, base or quote"
// @Success     200 {object} services.OptionsView "Options account"
// @Failure     400 {object} ErrorResponse        "Invalid input"
// @Router      /v1/assets/options [get]
func (h *WalletHandler) GetOptionsAssets(c *gin.Context) {
	search, err := bindSearch(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.walletService.GetOptionsAssets(search)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
