package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptoex/internal/services"
)

// NewsHandler handles headline requests.
type NewsHandler struct {
	newsService services.NewsServicer
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService services.NewsServicer) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// ListNews handles the headline feed.
// @Summary     List news
// @Description Paginated headlines, newest first
// @Tags        news
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.NewsItem] "Paginated news"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /v1/news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.newsService.ListNews(page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
