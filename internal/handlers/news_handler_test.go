package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
)

func setupNewsRouter(handler *NewsHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/news", handler.ListNews)
	return r
}

func TestNewsHandler_ListNews(t *testing.T) {
	t.Run("returns_200_with_data", func(t *testing.T) {
		published := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
		svc := &mockNewsService{
			listNewsFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
				resp := pagination.NewPageResponse([]models.NewsItem{
					{ID: "news-1", Title: "Bitcoin rallies", Source: "CryptoNews", PublishedAt: published},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupNewsRouter(NewNewsHandler(svc))

		rec := doRequest(r, "GET", "/news", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected total_items=1, got %v", result["total_items"])
		}
		item := result["data"].([]interface{})[0].(map[string]interface{})
		if item["publishedAt"] != "2026-03-01T11:00:00Z" {
			t.Errorf("unexpected publishedAt %v", item["publishedAt"])
		}
	})

	t.Run("returns_400_on_invalid_page_size", func(t *testing.T) {
		r := setupNewsRouter(NewNewsHandler(&mockNewsService{}))

		rec := doRequest(r, "GET", "/news?page_size=0x1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
