package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
	"cryptoex/internal/services"
)

// --- mock portfolio service ---

type mockPortfolioService struct {
	getPortfolioFn func(ctx context.Context) (*services.PortfolioView, error)
	getDashboardFn func(ctx context.Context) (*services.DashboardView, error)
	listOrdersFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.Order], error)
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

func (m *mockPortfolioService) GetPortfolio(ctx context.Context) (*services.PortfolioView, error) {
	if m.getPortfolioFn != nil {
		return m.getPortfolioFn(ctx)
	}
	return &services.PortfolioView{}, nil
}

func (m *mockPortfolioService) GetDashboard(ctx context.Context) (*services.DashboardView, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(ctx)
	}
	return &services.DashboardView{}, nil
}

func (m *mockPortfolioService) ListOrders(page pagination.PageRequest) (*pagination.PageResponse[models.Order], error) {
	if m.listOrdersFn != nil {
		return m.listOrdersFn(page)
	}
	resp := pagination.NewPageResponse([]models.Order{}, 1, 20, 0)
	return &resp, nil
}

// --- router setup ---

func setupPortfolioRouter(handler *PortfolioHandler) *gin.Engine {
	r := newTestRouter()
	r.GET("/dashboard", handler.GetDashboard)
	r.GET("/portfolio", handler.GetPortfolio)
	r.GET("/orders", handler.ListOrders)
	return r
}

// --- tests ---

func TestPortfolioHandler_GetDashboard(t *testing.T) {
	t.Run("returns_200_with_display_strings", func(t *testing.T) {
		svc := &mockPortfolioService{
			getDashboardFn: func(_ context.Context) (*services.DashboardView, error) {
				return &services.DashboardView{
					EstimatedBalance: 6302560,
					DailyChange:      models.DailyChange{Value: 1250, Percentage: 0.02},
					Display: services.DashboardDisplay{
						EstimatedBalance: "$6,302,560.00",
						DailyChangePct:   "+0.02%",
					},
				}, nil
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["estimatedBalance"].(float64) != 6302560 {
			t.Errorf("expected estimatedBalance=6302560, got %v", result["estimatedBalance"])
		}
		display := result["display"].(map[string]interface{})
		if display["estimatedBalance"] != "$6,302,560.00" {
			t.Errorf("unexpected display balance %v", display["estimatedBalance"])
		}
	})

	t.Run("returns_500_when_upstream_unavailable", func(t *testing.T) {
		svc := &mockPortfolioService{
			getDashboardFn: func(_ context.Context) (*services.DashboardView, error) {
				return nil, apperrors.Wrap(apperrors.ErrUpstreamUnavailable, errors.New("timeout"))
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UPSTREAM_UNAVAILABLE")
	})
}

func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	t.Run("returns_200_with_totals_and_missing", func(t *testing.T) {
		svc := &mockPortfolioService{
			getPortfolioFn: func(_ context.Context) (*services.PortfolioView, error) {
				return &services.PortfolioView{
					Assets:     []models.PortfolioAsset{{ID: "bitcoin", Amount: 0.5, CurrentPrice: 50000, Value: 25000}},
					TotalValue: 25000,
					TotalPnL:   5000,
					Missing:    []string{"cardano"},
				}, nil
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/portfolio", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["totalValue"].(float64) != 25000 {
			t.Errorf("expected totalValue=25000, got %v", result["totalValue"])
		}
		missing := result["missing"].([]interface{})
		if len(missing) != 1 || missing[0] != "cardano" {
			t.Errorf("expected missing=[cardano], got %v", missing)
		}
	})

	t.Run("returns_500_when_upstream_unavailable", func(t *testing.T) {
		svc := &mockPortfolioService{
			getPortfolioFn: func(_ context.Context) (*services.PortfolioView, error) {
				return nil, apperrors.ErrUpstreamUnavailable
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/portfolio", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UPSTREAM_UNAVAILABLE")
	})
}

func TestPortfolioHandler_ListOrders(t *testing.T) {
	t.Run("returns_200_with_data", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		svc := &mockPortfolioService{
			listOrdersFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.Order], error) {
				resp := pagination.NewPageResponse([]models.Order{
					{ID: "ord-1", Pair: "BTC/USDT", Type: models.OrderSideBuy, Price: 50000, Amount: 0.1, Total: 5000, Date: now},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/orders", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("expected 1 order, got %d", len(data))
		}
		if data[0].(map[string]interface{})["total"].(float64) != 5000 {
			t.Errorf("unexpected order: %v", data[0])
		}
	})

	t.Run("passes_pagination_to_service", func(t *testing.T) {
		var got pagination.PageRequest
		svc := &mockPortfolioService{
			listOrdersFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.Order], error) {
				got = page
				resp := pagination.NewPageResponse([]models.Order{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupPortfolioRouter(NewPortfolioHandler(svc))

		rec := doRequest(r, "GET", "/orders?page=3&page_size=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Page != 3 || got.PageSize != 2 {
			t.Errorf("expected page=3 page_size=2, got %+v", got)
		}
	})

	t.Run("returns_400_on_invalid_page", func(t *testing.T) {
		r := setupPortfolioRouter(NewPortfolioHandler(&mockPortfolioService{}))

		rec := doRequest(r, "GET", "/orders?page=0&page_size=101", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
