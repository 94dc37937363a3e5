package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/middleware"
	"cryptoex/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// newTestRouter returns an engine with the error middleware the API installs,
// so aborted requests render the same envelope as in production.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAbortWithError(t *testing.T) {
	setup := func(err error) *gin.Engine {
		r := newTestRouter()
		r.GET("/fail", func(c *gin.Context) { abortWithError(c, err) })
		return r
	}

	t.Run("uses_app_error_status_and_code", func(t *testing.T) {
		rec := doRequest(setup(apperrors.ErrUnknownMarketKind), "GET", "/fail", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_MARKET_KIND")
	})

	t.Run("unwraps_wrapped_app_error", func(t *testing.T) {
		err := apperrors.Wrap(apperrors.ErrUpstreamUnavailable, errors.New("status 429"))
		rec := doRequest(setup(err), "GET", "/fail", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "UPSTREAM_UNAVAILABLE")
		msg := result["error"].(map[string]interface{})["message"]
		if msg != "Failed to fetch cryptocurrency data" {
			t.Errorf("unexpected message %q", msg)
		}
	})

	t.Run("stops_later_handlers", func(t *testing.T) {
		r := newTestRouter()
		reached := false
		r.GET("/fail",
			func(c *gin.Context) { abortWithError(c, apperrors.ErrNotFound) },
			func(c *gin.Context) { reached = true },
		)

		rec := doRequest(r, "GET", "/fail", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if reached {
			t.Error("handler after abort was called")
		}
	})

	t.Run("hides_unexpected_errors", func(t *testing.T) {
		rec := doRequest(setup(errors.New("secret detail")), "GET", "/fail", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
		if strings.Contains(rec.Body.String(), "secret detail") {
			t.Errorf("internal error leaked: %s", rec.Body.String())
		}
	})
}

func TestBindPage(t *testing.T) {
	r := newTestRouter()
	r.GET("/page", func(c *gin.Context) {
		page, err := bindPage(c)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})

	t.Run("parses_values", func(t *testing.T) {
		rec := doRequest(r, "GET", "/page?page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["Page"].(float64) != 2 || result["PageSize"].(float64) != 5 {
			t.Errorf("unexpected page request: %v", result)
		}
	})

	t.Run("rejects_page_size_over_limit", func(t *testing.T) {
		rec := doRequest(r, "GET", "/page?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects_page_over_limit", func(t *testing.T) {
		rec := doRequest(r, "GET", "/page?page=9223372036854775807", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects_non_numeric_page", func(t *testing.T) {
		rec := doRequest(r, "GET", "/page?page=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
