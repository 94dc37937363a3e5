package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("memory", "hit"))
	CacheLookup("memory", true)
	CacheLookup("memory", false)

	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("memory", "hit")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("memory", "miss")), 1.0)
}

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("coingecko", "error"))
	ObserveUpstream("coingecko", "error", 150*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("coingecko", "error")))
}

func TestDroppedHoldings(t *testing.T) {
	before := testutil.ToFloat64(droppedHoldingsTotal)
	DroppedHoldings(2)
	assert.Equal(t, before+2, testutil.ToFloat64(droppedHoldingsTotal))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/api/crypto", "200", 10*time.Millisecond)
	PollTick("dashboard", "applied")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "cryptoex_http_requests_total"), "missing http counter")
	assert.True(t, strings.Contains(text, "cryptoex_poll_ticks_total"), "missing poll counter")
	assert.True(t, strings.Contains(text, "go_goroutines"), "missing runtime collector")
}
