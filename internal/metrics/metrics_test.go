package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/retail-pos/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	return rr.Body.String()
}

func TestMiddleware(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := metrics.Middleware(mux)

	// Act
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))

	// Assert
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, scrape(t), `http_requests_total{code="418",method="GET",path="/api/v1/products/abc"}`)
}

func TestPOSCounters(t *testing.T) {
	// Act
	metrics.RecordCheckout(metrics.CheckoutStockConflict)
	metrics.RecordNotification("email", "failed")
	metrics.AddSaleRevenue(118)

	// Assert
	body := scrape(t)
	assert.Contains(t, body, `pos_checkouts_total{outcome="stock_conflict"}`)
	assert.Contains(t, body, `pos_notifications_total{channel="email",status="failed"}`)
	assert.True(t, strings.Contains(body, "pos_sale_revenue_total 118"))
}
