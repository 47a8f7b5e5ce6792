package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saudaMarket/domain"
	"saudaMarket/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func serveWithMetrics(t *testing.T, method string, handler echo.HandlerFunc) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Metrics()(handler)(c); err != nil {
		t.Fatalf("metrics middleware returned error: %v", err)
	}
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "200"))

	serveWithMetrics(t, http.MethodGet, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "200"))
	if after != before+1 {
		t.Errorf("GET/200 count = %v, want %v", after, before+1)
	}
}

func TestMetricsMiddlewareRecordsErrorStatus(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodPost, "409"))

	serveWithMetrics(t, http.MethodPost, func(c echo.Context) error {
		return domain.ConflictError("insufficient stock for product 1")
	})

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodPost, "409"))
	if after != before+1 {
		t.Errorf("POST/409 count = %v, want %v", after, before+1)
	}
}
