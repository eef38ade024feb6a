package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/offer-finder/internal/api/middleware"
	"github.com/donaldgifford/offer-finder/internal/metrics"
)

// Not parallel: the metrics are process-global.
func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "labels by route pattern",
			method: http.MethodGet,
			route:  "/api/v1/items/:itemId",
			target: "/api/v1/items/0b6f9a2e",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 404 from a handler",
			method: http.MethodGet,
			route:  "/api/v1/stores/:domain",
			target: "/api/v1/stores/unknown.example",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/items/find-alternatives",
			target: "/api/v1/items/find-alternatives",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusTooManyRequests)
			},
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		gauge  prometheus.Gauge
		want   float64
	}{
		{name: "healthz up", path: "/healthz", status: http.StatusOK, gauge: metrics.HealthzUp, want: 1},
		{name: "readyz down", path: "/readyz", status: http.StatusServiceUnavailable, gauge: metrics.ReadyzUp, want: 0},
		{name: "readyz up", path: "/readyz", status: http.StatusOK, gauge: metrics.ReadyzUp, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.path, strconv.Itoa(tt.status),
			))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.InDelta(t, tt.want, testutil.ToFloat64(tt.gauge), 0.0001)
			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.path, strconv.Itoa(tt.status),
			))
			assert.InDelta(t, before, after, 0.0001, "probe paths are not counted")
		})
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/api/v1/items", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
		http.MethodGet, "unmatched", "404",
	))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wp-login.php", http.NoBody))
	require.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
		http.MethodGet, "unmatched", "404",
	))
	assert.InDelta(t, before+1, after, 0.0001)
}
