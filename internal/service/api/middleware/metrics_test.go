package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/v1/shops/:id", func(c echo.Context) error {
		if c.Param("id") == "404" {
			return echo.ErrNotFound
		}
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/api/v1/shops/1", "/api/v1/shops/2", "/api/v1/shops/404"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `shopcmp_http_requests_total{endpoint="/api/v1/shops/:id",method="GET",status="2xx"} 2`)
	assert.Contains(t, body, `shopcmp_http_requests_total{endpoint="/api/v1/shops/:id",method="GET",status="4xx"} 1`)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/no/such/route", nil), httptest.NewRecorder())

	err := Metrics(m)(func(c echo.Context) error {
		return echo.ErrNotFound
	})(c)
	require.NoError(t, err)

	body := scrape(t, m)
	assert.Contains(t, body, `shopcmp_http_requests_total{endpoint="unmatched",method="GET",status="4xx"} 1`)
	assert.NotContains(t, body, "/no/such/route")
}

func TestMetrics_NilMetrics(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := Metrics(nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
