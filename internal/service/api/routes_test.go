package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/version"
	systemhandler "github.com/darkkaiser/shop-compare-server/internal/service/api/handler/system"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/model/system"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestHandler() *systemhandler.Handler {
	return systemhandler.New(memory.New(), nil, version.Info{
		Version:     "test-version",
		BuildDate:   "2026-10-01",
		BuildNumber: "1",
	})
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	t.Run("지표 수집기가 있는 경우", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		RegisterRoutes(e, setupTestHandler(), metrics.New(prometheus.NewRegistry()))

		for _, path := range []string{"/health", "/version", "/metrics", "/swagger/*"} {
			assert.True(t, hasRoute(e, http.MethodGet, path), "GET %s 라우트가 등록되어야 합니다", path)
		}
	})

	t.Run("지표 수집기가 없는 경우", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		RegisterRoutes(e, setupTestHandler(), nil)

		assert.True(t, hasRoute(e, http.MethodGet, "/health"))
		assert.False(t, hasRoute(e, http.MethodGet, "/metrics"))
	})
}

func TestRegisterRoutes_응답(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	m.SearchRecorded(1)

	e := echo.New()
	RegisterRoutes(e, setupTestHandler(), m)

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("헬스체크", func(t *testing.T) {
		t.Parallel()

		rec := serve("/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
	})

	t.Run("버전", func(t *testing.T) {
		t.Parallel()

		rec := serve("/version")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp system.VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "test-version", resp.Version)
	})

	t.Run("Prometheus 지표", func(t *testing.T) {
		t.Parallel()

		rec := serve("/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "shopcmp_search_records_created_total 1"))
	})
}
