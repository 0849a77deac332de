package api

import (
	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: /health, /version (인증 불필요)
//   - Prometheus 지표: /metrics
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, h *system.Handler, m *metrics.Metrics) {
	registerSystemRoutes(e, h)
	registerMetricsRoutes(e, m)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

// registerMetricsRoutes 지표 수집기가 없으면 /metrics를 등록하지 않습니다.
func registerMetricsRoutes(e *echo.Echo, m *metrics.Metrics) {
	if m == nil {
		return
	}
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
