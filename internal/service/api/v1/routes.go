// Package v1 /api/v1 경로 하위의 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/search        - 카탈로그 검색 (인증 선택)
//   - GET  /api/v1/filter_sort   - 상점 간 비교 및 정렬 (인증 선택)
//   - GET  /api/v1/shops[/:id], /api/v1/products[/:id]        - 카탈로그 조회
//   - POST/PUT/DELETE /api/v1/shops[/:id], /api/v1/products[/:id] - 카탈로그 관리 (관리자)
//
// 루트 경로의 /search, /filter_sort는 이전 클라이언트를 위한 레거시 경로이며 deprecated 헤더가 붙습니다.
package v1

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/middleware"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 미들웨어 적용:
//   - 모든 엔드포인트: OptionalAuthentication (토큰이 있으면 검증)
//   - 변경 엔드포인트: RequireAdmin, ValidateContentType(JSON)
//   - 레거시 엔드포인트: DeprecatedEndpoint
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	authMiddleware := middleware.OptionalAuthentication(authenticator)
	adminOnly := middleware.RequireAdmin()
	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	v1Group := e.Group("/api/v1", authMiddleware)

	// 비교 엔진
	v1Group.GET("/search", h.SearchHandler)
	v1Group.GET("/filter_sort", h.FilterSortHandler)

	// 카탈로그 조회
	v1Group.GET("/shops", h.ListShopsHandler)
	v1Group.GET("/shops/:id", h.GetShopHandler)
	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:id", h.GetProductHandler)

	// 카탈로그 관리
	v1Group.POST("/shops", h.CreateShopHandler, adminOnly, jsonOnly)
	v1Group.PUT("/shops/:id", h.UpdateShopHandler, adminOnly, jsonOnly)
	v1Group.DELETE("/shops/:id", h.DeleteShopHandler, adminOnly)
	v1Group.POST("/products", h.CreateProductHandler, adminOnly, jsonOnly)
	v1Group.PUT("/products/:id", h.UpdateProductHandler, adminOnly, jsonOnly)
	v1Group.DELETE("/products/:id", h.DeleteProductHandler, adminOnly)

	// 레거시 엔드포인트
	e.GET("/search", h.SearchHandler, authMiddleware, middleware.DeprecatedEndpoint("/api/v1/search"))
	e.GET("/filter_sort", h.FilterSortHandler, authMiddleware, middleware.DeprecatedEndpoint("/api/v1/filter_sort"))
}
