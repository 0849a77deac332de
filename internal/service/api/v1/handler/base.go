// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 요청을 바인딩하고 검증한 뒤 비교 엔진이나 카탈로그 서비스를 호출하고,
// 결과를 응답 모델로 바꿔 반환합니다. 서비스 에러는 httputil.FromError로 HTTP 에러가 됩니다.
package handler

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/catalog"
	"github.com/darkkaiser/shop-compare-server/internal/service/compare"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ComparisonEngine 검색과 상점 간 비교를 수행하는 엔진입니다.
type ComparisonEngine interface {
	Search(ctx context.Context, rawQuery string, identity contract.Identity) ([]compare.SearchResult, error)
	FilterAndSort(ctx context.Context, rawQuery, sortBy string, identity contract.Identity) ([]compare.ComparisonResult, error)
}

// CatalogManager 상점/상품 카탈로그를 조회하고 관리합니다.
type CatalogManager interface {
	ListShops(ctx context.Context) ([]contract.ShopSummary, error)
	GetShop(ctx context.Context, id int64) (catalog.ShopDetail, error)
	CreateShop(ctx context.Context, shop contract.Shop) (contract.Shop, error)
	UpdateShop(ctx context.Context, id int64, patch contract.ShopPatch) (contract.Shop, error)
	DeleteShop(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]contract.Product, error)
	GetProduct(ctx context.Context, id int64) (contract.Product, error)
	CreateProduct(ctx context.Context, p contract.Product) (contract.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch contract.ProductPatch) (contract.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	engine  ComparisonEngine
	catalog CatalogManager
}

// New Handler 인스턴스를 생성합니다. 의존성이 nil이면 panic이 발생합니다.
func New(engine ComparisonEngine, catalog CatalogManager) *Handler {
	if engine == nil {
		panic(constants.PanicMsgCompareServiceRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogServiceRequired)
	}

	return &Handler{
		engine:  engine,
		catalog: catalog,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
