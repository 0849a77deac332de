// Package catalog 관리자용 상점/상품 카탈로그 관리 서비스입니다.
//
// 입력값을 정리하고 검사한 뒤 저장소에 위임하며, 상점 이름이 바뀌거나 상점이 삭제되면
// 비교 결과 조립에 쓰이는 상점 이름 캐시를 무효화합니다.
package catalog

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
)

const component = "catalog.service"

// ShopDetail 상점 단건 조회 결과입니다. 판매 중인 상품 목록을 함께 담습니다.
type ShopDetail struct {
	contract.Shop
	Products []contract.Product
}

// Service 카탈로그 관리 서비스입니다.
type Service struct {
	store contract.CatalogWriter
	cache contract.ShopNameCache
}

// NewService 카탈로그 관리 서비스를 생성합니다. cache는 nil이어도 됩니다.
func NewService(store contract.CatalogWriter, cache contract.ShopNameCache) *Service {
	if store == nil {
		panic(ErrStoreNotInitialized)
	}
	return &Service{store: store, cache: cache}
}

func (s *Service) ListShops(ctx context.Context) ([]contract.ShopSummary, error) {
	return s.store.ListShops(ctx)
}

// GetShop 상점과 그 상점이 판매하는 상품 목록을 반환합니다.
func (s *Service) GetShop(ctx context.Context, id int64) (ShopDetail, error) {
	shop, err := s.store.GetShop(ctx, id)
	if err != nil {
		return ShopDetail{}, err
	}
	products, err := s.store.ListProductsByShop(ctx, id)
	if err != nil {
		return ShopDetail{}, err
	}
	return ShopDetail{Shop: shop, Products: products}, nil
}

func (s *Service) CreateShop(ctx context.Context, shop contract.Shop) (contract.Shop, error) {
	if err := normalizeShop(&shop); err != nil {
		return contract.Shop{}, err
	}
	if err := s.store.CreateShop(ctx, &shop); err != nil {
		return contract.Shop{}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"shop_id": shop.ID,
		"name":    shop.Name,
	}).Info("상점을 등록했습니다")

	return shop, nil
}

// UpdateShop 상점 정보를 부분 수정합니다. 이름이 바뀌면 캐시된 이름을 지웁니다.
func (s *Service) UpdateShop(ctx context.Context, id int64, patch contract.ShopPatch) (contract.Shop, error) {
	if err := normalizeShopPatch(&patch); err != nil {
		return contract.Shop{}, err
	}
	shop, err := s.store.UpdateShop(ctx, id, patch)
	if err != nil {
		return contract.Shop{}, err
	}
	if patch.Name != nil {
		s.invalidate(ctx, id)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"shop_id": shop.ID,
		"name":    shop.Name,
	}).Info("상점 정보를 수정했습니다")

	return shop, nil
}

// DeleteShop 상점을 삭제합니다. 판매 중인 상품이 남아 있으면 Conflict 에러를 반환합니다.
func (s *Service) DeleteShop(ctx context.Context, id int64) error {
	if err := s.store.DeleteShop(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	applog.WithComponentAndFields(component, applog.Fields{
		"shop_id": id,
	}).Info("상점을 삭제했습니다")

	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]contract.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (contract.Product, error) {
	return s.store.GetProduct(ctx, id)
}

// CreateProduct 상품을 등록합니다. 참조하는 상점이 없으면 InvalidInput 에러를 반환합니다.
func (s *Service) CreateProduct(ctx context.Context, p contract.Product) (contract.Product, error) {
	if err := normalizeProduct(&p); err != nil {
		return contract.Product{}, err
	}
	if err := s.store.CreateProduct(ctx, &p); err != nil {
		return contract.Product{}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": p.ID,
		"name":       p.Name,
		"shop_id":    p.ShopID,
	}).Info("상품을 등록했습니다")

	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, patch contract.ProductPatch) (contract.Product, error) {
	if err := normalizeProductPatch(&patch); err != nil {
		return contract.Product{}, err
	}
	p, err := s.store.UpdateProduct(ctx, id, patch)
	if err != nil {
		return contract.Product{}, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": p.ID,
		"name":       p.Name,
		"shop_id":    p.ShopID,
	}).Info("상품 정보를 수정했습니다")

	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": id,
	}).Info("상품을 삭제했습니다")

	return nil
}

// invalidate 캐시 삭제 실패는 경고만 남깁니다. 캐시 항목은 TTL이 지나면 사라집니다.
func (s *Service) invalidate(ctx context.Context, shopID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, shopID); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"shop_id": shopID,
			"error":   err,
		}).Warn("상점 이름 캐시 삭제에 실패했습니다")
	}
}
