package compare

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/shopspring/decimal"
)

// ComparisonResult 호출자에게 돌려주는 비교 결과 한 건입니다.
// 상점 이름은 스냅샷이 아니라 현재 Shop 엔티티에서 가져옵니다.
type ComparisonResult struct {
	ProductName string

	ShopXName         string
	ShopXCost         decimal.Decimal
	ShopXRating       decimal.Decimal
	ShopXDeliveryCost decimal.Decimal
	ShopXPaymentMode  string

	ShopYName         string
	ShopYCost         decimal.Decimal
	ShopYRating       decimal.Decimal
	ShopYDeliveryCost decimal.Decimal
	ShopYPaymentMode  string

	MarginalBenefit decimal.Decimal
	CostBenefit     decimal.Decimal
}

// SearchResult 카탈로그 검색 결과 한 건입니다.
type SearchResult struct {
	ProductName   string
	ProductPrice  decimal.Decimal
	ProductRating decimal.Decimal
	ProductURL    string
	DeliveryCost  decimal.Decimal
	ShopName      string
	PaymentMode   string
	ShopID        int64
}

// shopNames 한 요청 동안 상점 이름을 조회합니다.
// 요청 내 메모 → 캐시 → 저장소 순으로 찾고, 저장소에서 찾은 이름은 캐시에 채워 둡니다.
type shopNames struct {
	s    *Service
	tx   contract.CatalogReader
	memo map[int64]string
}

func (s *Service) newShopNames(tx contract.CatalogReader) *shopNames {
	return &shopNames{s: s, tx: tx, memo: make(map[int64]string)}
}

func (n *shopNames) lookup(ctx context.Context, id int64) (string, error) {
	if name, ok := n.memo[id]; ok {
		return name, nil
	}

	if n.s.cache != nil {
		name, ok, err := n.s.cache.Get(ctx, id)
		switch {
		case err != nil:
			// 캐시 장애는 응답 실패로 이어지지 않는다.
			n.s.metrics.ShopNameCacheLookup("error")
			applog.WithComponentAndFields(component, applog.Fields{
				"shop_id": id,
				"error":   err,
			}).Warn("상점 이름 캐시 조회에 실패하여 저장소에서 조회합니다")
		case ok:
			n.s.metrics.ShopNameCacheLookup("hit")
			n.memo[id] = name
			return name, nil
		default:
			n.s.metrics.ShopNameCacheLookup("miss")
		}
	}

	shop, err := n.tx.GetShop(ctx, id)
	if err != nil {
		return "", newErrStoreRead(err, "상점")
	}
	n.memo[id] = shop.Name

	if n.s.cache != nil {
		if err := n.s.cache.Set(ctx, id, shop.Name); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"shop_id": id,
				"error":   err,
			}).Warn("상점 이름 캐시 저장에 실패했습니다")
		}
	}

	return shop.Name, nil
}

// assembleComparisons 정렬된 비교 레코드를 응답 형태로 옮깁니다. 레코드는 수정하지 않습니다.
func assembleComparisons(ctx context.Context, names *shopNames, records []*contract.ComparisonRecord) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(records))
	for _, r := range records {
		xName, err := names.lookup(ctx, r.ShopXID)
		if err != nil {
			return nil, err
		}
		yName, err := names.lookup(ctx, r.ShopYID)
		if err != nil {
			return nil, err
		}

		results = append(results, ComparisonResult{
			ProductName: r.ProductName,

			ShopXName:         xName,
			ShopXCost:         r.ShopXCost,
			ShopXRating:       r.ShopXRating,
			ShopXDeliveryCost: r.ShopXDeliveryCost,
			ShopXPaymentMode:  r.ShopXPaymentMode,

			ShopYName:         yName,
			ShopYCost:         r.ShopYCost,
			ShopYRating:       r.ShopYRating,
			ShopYDeliveryCost: r.ShopYDeliveryCost,
			ShopYPaymentMode:  r.ShopYPaymentMode,

			MarginalBenefit: r.MarginalBenefit,
			CostBenefit:     r.CostBenefit,
		})
	}
	return results, nil
}

func newSearchResult(p contract.Product, shopName string) SearchResult {
	return SearchResult{
		ProductName:   p.Name,
		ProductPrice:  p.Price,
		ProductRating: p.Rating,
		ProductURL:    p.URL,
		DeliveryCost:  p.DeliveryCost,
		ShopName:      shopName,
		PaymentMode:   p.PaymentMode,
		ShopID:        p.ShopID,
	}
}
