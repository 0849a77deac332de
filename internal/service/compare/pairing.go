package compare

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
)

// pairAndCompare 후보마다 같은 이름의 상품을 파는 상점들을 두 개씩 짝지어 비교 레코드를 만들고 저장합니다.
//
// 상점 목록은 저장소가 돌려준 순서를 그대로 사용하며, i < j 인 쌍만 평가하므로
// 같은 쌍이 두 번 나오거나 자기 자신과 짝지어지는 일은 없습니다.
// 한쪽 판매 정보가 없으면 해당 쌍만 건너뛰고, 저장 실패는 즉시 반환해 전체를 롤백시킵니다.
func (s *Service) pairAndCompare(ctx context.Context, tx contract.Tx, candidates []candidate) ([]*contract.ComparisonRecord, error) {
	var records []*contract.ComparisonRecord

	for _, c := range candidates {
		shops, err := tx.ListShopsSellingProduct(ctx, c.name)
		if err != nil {
			return nil, newErrStoreRead(err, "판매 상점 목록")
		}
		if len(shops) < 2 {
			continue
		}

		for i := 0; i < len(shops)-1; i++ {
			for j := i + 1; j < len(shops); j++ {
				x, y := shops[i], shops[j]

				lx, okX, err := tx.GetListing(ctx, c.name, x.ID)
				if err != nil {
					return nil, newErrStoreRead(err, "상품 판매 정보")
				}
				ly, okY, err := tx.GetListing(ctx, c.name, y.ID)
				if err != nil {
					return nil, newErrStoreRead(err, "상품 판매 정보")
				}
				if !okX || !okY {
					s.metrics.PartialDataGap()
					applog.WithComponentAndFields(component, applog.Fields{
						"product_name": c.name,
						"shop_x_id":    x.ID,
						"shop_y_id":    y.ID,
						"shop_x_found": okX,
						"shop_y_found": okY,
					}).Info("상품 판매 정보가 누락되어 상점 쌍 비교를 건너뜁니다")
					continue
				}

				rec := newComparisonRecord(c.productID, c.name, lx, ly)
				if err := tx.InsertComparison(ctx, rec); err != nil {
					return nil, newErrPersistence(err, "비교 결과")
				}
				records = append(records, rec)
			}
		}
	}

	return records, nil
}

// newComparisonRecord 두 판매 정보로 비교 레코드를 만듭니다. 값은 반올림 없이 그대로 계산됩니다.
func newComparisonRecord(productID int64, name string, x, y contract.Product) *contract.ComparisonRecord {
	return &contract.ComparisonRecord{
		ProductID:   productID,
		ProductName: name,

		ShopXID:           x.ShopID,
		ShopXCost:         x.Price,
		ShopXRating:       x.Rating,
		ShopXDeliveryCost: x.DeliveryCost,
		ShopXPaymentMode:  x.PaymentMode,

		ShopYID:           y.ShopID,
		ShopYCost:         y.Price,
		ShopYRating:       y.Rating,
		ShopYDeliveryCost: y.DeliveryCost,
		ShopYPaymentMode:  y.PaymentMode,

		MarginalBenefit: x.Rating.Sub(y.Rating),
		CostBenefit:     x.TotalCost().Sub(y.TotalCost()),
	}
}
