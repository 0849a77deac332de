package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// SearchRecord 식별된 사용자가 검색했을 때 노출된 상품 판매 정보의 스냅샷입니다.
// 한 번 기록되면 수정되지 않으며 만료 없이 누적됩니다.
type SearchRecord struct {
	ID            int64
	UserID        UserID
	ProductID     int64
	ProductName   string
	ProductPrice  decimal.Decimal
	ProductRating decimal.Decimal
	ProductURL    string
	DeliveryCost  decimal.Decimal
	PaymentMode   string
	ShopID        int64
	ShopName      string
	CreatedAt     time.Time
}

// ComparisonRecord 한 상품에 대해 서로 다른 두 상점(X, Y)을 비교한 결과입니다.
//
//	MarginalBenefit = RatingX - RatingY
//	CostBenefit     = (PriceX + DeliveryX) - (PriceY + DeliveryY)
//
// 같은 쌍을 다시 비교해도 기존 레코드를 갱신하지 않고 새로 기록합니다.
type ComparisonRecord struct {
	ID          int64
	ProductID   int64
	ProductName string

	ShopXID           int64
	ShopXCost         decimal.Decimal
	ShopXRating       decimal.Decimal
	ShopXDeliveryCost decimal.Decimal
	ShopXPaymentMode  string

	ShopYID           int64
	ShopYCost         decimal.Decimal
	ShopYRating       decimal.Decimal
	ShopYDeliveryCost decimal.Decimal
	ShopYPaymentMode  string

	MarginalBenefit decimal.Decimal
	CostBenefit     decimal.Decimal

	CreatedAt time.Time
}

// ShopXTotalCost X 상점의 가격과 배송비 합계입니다.
func (r *ComparisonRecord) ShopXTotalCost() decimal.Decimal {
	return r.ShopXCost.Add(r.ShopXDeliveryCost)
}

// RecordCounts 저장소의 테이블별 레코드 수입니다.
type RecordCounts struct {
	Shops         int64 `json:"shops"`
	Products      int64 `json:"products"`
	SearchRecords int64 `json:"search_records"`
	Comparisons   int64 `json:"comparison_records"`
}
