package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop 상품을 판매하는 상점입니다. 이름은 카탈로그 안에서 유일합니다.
type Shop struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ShopSummary 상점 목록 조회 시 판매 상품 수를 함께 담습니다.
type ShopSummary struct {
	Shop
	ProductsCount int `json:"products_count"`
}

// Product 특정 상점의 상품 판매 정보(listing)입니다.
//
// 서로 다른 상점의 상품은 이름이 바이트 단위로 같을 때에만 같은 상품으로 취급합니다.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Rating       decimal.Decimal `json:"rating"`
	DeliveryCost decimal.Decimal `json:"delivery_cost"`
	PaymentMode  string          `json:"payment_mode"`
	URL          string          `json:"url"`
	ShopID       int64           `json:"shop_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TotalCost 상품 가격과 배송비를 합한 실 구매 비용입니다.
func (p Product) TotalCost() decimal.Decimal {
	return p.Price.Add(p.DeliveryCost)
}

// ShopPatch 상점 부분 수정 요청입니다. nil 필드는 변경하지 않습니다.
type ShopPatch struct {
	Name *string
	URL  *string
}

// ProductPatch 상품 부분 수정 요청입니다. nil 필드는 변경하지 않습니다.
type ProductPatch struct {
	Name         *string
	Price        *decimal.Decimal
	Rating       *decimal.Decimal
	DeliveryCost *decimal.Decimal
	PaymentMode  *string
	URL          *string
	ShopID       *int64
}

// Apply 변경할 필드만 p에 반영합니다.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Rating != nil {
		p.Rating = *pp.Rating
	}
	if pp.DeliveryCost != nil {
		p.DeliveryCost = *pp.DeliveryCost
	}
	if pp.PaymentMode != nil {
		p.PaymentMode = *pp.PaymentMode
	}
	if pp.URL != nil {
		p.URL = *pp.URL
	}
	if pp.ShopID != nil {
		p.ShopID = *pp.ShopID
	}
}

// Apply 변경할 필드만 s에 반영합니다.
func (sp ShopPatch) Apply(s *Shop) {
	if sp.Name != nil {
		s.Name = *sp.Name
	}
	if sp.URL != nil {
		s.URL = *sp.URL
	}
}
