package request

import "github.com/shopspring/decimal"

// CreateShopRequest 상점 등록 요청
type CreateShopRequest struct {
	// 상점 이름 (카탈로그 안에서 유일)
	Name string `json:"name" validate:"required,max=100" korean:"상점 이름" example:"쿠팡"`
	// 상점 홈페이지
	URL string `json:"url" validate:"required,url,max=2048" korean:"상점 URL" example:"https://www.coupang.com"`
}

// UpdateShopRequest 상점 수정 요청. 전달된 필드만 변경합니다.
type UpdateShopRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100" korean:"상점 이름" example:"쿠팡"`
	URL  *string `json:"url,omitempty" validate:"omitempty,url,max=2048" korean:"상점 URL" example:"https://www.coupang.com"`
}

// CreateProductRequest 상품(상점별 판매 정보) 등록 요청
//
// 금액과 평점은 JSON 숫자 또는 숫자 문자열 모두 받습니다.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,max=200" korean:"상품명" example:"갤럭시 북4"`
	Price        *decimal.Decimal `json:"price" validate:"required" korean:"가격" swaggertype:"string" example:"1290000"`
	Rating       *decimal.Decimal `json:"rating" korean:"평점" swaggertype:"string" example:"4.5"`
	DeliveryCost *decimal.Decimal `json:"delivery_cost" korean:"배송비" swaggertype:"string" example:"3000"`
	PaymentMode  string           `json:"payment_mode" validate:"max=50" korean:"결제 방식" example:"카드"`
	URL          string           `json:"url" validate:"required,url,max=2048" korean:"상품 URL" example:"https://www.coupang.com/vp/products/1"`
	ShopID       int64            `json:"shop_id" validate:"required,gt=0" korean:"상점 ID" example:"1"`
}

// UpdateProductRequest 상품 수정 요청. 전달된 필드만 변경합니다.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,max=200" korean:"상품명"`
	Price        *decimal.Decimal `json:"price,omitempty" korean:"가격" swaggertype:"string"`
	Rating       *decimal.Decimal `json:"rating,omitempty" korean:"평점" swaggertype:"string"`
	DeliveryCost *decimal.Decimal `json:"delivery_cost,omitempty" korean:"배송비" swaggertype:"string"`
	PaymentMode  *string          `json:"payment_mode,omitempty" validate:"omitempty,max=50" korean:"결제 방식"`
	URL          *string          `json:"url,omitempty" validate:"omitempty,url,max=2048" korean:"상품 URL"`
	ShopID       *int64           `json:"shop_id,omitempty" validate:"omitempty,gt=0" korean:"상점 ID"`
}
