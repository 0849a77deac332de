package response

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/compare"
	"github.com/shopspring/decimal"
)

// SearchResult 카탈로그 검색 결과 한 건
//
// 금액과 평점은 정밀도 손실을 막기 위해 문자열로 직렬화합니다.
type SearchResult struct {
	ProductName   string          `json:"product_name" example:"갤럭시 북4"`
	ProductPrice  decimal.Decimal `json:"product_price" swaggertype:"string" example:"1290000"`
	ProductRating decimal.Decimal `json:"product_rating" swaggertype:"string" example:"4.5"`
	ProductURL    string          `json:"product_url" example:"https://www.coupang.com/vp/products/1"`
	DeliveryCost  decimal.Decimal `json:"delivery_cost" swaggertype:"string" example:"3000"`
	ShopName      string          `json:"shop_name" example:"쿠팡"`
	PaymentMode   string          `json:"payment_mode" example:"카드"`
	ShopID        int64           `json:"shop_id" example:"1"`
}

// ComparisonResult 두 상점 간 비교 결과 한 건
type ComparisonResult struct {
	ProductName string `json:"product_name" example:"갤럭시 북4"`

	ShopXName         string          `json:"shop_x_name" example:"쿠팡"`
	ShopXCost         decimal.Decimal `json:"shop_x_cost" swaggertype:"string" example:"1290000"`
	ShopXRating       decimal.Decimal `json:"shop_x_rating" swaggertype:"string" example:"4.5"`
	ShopXDeliveryCost decimal.Decimal `json:"shop_x_delivery_cost" swaggertype:"string" example:"3000"`
	ShopXPaymentMode  string          `json:"shop_x_payment_mode" example:"카드"`

	ShopYName         string          `json:"shop_y_name" example:"11번가"`
	ShopYCost         decimal.Decimal `json:"shop_y_cost" swaggertype:"string" example:"1250000"`
	ShopYRating       decimal.Decimal `json:"shop_y_rating" swaggertype:"string" example:"4.0"`
	ShopYDeliveryCost decimal.Decimal `json:"shop_y_delivery_cost" swaggertype:"string" example:"0"`
	ShopYPaymentMode  string          `json:"shop_y_payment_mode" example:"무통장"`

	// 평점 차이 (X - Y)
	MarginalBenefit decimal.Decimal `json:"marginal_benefit" swaggertype:"string" example:"0.5"`
	// 실구매가 차이 ((가격X + 배송비X) - (가격Y + 배송비Y))
	CostBenefit decimal.Decimal `json:"cost_benefit" swaggertype:"string" example:"43000"`
}

// SearchResponse /search 응답
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ComparisonResponse /filter_sort 응답
type ComparisonResponse struct {
	Results []ComparisonResult `json:"results"`
}

// NewSearchResponse 검색 결과가 없어도 results는 빈 배열로 직렬화됩니다.
func NewSearchResponse(results []compare.SearchResult) SearchResponse {
	resp := SearchResponse{Results: make([]SearchResult, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, SearchResult{
			ProductName:   r.ProductName,
			ProductPrice:  r.ProductPrice,
			ProductRating: r.ProductRating,
			ProductURL:    r.ProductURL,
			DeliveryCost:  r.DeliveryCost,
			ShopName:      r.ShopName,
			PaymentMode:   r.PaymentMode,
			ShopID:        r.ShopID,
		})
	}
	return resp
}

func NewComparisonResponse(results []compare.ComparisonResult) ComparisonResponse {
	resp := ComparisonResponse{Results: make([]ComparisonResult, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, ComparisonResult{
			ProductName:       r.ProductName,
			ShopXName:         r.ShopXName,
			ShopXCost:         r.ShopXCost,
			ShopXRating:       r.ShopXRating,
			ShopXDeliveryCost: r.ShopXDeliveryCost,
			ShopXPaymentMode:  r.ShopXPaymentMode,
			ShopYName:         r.ShopYName,
			ShopYCost:         r.ShopYCost,
			ShopYRating:       r.ShopYRating,
			ShopYDeliveryCost: r.ShopYDeliveryCost,
			ShopYPaymentMode:  r.ShopYPaymentMode,
			MarginalBenefit:   r.MarginalBenefit,
			CostBenefit:       r.CostBenefit,
		})
	}
	return resp
}
