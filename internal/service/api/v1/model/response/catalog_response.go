package response

import (
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/service/catalog"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/shopspring/decimal"
)

// Shop 상점 정보
type Shop struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"쿠팡"`
	URL       string    `json:"url" example:"https://www.coupang.com"`
	CreatedAt time.Time `json:"created_at"`
}

// ShopSummary 상점 목록의 한 항목
type ShopSummary struct {
	Shop
	// 판매 중인 상품 수
	ProductsCount int `json:"products_count" example:"12"`
}

// ShopDetail 상점 단건 조회 결과
type ShopDetail struct {
	Shop
	Products []Product `json:"products"`
}

// Product 상점별 상품 판매 정보
type Product struct {
	ID           int64           `json:"id" example:"10"`
	Name         string          `json:"name" example:"갤럭시 북4"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"1290000"`
	Rating       decimal.Decimal `json:"rating" swaggertype:"string" example:"4.5"`
	DeliveryCost decimal.Decimal `json:"delivery_cost" swaggertype:"string" example:"3000"`
	PaymentMode  string          `json:"payment_mode" example:"카드"`
	URL          string          `json:"url" example:"https://www.coupang.com/vp/products/1"`
	ShopID       int64           `json:"shop_id" example:"1"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ShopList 상점 목록 응답
type ShopList struct {
	Results []ShopSummary `json:"results"`
}

// ProductList 상품 목록 응답
type ProductList struct {
	Results []Product `json:"results"`
}

func NewShop(s contract.Shop) Shop {
	return Shop{ID: s.ID, Name: s.Name, URL: s.URL, CreatedAt: s.CreatedAt}
}

func NewShopList(shops []contract.ShopSummary) ShopList {
	list := ShopList{Results: make([]ShopSummary, 0, len(shops))}
	for _, s := range shops {
		list.Results = append(list.Results, ShopSummary{Shop: NewShop(s.Shop), ProductsCount: s.ProductsCount})
	}
	return list
}

func NewShopDetail(d catalog.ShopDetail) ShopDetail {
	detail := ShopDetail{Shop: NewShop(d.Shop), Products: make([]Product, 0, len(d.Products))}
	for _, p := range d.Products {
		detail.Products = append(detail.Products, NewProduct(p))
	}
	return detail
}

func NewProduct(p contract.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Rating:       p.Rating,
		DeliveryCost: p.DeliveryCost,
		PaymentMode:  p.PaymentMode,
		URL:          p.URL,
		ShopID:       p.ShopID,
		CreatedAt:    p.CreatedAt,
	}
}

func NewProductList(products []contract.Product) ProductList {
	list := ProductList{Results: make([]Product, 0, len(products))}
	for _, p := range products {
		list.Results = append(list.Results, NewProduct(p))
	}
	return list
}
