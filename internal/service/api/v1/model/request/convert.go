package request

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/shopspring/decimal"
)

func (r *CreateShopRequest) ToShop() contract.Shop {
	return contract.Shop{Name: r.Name, URL: r.URL}
}

func (r *UpdateShopRequest) ToPatch() contract.ShopPatch {
	return contract.ShopPatch{Name: r.Name, URL: r.URL}
}

// ToProduct 생략된 평점과 배송비는 0으로 채웁니다.
func (r *CreateProductRequest) ToProduct() contract.Product {
	return contract.Product{
		Name:         r.Name,
		Price:        valueOrZero(r.Price),
		Rating:       valueOrZero(r.Rating),
		DeliveryCost: valueOrZero(r.DeliveryCost),
		PaymentMode:  r.PaymentMode,
		URL:          r.URL,
		ShopID:       r.ShopID,
	}
}

func (r *UpdateProductRequest) ToPatch() contract.ProductPatch {
	return contract.ProductPatch{
		Name:         r.Name,
		Price:        r.Price,
		Rating:       r.Rating,
		DeliveryCost: r.DeliveryCost,
		PaymentMode:  r.PaymentMode,
		URL:          r.URL,
		ShopID:       r.ShopID,
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
