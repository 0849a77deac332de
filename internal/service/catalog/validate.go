package catalog

import (
	"strings"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/darkkaiser/shop-compare-server/pkg/validation"
	"github.com/shopspring/decimal"
)

func normalizeName(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", newErrRequired(field)
	}
	return v, nil
}

func normalizeURL(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", newErrRequired(field)
	}
	if err := validation.ValidateConnectionURL(v, "http", "https"); err != nil {
		return "", newErrInvalidURL(field, err)
	}
	return v, nil
}

func validatePrice(v decimal.Decimal) error {
	if !v.IsPositive() {
		return newErrOutOfRange("가격(price)", "0보다 커야 합니다")
	}
	return nil
}

func validateDeliveryCost(v decimal.Decimal) error {
	if v.IsNegative() {
		return newErrOutOfRange("배송비(delivery_cost)", "0 이상이어야 합니다")
	}
	return nil
}

func validateShopID(id int64) error {
	if id <= 0 {
		return newErrRequired("상점(shop_id)")
	}
	return nil
}

// normalizeShop 생성 요청의 상점 값을 정리하고 검사합니다.
func normalizeShop(shop *contract.Shop) error {
	var err error
	if shop.Name, err = normalizeName("상점 이름(name)", shop.Name); err != nil {
		return err
	}
	if shop.URL, err = normalizeURL("상점 URL(url)", shop.URL); err != nil {
		return err
	}
	return nil
}

// normalizeShopPatch nil이 아닌 필드만 정리하고 검사합니다.
func normalizeShopPatch(patch *contract.ShopPatch) error {
	if patch.Name == nil && patch.URL == nil {
		return ErrEmptyPatch
	}
	if patch.Name != nil {
		v, err := normalizeName("상점 이름(name)", *patch.Name)
		if err != nil {
			return err
		}
		patch.Name = &v
	}
	if patch.URL != nil {
		v, err := normalizeURL("상점 URL(url)", *patch.URL)
		if err != nil {
			return err
		}
		patch.URL = &v
	}
	return nil
}

// normalizeProduct 생성 요청의 상품 값을 정리하고 검사합니다.
func normalizeProduct(p *contract.Product) error {
	var err error
	if p.Name, err = normalizeName("상품 이름(name)", p.Name); err != nil {
		return err
	}
	if err = validatePrice(p.Price); err != nil {
		return err
	}
	if err = validateDeliveryCost(p.DeliveryCost); err != nil {
		return err
	}
	if p.URL, err = normalizeURL("상품 URL(url)", p.URL); err != nil {
		return err
	}
	p.PaymentMode = strings.TrimSpace(p.PaymentMode)
	return validateShopID(p.ShopID)
}

func normalizeProductPatch(patch *contract.ProductPatch) error {
	if patch.Name == nil && patch.Price == nil && patch.Rating == nil && patch.DeliveryCost == nil &&
		patch.PaymentMode == nil && patch.URL == nil && patch.ShopID == nil {
		return ErrEmptyPatch
	}

	if patch.Name != nil {
		v, err := normalizeName("상품 이름(name)", *patch.Name)
		if err != nil {
			return err
		}
		patch.Name = &v
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return err
		}
	}
	if patch.DeliveryCost != nil {
		if err := validateDeliveryCost(*patch.DeliveryCost); err != nil {
			return err
		}
	}
	if patch.PaymentMode != nil {
		v := strings.TrimSpace(*patch.PaymentMode)
		patch.PaymentMode = &v
	}
	if patch.URL != nil {
		v, err := normalizeURL("상품 URL(url)", *patch.URL)
		if err != nil {
			return err
		}
		patch.URL = &v
	}
	if patch.ShopID != nil {
		return validateShopID(*patch.ShopID)
	}
	return nil
}
