package contract

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

// 저장소 구현체들이 같은 상황에서 같은 분류와 메시지를 돌려주도록 공통 생성자를 둡니다.

// NewErrShopNotFound 상점이 존재하지 않을 때의 에러를 생성합니다.
func NewErrShopNotFound(id int64) error {
	return apperrors.Newf(apperrors.NotFound, "상점을 찾을 수 없습니다 (shop_id=%d)", id)
}

// NewErrProductNotFound 상품이 존재하지 않을 때의 에러를 생성합니다.
func NewErrProductNotFound(id int64) error {
	return apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (product_id=%d)", id)
}

// NewErrDuplicateShopName 상점 이름이 이미 사용 중일 때의 에러를 생성합니다.
func NewErrDuplicateShopName(name string) error {
	return apperrors.Newf(apperrors.Conflict, "이미 등록된 상점 이름입니다 (name=%q)", name)
}

// NewErrShopHasProducts 판매 상품이 남아 있는 상점을 삭제하려 할 때의 에러를 생성합니다.
func NewErrShopHasProducts(id int64, count int) error {
	return apperrors.Newf(apperrors.Conflict, "판매 중인 상품이 있는 상점은 삭제할 수 없습니다 (shop_id=%d, products=%d)", id, count)
}

// NewErrUnknownShopReference 상품이 존재하지 않는 상점을 참조할 때의 에러를 생성합니다.
func NewErrUnknownShopReference(id int64) error {
	return apperrors.Newf(apperrors.InvalidInput, "상품이 참조하는 상점이 존재하지 않습니다 (shop_id=%d)", id)
}
