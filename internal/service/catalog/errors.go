package catalog

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

var (
	// ErrStoreNotInitialized 서비스 생성 시 카탈로그 저장소가 주입되지 않았을 때 반환됩니다.
	ErrStoreNotInitialized = apperrors.New(apperrors.Internal, "카탈로그 저장소(CatalogWriter) 객체가 초기화되지 않았습니다")

	// ErrEmptyPatch 수정 요청에 변경할 필드가 하나도 없을 때 반환됩니다.
	ErrEmptyPatch = apperrors.New(apperrors.InvalidInput, "수정할 항목이 없습니다")
)

func newErrRequired(field string) error {
	return apperrors.Newf(apperrors.InvalidInput, "%s 값은 필수입니다", field)
}

func newErrInvalidURL(field string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "%s 값이 올바른 URL 형식이 아닙니다", field)
}

func newErrOutOfRange(field, rule string) error {
	return apperrors.Newf(apperrors.InvalidInput, "%s 값은 %s", field, rule)
}
