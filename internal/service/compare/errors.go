package compare

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

var (
	// ErrInvalidQuery 검색어가 비어 있거나 공백뿐일 때 반환됩니다. 저장소에 접근하기 전에 판단합니다.
	ErrInvalidQuery = apperrors.New(apperrors.InvalidInput, "검색어(q)를 입력해 주세요")

	// ErrNoMatches 검색어와 일치하는 후보 상품이 하나도 없을 때 반환됩니다.
	ErrNoMatches = apperrors.New(apperrors.NotFound, "검색어와 일치하는 상품이 없습니다")

	// ErrStoreNotInitialized 서비스 생성 시 저장소가 주입되지 않았을 때 반환됩니다.
	ErrStoreNotInitialized = apperrors.New(apperrors.Internal, "저장소(TxRunner) 객체가 초기화되지 않았습니다")
)

// newErrPersistence 비교/검색 결과 저장 실패를 감쌉니다. 요청 전체가 롤백됩니다.
func newErrPersistence(cause error, what string) error {
	return apperrors.Wrapf(cause, apperrors.System, "%s 저장에 실패했습니다", what)
}

// newErrStoreRead 저장소 조회 실패를 감쌉니다.
func newErrStoreRead(cause error, what string) error {
	return apperrors.Wrapf(cause, apperrors.System, "%s 조회에 실패했습니다", what)
}
