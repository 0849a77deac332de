package handler

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니거나 필드 타입이 맞지 않을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrInvalidQuery 쿼리 파라미터를 바인딩할 수 없을 때의 에러를 생성합니다.
func NewErrInvalidQuery() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
}

// NewErrValidationFailed 필수 값 누락, 형식 위반 등 요청 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidID 경로의 :id가 양의 정수가 아닐 때의 에러를 생성합니다.
func NewErrInvalidID() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidID)
}

// pathID 경로 파라미터 :id를 양의 정수로 읽습니다.
func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil || id <= 0 {
		return 0, NewErrInvalidID()
	}
	return id, nil
}
