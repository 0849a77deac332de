package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/labstack/echo/v4"
)

var (
	// ErrMalformedAuthorization Authorization 헤더가 'Bearer <token>' 형식이 아닐 때 반환하는 에러입니다.
	ErrMalformedAuthorization = httputil.NewUnauthorizedError(constants.ErrMsgUnauthorizedMalformed)

	// ErrInvalidToken 토큰 검증에 실패했을 때 반환하는 에러입니다.
	ErrInvalidToken = httputil.NewUnauthorizedError(constants.ErrMsgUnauthorizedInvalidToken)

	// ErrAdminRequired 관리자 전용 엔드포인트에 일반 사용자나 익명 사용자가 접근했을 때 반환하는 에러입니다.
	ErrAdminRequired = httputil.NewForbiddenError(constants.ErrMsgForbiddenAdminOnly)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 표준 HTTP 429(Too Many Requests) 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 클라이언트가 요청한 Content-Type을 서버가 지원하지 않을 때 반환할 표준 HTTP 415(Unsupported Media Type) 에러입니다.
	ErrUnsupportedMediaType = echo.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
