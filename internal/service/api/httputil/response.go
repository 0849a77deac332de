package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다
func NewUnauthorizedError(message string) error {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewForbiddenError 403 Forbidden 에러를 생성합니다
func NewForbiddenError(message string) error {
	return newHTTPError(http.StatusForbidden, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewConflictError 409 Conflict 에러를 생성합니다
func NewConflictError(message string) error {
	return newHTTPError(http.StatusConflict, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// NewGatewayTimeoutError 504 Gateway Timeout 에러를 생성합니다
func NewGatewayTimeoutError(message string) error {
	return newHTTPError(http.StatusGatewayTimeout, message)
}

// FromError 서비스 계층의 에러를 HTTP 에러로 변환합니다.
//
// 4xx로 분류되는 AppError는 메시지를 그대로 클라이언트에게 전달하고,
// 5xx는 내부 정보가 노출되지 않도록 고정된 메시지로 바꿉니다.
// 원본 에러는 echo.HTTPError.Internal에 보존되어 에러 핸들러가 로그에 남깁니다.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer).WithInternal(err)
	}

	code := StatusCode(err)

	message := appErr.Message()
	switch code {
	case http.StatusGatewayTimeout:
		message = constants.ErrMsgGatewayTimeout
	case http.StatusServiceUnavailable:
		message = constants.ErrMsgServiceUnavailable
	case http.StatusInternalServerError:
		message = constants.ErrMsgInternalServer
	}

	return newHTTPError(code, message).WithInternal(err)
}

// StatusCode 에러 분류에 해당하는 HTTP 상태 코드를 반환합니다.
//
// 가장 바깥 AppError의 분류를 따르되, 저장소 장애를 System으로 감싼 경우에는
// 체인 안쪽의 Timeout/Unavailable 분류를 우선합니다.
func StatusCode(err error) int {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	t := appErr.Type()
	if t == apperrors.System || t == apperrors.Unknown {
		if inner := apperrors.UnderlyingType(err); inner == apperrors.Timeout || inner == apperrors.Unavailable {
			t = inner
		}
	}

	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnauthorized
	case apperrors.Forbidden:
		return http.StatusForbidden
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Success 표준 성공 응답(200 OK)을 JSON 형식으로 반환합니다.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    message,
	})
}
