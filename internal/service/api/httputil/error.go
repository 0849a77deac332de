package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/model/response"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// alertTitle 5xx 오류를 운영자에게 알릴 때 사용하는 제목
const alertTitle = "API 서버 오류"

// NewErrorHandler Echo 프레임워크의 전역 에러 핸들러를 생성합니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 응답하고,
// 4xx는 Warn, 5xx는 Error 레벨로 기록합니다. 5xx는 alertSender가 있으면 운영자에게도 전달합니다.
func NewErrorHandler(alertSender contract.AlertSender) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		handleError(err, c, alertSender)
	}
}

func handleError(err error, c echo.Context, alertSender contract.AlertSender) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = errors.As(FromError(err), &he)
	}

	code := he.Code
	message := constants.ErrMsgInternalServer
	switch m := he.Message.(type) {
	case string:
		message = m
	case response.ErrorResponse:
		message = m.Message
	}

	// Echo가 기본으로 만드는 영문 메시지는 한국어 메시지로 바꿉니다.
	if message == http.StatusText(code) {
		switch code {
		case http.StatusNotFound:
			message = constants.ErrMsgNotFound
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		case http.StatusServiceUnavailable:
			message = constants.ErrMsgServiceUnavailable
		default:
			if code >= http.StatusInternalServerError {
				message = constants.ErrMsgInternalServer
			}
		}
	}

	logged := err
	if he.Internal != nil {
		logged = he.Internal
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       logged,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if identity, ok := auth.GetIdentity(c); ok && !identity.Anonymous() {
		fields["user_id"] = identity.UserID
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)

		if alertSender != nil {
			alertMessage := fmt.Sprintf("%s %s (status: %d)\r\n\r\n%v", c.Request().Method, c.Request().URL.Path, code, logged)
			if notifyErr := alertSender.Notify(alertTitle, alertMessage, true); notifyErr != nil {
				applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
					"error": notifyErr,
				}).Warn(constants.LogMsgAlertSendFailed)
			}
		}
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
