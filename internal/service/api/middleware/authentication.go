package middleware

import (
	"strings"

	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// OptionalAuthentication 요청자 신원을 확인하는 미들웨어를 반환합니다.
//
// Authorization 헤더가 없으면 익명 요청으로 그대로 통과시킵니다.
// 헤더가 있으면 반드시 유효한 Bearer 토큰이어야 하며, 검증에 실패하면 익명으로 낮추지 않고 401을 반환합니다.
// 검증된 신원은 auth.SetIdentity로 Context에 저장됩니다.
//
// Panics:
//   - authenticator가 nil인 경우
func OptionalAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic(constants.PanicMsgAuthenticatorRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			token, ok := extractBearerToken(header)
			if !ok {
				return ErrMalformedAuthorization
			}

			identity, err := authenticator.Authenticate(token)
			if err != nil {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
					"method":    c.Request().Method,
					"path":      c.Request().URL.Path,
					"remote_ip": c.RealIP(),
					"error":     err,
				}).Warn(constants.LogMsgInvalidToken)

				return ErrInvalidToken
			}

			auth.SetIdentity(c, identity)

			return next(c)
		}
	}
}

// RequireAdmin 관리자 신원이 확인된 요청만 통과시키는 미들웨어를 반환합니다.
// OptionalAuthentication 뒤에 적용해야 합니다.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := auth.GetIdentity(c)
			if !ok || !identity.Admin {
				applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
					"method":    c.Request().Method,
					"path":      c.Request().URL.Path,
					"remote_ip": c.RealIP(),
					"user_id":   identity.UserID,
				}).Warn(constants.LogMsgAdminRequired)

				return ErrAdminRequired
			}

			return next(c)
		}
	}
}

// extractBearerToken "Bearer <token>" 형식에서 토큰을 꺼냅니다. 스킴은 대소문자를 구분하지 않습니다.
func extractBearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.AuthScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
