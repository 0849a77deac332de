package auth

import (
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/labstack/echo/v4"
)

// contextKeyIdentity 검증된 요청자 신원 저장용 Context 키
const contextKeyIdentity = "darkkaiser/shop-compare-server/api/auth/Identity"

// SetIdentity 검증된 요청자 신원을 Context에 저장합니다.
func SetIdentity(c echo.Context, identity contract.Identity) {
	c.Set(contextKeyIdentity, identity)
}

// GetIdentity Context에서 요청자 신원을 조회합니다. 저장된 신원이 없으면 false를 반환합니다.
func GetIdentity(c echo.Context) (contract.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(contract.Identity)
	return identity, ok
}

// IdentityOrAnonymous 저장된 신원을 반환하고, 없으면 익명 신원을 반환합니다.
func IdentityOrAnonymous(c echo.Context) contract.Identity {
	identity, _ := GetIdentity(c)
	return identity
}
