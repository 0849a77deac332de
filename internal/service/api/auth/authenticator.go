// Package auth 요청자의 JWT 토큰을 검증하고 검증된 신원을 요청 Context에 보관합니다.
//
// 토큰 발급은 이 서버의 역할이 아니며, 외부 인증 서버가 같은 비밀키(HS256)로 서명한 토큰을 검증만 합니다.
package auth

import (
	"strings"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/golang-jwt/jwt/v4"
)

// Claims 토큰에서 읽어 들이는 클레임입니다. sub는 사용자 ID로 사용합니다.
type Claims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator Bearer 토큰을 검증해 contract.Identity로 변환합니다.
//
// 초기화 이후 상태를 변경하지 않으므로 여러 고루틴에서 동시에 사용해도 안전합니다.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator 인증 설정으로 Authenticator를 생성합니다.
func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// Authenticate 토큰 문자열을 검증하고 요청자 신원을 반환합니다.
//
// 검증에 실패하거나 sub가 비어 있으면 Unauthorized 에러를 반환합니다. HS256 이외의 알고리즘은 거부합니다.
func (a *Authenticator) Authenticate(tokenString string) (contract.Identity, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, newErrUnexpectedSigningMethod(t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return contract.Identity{}, newErrInvalidToken(err)
	}
	if !token.Valid {
		return contract.Identity{}, ErrInvalidToken
	}

	if a.issuer != "" && !claims.VerifyIssuer(a.issuer, true) {
		return contract.Identity{}, ErrIssuerMismatch
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return contract.Identity{}, ErrSubjectRequired
	}

	return contract.Identity{
		UserID: contract.UserID(subject),
		Admin:  claims.Admin,
	}, nil
}
