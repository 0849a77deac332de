package constants

// HTTP 헤더
const (
	HeaderWarning = "Warning"

	HeaderXAPIDeprecated = "X-API-Deprecated"

	HeaderXAPIDeprecatedReplacement = "X-API-Deprecated-Replacement"

	HeaderRetryAfter = "Retry-After"

	HeaderLink = "Link"
)

// AuthScheme Authorization 헤더의 토큰 스킴
const AuthScheme = "Bearer"

// SensitiveQueryParams 요청 로그에 남기기 전에 마스킹하는 쿼리 파라미터
var SensitiveQueryParams = []string{
	"access_token",
	"token",
	"api_key",
	"password",
	"secret",
}
