package constants

// 로그의 component 필드 값
const (
	ComponentService = "api.service"

	ComponentHandler = "api.handler"

	ComponentMiddlewareAuthentication = "api.middleware.auth"

	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	ComponentMiddlewareDeprecated = "api.middleware.deprecated"

	ComponentMiddlewareContentType = "api.middleware.content_type"

	ComponentMiddlewareHTTPLogger = "api.middleware.http_logger"

	ComponentErrorHandler = "api.error_handler"
)
