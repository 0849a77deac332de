package constants

// 필수 의존성이 누락된 채로 생성될 때의 panic 메시지
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	PanicMsgCompareServiceRequired = "CompareService는 필수입니다"

	PanicMsgCatalogServiceRequired = "CatalogService는 필수입니다"

	PanicMsgAlertSenderRequired = "AlertSender는 필수입니다"

	PanicMsgStoreRequired = "Store는 필수입니다"

	PanicMsgAuthenticatorRequired = "Authenticator는 필수입니다"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	PanicMsgRateLimitBurstInvalid = "RateLimit: burst는 양수여야 합니다 (현재값: %d)"

	PanicMsgDeprecatedEndpointEmpty = "DeprecatedEndpoint: 대체 엔드포인트 경로가 비어있습니다"

	PanicMsgDeprecatedEndpointInvalidPrefix = "DeprecatedEndpoint: 대체 엔드포인트 경로는 '/'로 시작해야 합니다 (현재값: %s)"
)
