package constants

// 클라이언트에게 응답하는 에러 메시지
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestInvalidID   = "ID는 1 이상의 정수여야 합니다"

	ErrMsgUnauthorizedInvalidToken = "인증 토큰이 유효하지 않습니다"
	ErrMsgUnauthorizedMalformed    = "Authorization 헤더는 'Bearer <token>' 형식이어야 합니다"

	ErrMsgForbiddenAdminOnly = "관리자만 사용할 수 있는 기능입니다"

	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"

	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	ErrMsgGatewayTimeout = "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"

	ErrMsgServiceUnavailable = "일시적으로 서비스를 이용할 수 없습니다. 잠시 후 다시 시도해주세요"
)
