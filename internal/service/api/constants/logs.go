package constants

const (
	// 서비스 생명주기

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// 에러 핸들러

	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgAlertSendFailed    = "오류 알림 전송 요청에 실패하였습니다"

	// 시스템 핸들러

	LogMsgHealthCheck = "헬스체크 요청"
	LogMsgVersionInfo = "버전 정보 요청"

	// 미들웨어

	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청"
	LogMsgInvalidToken           = "인증 토큰 검증 실패"
	LogMsgAdminRequired          = "관리자 권한이 없는 요청 차단"
	LogMsgDeprecatedEndpointUsed = "Deprecated API 엔드포인트 사용됨"
)
