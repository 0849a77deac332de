package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
//
// HTTP 계층은 이 분류를 기준으로 응답 상태 코드를 결정하므로,
// 새로운 값을 추가할 때는 httputil의 매핑도 함께 확인해야 합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 애플리케이션 내부 로직 오류
	Internal

	// System 저장소, 네트워크 등 인프라 수준의 장애
	System

	// Unauthorized 인증 실패 (토큰 누락, 서명 불일치, 만료 등)
	Unauthorized

	// Forbidden 인증은 되었으나 권한이 부족함
	Forbidden

	// InvalidInput 사용자 입력값 검증 실패
	InvalidInput

	// Conflict 리소스 충돌 (중복 이름, 참조 중인 리소스 삭제 등)
	Conflict

	// NotFound 요청한 리소스 또는 검색 결과가 없음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없는 상태
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	InvalidInput: "InvalidInput",
	Conflict:     "Conflict",
	NotFound:     "NotFound",
	Timeout:      "Timeout",
	Unavailable:  "Unavailable",
}

// String 에러 타입의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
