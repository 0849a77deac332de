// Package validation 설정 값 검증에 쓰이는 도메인 독립적인 검사 함수들을 제공합니다.
//
// 각 함수는 검증에 실패하면 원인을 설명하는 error를, 통과하면 nil을 반환합니다.
// go-playground/validator의 커스텀 태그 구현에서 재사용됩니다.
package validation
