package compare

import "strings"

// NormalizeQuery 앞뒤 공백을 제거한 검색어를 반환합니다.
// 대소문자는 그대로 두며, 대소문자 무시 비교는 저장소의 부분 일치 검색이 담당합니다.
func NormalizeQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrInvalidQuery
	}
	return q, nil
}
