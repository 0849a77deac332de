package contract

// UserID 인증 토큰의 subject로 전달되는 사용자 식별자입니다.
type UserID string

// Identity 검증이 끝난 요청자 정보입니다. 값이 비어 있으면 익명 요청입니다.
type Identity struct {
	UserID UserID
	Admin  bool
}

// Anonymous 요청자 정보가 없는 익명 요청이면 true를 반환합니다.
func (i Identity) Anonymous() bool {
	return i.UserID == ""
}
