package response

// SuccessResponse 본문이 필요 없는 요청(삭제 등)의 성공 응답
type SuccessResponse struct {
	// ResultCode 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`

	// Message 처리 결과 메시지
	Message string `json:"message,omitempty" example:"상점이 삭제되었습니다"`
}
