package contract

// AlertSender 운영자에게 알림을 전달하는 계약입니다.
// 전달은 비동기이며, nil 반환은 발송 대기열에 들어갔다는 의미일 뿐 실제 전송 성공을 보장하지 않습니다.
type AlertSender interface {
	Notify(title, message string, errorOccurred bool) error
}
