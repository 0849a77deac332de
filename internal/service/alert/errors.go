package alert

import (
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
)

var (
	// ErrNotRunning 서비스가 시작되기 전이거나 종료 절차가 진행 중일 때 반환됩니다.
	ErrNotRunning = apperrors.New(apperrors.Unavailable, "알림 서비스가 실행 중이 아니어서 알림을 보낼 수 없습니다")

	// ErrQueueFull 발송 대기열이 가득 차 알림을 버렸을 때 반환됩니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 대기열이 가득 찼습니다")

	// ErrAlreadyStarted Start가 두 번 호출되었을 때 반환됩니다.
	ErrAlreadyStarted = apperrors.New(apperrors.Conflict, "알림 서비스가 이미 시작되었습니다")
)
