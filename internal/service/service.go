// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 시작하고 종료 신호로 정리되는 구성 요소입니다.
//
// 호출자는 Start 전에 serviceStopWG.Add(1)을 호출하며, 서비스는 종료 처리가 끝나거나
// Start가 실패했을 때 정확히 한 번 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
