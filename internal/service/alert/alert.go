// Package alert 서버 장애와 운영 리포트를 운영자에게 전달하는 알림 서비스입니다.
//
// 텔레그램이 설정되어 있으면 봇으로, 아니면 아무것도 하지 않는 Noop으로 동작합니다.
package alert

import (
	"context"
	"sync"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/service"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

const component = "alert.service"

// Notifier 알림 발송과 서비스 생명주기를 함께 제공합니다.
type Notifier interface {
	contract.AlertSender
	service.Service
}

// New 설정에 맞는 Notifier를 생성합니다.
func New(cfg config.AlertConfig, appName string, debug bool) (Notifier, error) {
	if !cfg.Telegram.Enabled {
		return NewNoop(), nil
	}
	return NewTelegram(cfg.Telegram, appName, debug)
}

// Noop 알림 채널이 설정되지 않았을 때 사용하는 구현체입니다. 모든 알림을 버립니다.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Notify(_, _ string, _ bool) error {
	return nil
}

func (n *Noop) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	go func() {
		defer serviceStopWG.Done()
		<-serviceStopCtx.Done()
	}()
	return nil
}
