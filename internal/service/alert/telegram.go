package alert

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/darkkaiser/shop-compare-server/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	queueSize = 100

	// 텔레그램 메시지 최대 길이(4096자)에 머리말을 붙일 여유를 둔다.
	maxMessageLength = 3500
	maxTitleLength   = 200

	maxRetries        = 3
	defaultRetryDelay = 2 * time.Second
	httpClientTimeout = 30 * time.Second
	drainTimeout      = 10 * time.Second

	msgHeader = "<b>【 %s 】</b>\n\n"
	msgTitle  = "<b>%s</b>\n\n"
	msgError  = "\n\n*** 오류가 발생하였습니다. ***"
)

// botClient 테스트에서 실제 텔레그램 API를 대체하기 위한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type alertMessage struct {
	title         string
	message       string
	errorOccurred bool
}

// Telegram 알림을 대기열에 쌓고 하나의 워커 고루틴이 순서대로 발송합니다.
type Telegram struct {
	appName string
	chatID  int64
	bot     botClient

	limiter    *rate.Limiter
	retryDelay time.Duration

	queue chan alertMessage

	mu      sync.RWMutex
	running bool
	started bool
}

// NewTelegram 봇 토큰으로 텔레그램 API 클라이언트를 초기화합니다. 토큰 확인을 위해 API를 한 번 호출합니다.
func NewTelegram(cfg config.TelegramConfig, appName string, debug bool) (*Telegram, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug("텔레그램 봇 API 클라이언트를 초기화합니다")

	// 기본 http.Client는 타임아웃이 없어 장애 시 워커가 멈출 수 있다.
	client := &http.Client{Timeout: httpClientTimeout}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. bot_token을 확인해 주세요")
	}
	botAPI.Debug = debug

	return newTelegramWithBot(botAPI, cfg.ChatID, appName), nil
}

func newTelegramWithBot(bot botClient, chatID int64, appName string) *Telegram {
	return &Telegram{
		appName: appName,
		chatID:  chatID,
		bot:     bot,

		// 같은 채팅방에는 초당 1건 정도만 허용된다.
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
		retryDelay: defaultRetryDelay,

		queue: make(chan alertMessage, queueSize),
	}
}

// Start 발송 워커를 시작합니다. serviceStopCtx가 취소되면 대기열에 남은 알림을 처리한 뒤 종료합니다.
func (t *Telegram) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		serviceStopWG.Done()
		return ErrAlreadyStarted
	}
	t.started = true
	t.running = true

	go t.run(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": t.chatID,
	}).Info("텔레그램 알림 서비스 시작됨")

	return nil
}

// Notify 알림을 대기열에 넣습니다. 대기열이 가득 차면 기다리지 않고 ErrQueueFull을 반환합니다.
func (t *Telegram) Notify(title, message string, errorOccurred bool) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.running {
		return ErrNotRunning
	}

	select {
	case t.queue <- alertMessage{title: title, message: message, errorOccurred: errorOccurred}:
		return nil
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"title":      title,
			"queue_size": queueSize,
		}).Warn("알림 발송 대기열이 가득 차 알림을 버립니다")
		return ErrQueueFull
	}
}

func (t *Telegram) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case m := <-t.queue:
			t.safeSend(serviceStopCtx, m)

		case <-serviceStopCtx.Done():
			// 잠금을 잡은 뒤에는 Notify가 더 이상 대기열에 넣지 못한다.
			t.mu.Lock()
			t.running = false
			t.mu.Unlock()

			t.drain()

			applog.WithComponent(component).Info("텔레그램 알림 서비스 중지됨")
			return
		}
	}
}

// drain 종료 시점에 대기열에 남은 알림을 drainTimeout 동안 최대한 발송합니다.
func (t *Telegram) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		if ctx.Err() != nil {
			if dropped := len(t.queue); dropped > 0 {
				applog.WithComponentAndFields(component, applog.Fields{
					"dropped": dropped,
				}).Warn("종료 제한 시간을 넘어 남은 알림을 버립니다")
			}
			return
		}

		select {
		case m := <-t.queue:
			t.safeSend(ctx, m)
		default:
			return
		}
	}
}

// safeSend 메시지 한 건의 패닉이 워커 전체를 멈추지 않도록 격리합니다.
func (t *Telegram) safeSend(ctx context.Context, m alertMessage) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"title": m.title,
				"panic": r,
			}).Error("알림 발송 중 패닉이 발생하여 해당 건을 건너뜁니다")
		}
	}()

	_ = t.send(ctx, m, true)
}

// format 텔레그램 HTML 모드로 보낼 본문을 만듭니다. useHTML이 false면 태그 없이 평문으로 만듭니다.
func (t *Telegram) format(m alertMessage, useHTML bool) string {
	title := strutil.Truncate(m.title, maxTitleLength)
	message := strutil.Truncate(m.message, maxMessageLength)

	if !useHTML {
		text := fmt.Sprintf("【 %s 】\n\n", t.appName)
		if title != "" {
			text += title + "\n\n"
		}
		text += message
		if m.errorOccurred {
			text += msgError
		}
		return text
	}

	// 자른 뒤에 이스케이프해야 엔티티가 중간에 잘리지 않는다.
	text := fmt.Sprintf(msgHeader, html.EscapeString(t.appName))
	if title != "" {
		text += fmt.Sprintf(msgTitle, html.EscapeString(title))
	}
	text += html.EscapeString(message)
	if m.errorOccurred {
		text += msgError
	}
	return text
}

// send 발송 속도를 제한하며 최대 maxRetries번 시도합니다.
// HTML 파싱 오류(400)면 평문으로 한 번 더 보내고, 429를 제외한 4xx는 재시도하지 않습니다.
func (t *Telegram) send(ctx context.Context, m alertMessage, useHTML bool) error {
	msg := tgbotapi.NewMessage(t.chatID, t.format(m, useHTML))
	if useHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		_, err := t.bot.Send(msg)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id": t.chatID,
				"attempt": attempt,
			}).Debug("텔레그램 알림 발송 성공")
			return nil
		}
		lastErr = err

		code, retryAfter := telegramErrorCode(err)
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": t.chatID,
			"attempt": attempt,
			"code":    code,
			"error":   err,
		}).Warn("텔레그램 알림 발송 실패")

		if useHTML && code == http.StatusBadRequest {
			return t.send(ctx, m, false)
		}
		if !retryable(code) {
			break
		}
		if attempt == maxRetries {
			break
		}

		wait := t.retryDelay
		if retryAfter > 0 {
			wait = time.Duration(retryAfter) * time.Second
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id":     t.chatID,
		"max_retries": maxRetries,
		"error":       lastErr,
	}).Error("텔레그램 알림 발송 최종 실패")

	return lastErr
}

func telegramErrorCode(err error) (code int, retryAfter int) {
	switch e := err.(type) {
	case tgbotapi.Error:
		return e.Code, e.ResponseParameters.RetryAfter
	case *tgbotapi.Error:
		return e.Code, e.ResponseParameters.RetryAfter
	}
	return 0, 0
}

func retryable(code int) bool {
	if code >= 400 && code < 500 {
		return code == http.StatusTooManyRequests
	}
	return true
}
