package alert

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeBot 보낸 메시지를 기록하고, errs에 지정된 에러를 순서대로 돌려줍니다.
type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	errs []error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	if len(b.errs) > 0 {
		err := b.errs[0]
		b.errs = b.errs[1:]
		return tgbotapi.Message{}, err
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), b.sent...)
}

func newTestTelegram(bot *fakeBot) *Telegram {
	t := newTelegramWithBot(bot, 1234, "shop-compare-server")
	t.retryDelay = time.Millisecond
	return t
}

func startTelegram(t *testing.T, tg *Telegram) (context.CancelFunc, *sync.WaitGroup) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, tg.Start(ctx, wg))
	return cancel, wg
}

func TestTelegram_알림_발송(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	tg := newTestTelegram(bot)
	cancel, wg := startTelegram(t, tg)

	require.NoError(t, tg.Notify("저장소 장애", "insert <comparison_records> 실패", true))

	require.Eventually(t, func() bool { return len(bot.messages()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()

	msg := bot.messages()[0]
	assert.Equal(t, int64(1234), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Contains(t, msg.Text, "<b>【 shop-compare-server 】</b>")
	assert.Contains(t, msg.Text, "<b>저장소 장애</b>")
	assert.Contains(t, msg.Text, "insert &lt;comparison_records&gt; 실패", "본문은 HTML 이스케이프되어야 합니다")
	assert.True(t, strings.HasSuffix(msg.Text, msgError))

	assert.ErrorIs(t, tg.Notify("x", "y", false), ErrNotRunning, "종료 후에는 알림을 받지 않아야 합니다")
}

func TestTelegram_시작_전_알림(t *testing.T) {
	t.Parallel()

	tg := newTestTelegram(&fakeBot{})
	assert.ErrorIs(t, tg.Notify("x", "y", false), ErrNotRunning)
}

func TestTelegram_중복_시작(t *testing.T) {
	t.Parallel()

	tg := newTestTelegram(&fakeBot{})
	cancel, wg := startTelegram(t, tg)

	wg.Add(1)
	assert.ErrorIs(t, tg.Start(context.Background(), wg), ErrAlreadyStarted)

	cancel()
	wg.Wait()
}

func TestTelegram_발송_실패_처리(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		errs          []error
		wantSends     int
		wantLastPlain bool
	}{
		{
			name:          "HTML 파싱 오류면 평문으로 재전송",
			errs:          []error{tgbotapi.Error{Code: 400, Message: "Bad Request: can't parse entities"}},
			wantSends:     2,
			wantLastPlain: true,
		},
		{
			name:      "429는 재시도",
			errs:      []error{&tgbotapi.Error{Code: 429, Message: "Too Many Requests"}},
			wantSends: 2,
		},
		{
			name:      "403은 재시도하지 않음",
			errs:      []error{tgbotapi.Error{Code: 403, Message: "Forbidden"}},
			wantSends: 1,
		},
		{
			name: "최대 재시도 횟수 초과",
			errs: []error{
				tgbotapi.Error{Code: 502}, tgbotapi.Error{Code: 502}, tgbotapi.Error{Code: 502},
			},
			wantSends: maxRetries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bot := &fakeBot{errs: tt.errs}
			tg := newTestTelegram(bot)

			tg.safeSend(context.Background(), alertMessage{title: "제목", message: "본문"})

			sent := bot.messages()
			require.Len(t, sent, tt.wantSends)
			if tt.wantLastPlain {
				last := sent[len(sent)-1]
				assert.Empty(t, last.ParseMode)
				assert.NotContains(t, last.Text, "<b>")
				assert.Contains(t, last.Text, "【 shop-compare-server 】")
			}
		})
	}
}

func TestTelegram_대기열_가득참(t *testing.T) {
	t.Parallel()

	tg := newTestTelegram(&fakeBot{})
	tg.running = true

	for range queueSize {
		require.NoError(t, tg.Notify("x", "y", false))
	}
	assert.ErrorIs(t, tg.Notify("x", "y", false), ErrQueueFull)
}

func TestTelegram_종료시_남은_알림_발송(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	tg := newTestTelegram(bot)
	tg.running = true

	require.NoError(t, tg.Notify("1", "a", false))
	require.NoError(t, tg.Notify("2", "b", false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	tg.run(ctx, wg)
	wg.Wait()

	assert.Len(t, bot.messages(), 2)
	assert.False(t, tg.running)
}

func TestTelegram_긴_메시지_자르기(t *testing.T) {
	t.Parallel()

	tg := newTestTelegram(&fakeBot{})
	text := tg.format(alertMessage{message: strings.Repeat("가", maxMessageLength+100)}, true)

	assert.Contains(t, text, "...")
	assert.NotContains(t, text, "<b></b>", "제목이 없으면 제목 줄을 만들지 않아야 합니다")
}

func TestTelegramErrorCode(t *testing.T) {
	t.Parallel()

	code, retryAfter := telegramErrorCode(tgbotapi.Error{Code: 429, ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 3}})
	assert.Equal(t, 429, code)
	assert.Equal(t, 3, retryAfter)

	code, _ = telegramErrorCode(assert.AnError)
	assert.Zero(t, code)

	assert.True(t, retryable(0))
	assert.True(t, retryable(500))
	assert.True(t, retryable(429))
	assert.False(t, retryable(400))
}

func TestNew_텔레그램_미설정(t *testing.T) {
	t.Parallel()

	n, err := New(config.AlertConfig{}, "shop-compare-server", false)
	require.NoError(t, err)
	require.IsType(t, &Noop{}, n)

	assert.NoError(t, n.Notify("x", "y", true))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, n.Start(ctx, wg))
	cancel()
	wg.Wait()
}
