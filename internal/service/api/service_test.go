package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/version"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/catalog"
	"github.com/darkkaiser/shop-compare-server/internal/service/compare"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/darkkaiser/shop-compare-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// http.DefaultClient가 유지하는 keep-alive 연결
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

type recordingAlertSender struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingAlertSender) Notify(_, message string, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

func (r *recordingAlertSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func newTestConfig(port int) *config.AppConfig {
	return &config.AppConfig{
		HTTP: config.HTTPConfig{
			ListenPort:     port,
			AllowOrigins:   []string{"*"},
			RequestTimeout: 5 * time.Second,
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 100,
				Burst:             100,
			},
		},
		Storage: config.StorageConfig{Driver: config.StorageDriverMemory},
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-0123456789",
			Issuer:    config.AppName,
		},
	}
}

func newTestDependencies(alertSender *recordingAlertSender) Dependencies {
	store := memory.New()
	return Dependencies{
		Engine:    compare.NewService(store, nil, nil),
		Catalog:   catalog.NewService(store, nil),
		Store:     store,
		Alert:     alertSender,
		BuildInfo: version.Info{Version: "test"},
	}
}

func TestNewService_필수의존성(t *testing.T) {
	t.Parallel()

	valid := newTestDependencies(&recordingAlertSender{})

	tests := []struct {
		name     string
		cfg      *config.AppConfig
		mutate   func(d *Dependencies)
		panicMsg string
	}{
		{"설정 누락", nil, func(d *Dependencies) {}, constants.PanicMsgAppConfigRequired},
		{"비교 엔진 누락", newTestConfig(0), func(d *Dependencies) { d.Engine = nil }, constants.PanicMsgCompareServiceRequired},
		{"카탈로그 누락", newTestConfig(0), func(d *Dependencies) { d.Catalog = nil }, constants.PanicMsgCatalogServiceRequired},
		{"저장소 누락", newTestConfig(0), func(d *Dependencies) { d.Store = nil }, constants.PanicMsgStoreRequired},
		{"알림 누락", newTestConfig(0), func(d *Dependencies) { d.Alert = nil }, constants.PanicMsgAlertSenderRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deps := valid
			tt.mutate(&deps)
			assert.PanicsWithValue(t, tt.panicMsg, func() { NewService(tt.cfg, deps) })
		})
	}

	t.Run("Cache는 선택 사항", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() { NewService(newTestConfig(0), valid) })
	})
}

func TestService_시작과종료(t *testing.T) {
	port := testutil.FreePort(t)
	alertSender := &recordingAlertSender{}
	service := NewService(newTestConfig(port), newTestDependencies(alertSender))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForHealthy(port, 5*time.Second))

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/shops", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/version", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	wg.Wait()

	service.runningMu.Lock()
	assert.False(t, service.running)
	service.runningMu.Unlock()
	assert.Zero(t, alertSender.count())
}

func TestService_중복시작(t *testing.T) {
	port := testutil.FreePort(t)
	service := NewService(newTestConfig(port), newTestDependencies(&recordingAlertSender{}))

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForHealthy(port, 5*time.Second))

	// 두 번째 Start는 즉시 Done을 호출해야 한다.
	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))

	cancel()
	wg.Wait()
}

func TestService_포트충돌시알림(t *testing.T) {
	port := testutil.FreePort(t)
	alertSender := &recordingAlertSender{}

	first := NewService(newTestConfig(port), newTestDependencies(&recordingAlertSender{}))
	second := NewService(newTestConfig(port), newTestDependencies(alertSender))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg1 := &sync.WaitGroup{}
	wg1.Add(1)
	require.NoError(t, first.Start(ctx, wg1))
	require.NoError(t, testutil.WaitForHealthy(port, 5*time.Second))

	// 포트 바인딩에 실패한 서비스는 스스로 종료되어야 한다.
	wg2 := &sync.WaitGroup{}
	wg2.Add(1)
	require.NoError(t, second.Start(ctx, wg2))
	wg2.Wait()

	assert.Equal(t, 1, alertSender.count())
	second.runningMu.Lock()
	assert.False(t, second.running)
	second.runningMu.Unlock()

	cancel()
	wg1.Wait()
}
