package report

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type alertCall struct {
	title, message string
	errorOccurred  bool
}

type fakeAlertSender struct {
	mu    sync.Mutex
	calls []alertCall
}

func (f *fakeAlertSender) Notify(title, message string, errorOccurred bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, alertCall{title, message, errorOccurred})
	return nil
}

type failingStats struct{}

func (failingStats) CountRecords(context.Context) (contract.RecordCounts, error) {
	return contract.RecordCounts{}, errors.New("connection refused")
}

func TestReporter_증가량_리포트(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	sender := &fakeAlertSender{}
	r := NewService(config.ReportConfig{Enabled: true, TimeSpec: "@hourly", NotifyAlert: true}, store, sender)

	r.report(ctx)

	shop := contract.Shop{Name: "A", URL: "https://a.example.com"}
	require.NoError(t, store.CreateShop(ctx, &shop))
	require.NoError(t, store.WithinTx(ctx, func(tx contract.Tx) error {
		for range 3 {
			if err := tx.InsertComparison(ctx, &contract.ComparisonRecord{ShopXID: 1, ShopYID: 2}); err != nil {
				return err
			}
		}
		return nil
	}))

	r.report(ctx)

	require.Len(t, sender.calls, 2)
	assert.Equal(t, alertTitle, sender.calls[1].title)
	assert.Contains(t, sender.calls[0].message, "비교 결과: 0 (+0)")
	assert.Contains(t, sender.calls[1].message, "상점: 1")
	assert.Contains(t, sender.calls[1].message, "비교 결과: 3 (+3)")
	assert.False(t, sender.calls[1].errorOccurred)
}

func TestReporter_알림_비활성화(t *testing.T) {
	t.Parallel()

	sender := &fakeAlertSender{}
	r := NewService(config.ReportConfig{Enabled: true, TimeSpec: "@hourly"}, memory.New(), sender)

	r.report(context.Background())
	assert.Empty(t, sender.calls)
}

func TestReporter_조회_실패(t *testing.T) {
	t.Parallel()

	sender := &fakeAlertSender{}
	r := NewService(config.ReportConfig{Enabled: true, TimeSpec: "@hourly", NotifyAlert: true}, failingStats{}, sender)

	r.report(context.Background())

	require.Len(t, sender.calls, 1)
	assert.True(t, sender.calls[0].errorOccurred)
	assert.Contains(t, sender.calls[0].message, "connection refused")
	assert.Nil(t, r.last, "실패한 조회는 다음 증가량 계산의 기준이 되지 않아야 합니다")
}

func TestReporter_시작과_종료(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.ReportConfig
		running bool
	}{
		{name: "활성화", cfg: config.ReportConfig{Enabled: true, TimeSpec: "0 0 * * * *"}, running: true},
		{name: "비활성화", cfg: config.ReportConfig{Enabled: false}, running: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewService(tt.cfg, memory.New(), nil)

			ctx, cancel := context.WithCancel(context.Background())
			wg := &sync.WaitGroup{}
			wg.Add(1)
			require.NoError(t, r.Start(ctx, wg))

			r.runningMu.Lock()
			assert.Equal(t, tt.running, r.running)
			r.runningMu.Unlock()

			cancel()
			wg.Wait()

			r.runningMu.Lock()
			assert.False(t, r.running)
			r.runningMu.Unlock()
		})
	}
}

func TestReporter_잘못된_스케줄(t *testing.T) {
	t.Parallel()

	r := NewService(config.ReportConfig{Enabled: true, TimeSpec: "0 * * * *"}, memory.New(), nil)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := r.Start(context.Background(), wg)
	wg.Wait()

	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestNewService_저장소_없음(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrStatsReaderNotInitialized, func() {
		NewService(config.ReportConfig{}, nil, nil)
	})
}
