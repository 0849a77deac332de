// Package report 저장소 레코드 증가량을 주기적으로 기록하는 리포트 서비스입니다.
//
// 비교 결과와 검색 이력은 요청마다 새로 쌓이고 지워지지 않으므로, 테이블 증가 추이를
// 로그(필요하면 알림)로 남겨 보존 정책이 필요한 시점을 판단할 수 있게 합니다.
package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/darkkaiser/shop-compare-server/pkg/cronx"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "report.service"

// reportTimeout 리포트 한 번의 통계 조회 제한 시간
const reportTimeout = 30 * time.Second

const alertTitle = "레코드 증가 리포트"

// Reporter 설정된 Cron 스케줄마다 테이블별 레코드 수와 직전 대비 증가량을 기록합니다.
type Reporter struct {
	cfg config.ReportConfig

	stats contract.StatsReader

	// alertSender NotifyAlert 설정이 켜져 있을 때만 사용합니다. nil이어도 됩니다.
	alertSender contract.AlertSender

	cron *cron.Cron

	// last 직전 리포트의 레코드 수입니다. 첫 리포트에서는 nil입니다.
	last   *contract.RecordCounts
	lastMu sync.Mutex

	running   bool
	runningMu sync.Mutex
}

// NewService 리포트 서비스를 생성합니다.
func NewService(cfg config.ReportConfig, stats contract.StatsReader, alertSender contract.AlertSender) *Reporter {
	if stats == nil {
		panic(ErrStatsReaderNotInitialized)
	}

	return &Reporter{
		cfg: cfg,

		stats: stats,

		alertSender: alertSender,
	}
}

// Start 리포트 작업을 Cron 엔진에 등록하고 시작합니다.
// 리포트가 비활성화되어 있으면 종료 신호만 기다립니다.
func (r *Reporter) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if r.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("리포트 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if !r.cfg.Enabled {
		applog.WithComponent(component).Info("레코드 증가 리포트가 비활성화되어 있습니다")
		go func() {
			defer serviceStopWG.Done()
			<-serviceStopCtx.Done()
		}()
		return nil
	}

	r.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := r.cron.AddFunc(r.cfg.TimeSpec, func() {
		// cron.Stop()이 실행 중인 작업을 기다리므로 종료 신호와 분리된 컨텍스트를 사용한다.
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		r.report(ctx)
	}); err != nil {
		r.cron = nil
		serviceStopWG.Done()
		return newErrInvalidTimeSpec(r.cfg.TimeSpec, err)
	}

	r.cron.Start()
	r.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec":    r.cfg.TimeSpec,
		"notify_alert": r.cfg.NotifyAlert,
	}).Info("리포트 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		r.Stop()
	}()

	return nil
}

// Stop 실행 중인 리포트 작업이 끝날 때까지 기다린 뒤 Cron 엔진을 중지합니다.
func (r *Reporter) Stop() {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.running {
		return
	}

	if r.cron != nil {
		<-r.cron.Stop().Done()
	}

	r.cron = nil
	r.running = false

	applog.WithComponent(component).Info("리포트 서비스 중지됨")
}

// report 레코드 수를 조회해 직전 리포트 대비 증가량과 함께 기록합니다.
func (r *Reporter) report(ctx context.Context) {
	counts, err := r.stats.CountRecords(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("레코드 수 조회에 실패하여 리포트를 건너뜁니다")

		r.notify(fmt.Sprintf("레코드 수 조회에 실패했습니다.\n\n%v", err), true)
		return
	}

	r.lastMu.Lock()
	prev := r.last
	r.last = &counts
	r.lastMu.Unlock()

	var delta contract.RecordCounts
	if prev != nil {
		delta = contract.RecordCounts{
			Shops:         counts.Shops - prev.Shops,
			Products:      counts.Products - prev.Products,
			SearchRecords: counts.SearchRecords - prev.SearchRecords,
			Comparisons:   counts.Comparisons - prev.Comparisons,
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"shops":                counts.Shops,
		"products":             counts.Products,
		"search_records":       counts.SearchRecords,
		"comparisons":          counts.Comparisons,
		"search_records_delta": delta.SearchRecords,
		"comparisons_delta":    delta.Comparisons,
	}).Info("레코드 증가 리포트")

	r.notify(formatReport(counts, delta), false)
}

func (r *Reporter) notify(message string, errorOccurred bool) {
	if !r.cfg.NotifyAlert || r.alertSender == nil {
		return
	}
	if err := r.alertSender.Notify(alertTitle, message, errorOccurred); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("리포트 알림 전달에 실패했습니다")
	}
}

func formatReport(counts, delta contract.RecordCounts) string {
	return fmt.Sprintf(
		"상점: %d\n상품: %d\n검색 이력: %d (%+d)\n비교 결과: %d (%+d)",
		counts.Shops, counts.Products,
		counts.SearchRecords, delta.SearchRecords,
		counts.Comparisons, delta.Comparisons,
	)
}
