package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/shop-compare-server/docs"
	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/version"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/shop-compare-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/shop-compare-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
	shutdownTimeout = 5 * time.Second
)

// Dependencies API 서비스가 요청을 처리하는 데 사용하는 구성 요소입니다.
type Dependencies struct {
	Engine  v1handler.ComparisonEngine
	Catalog v1handler.CatalogManager

	// Store 헬스체크 대상 저장소
	Store contract.Pinger
	// Cache 헬스체크 대상 캐시. Redis를 사용하지 않으면 nil (typed nil 금지)
	Cache contract.Pinger

	Alert   contract.AlertSender
	Metrics *metrics.Metrics

	BuildInfo version.Info
}

// Service 상품 비교 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 서비스는 고루틴으로 실행되며, Start()로 시작하고 context 취소로 종료됩니다.
// 종료 시에는 진행 중인 요청을 최대 5초 동안 기다립니다.
type Service struct {
	appConfig *config.AppConfig

	deps Dependencies

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, deps Dependencies) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if deps.Engine == nil {
		panic(constants.PanicMsgCompareServiceRequired)
	}
	if deps.Catalog == nil {
		panic(constants.PanicMsgCatalogServiceRequired)
	}
	if deps.Store == nil {
		panic(constants.PanicMsgStoreRequired)
	}
	if deps.Alert == nil {
		panic(constants.PanicMsgAlertSenderRequired)
	}

	return &Service{
		appConfig: appConfig,
		deps:      deps,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 serviceStopWG.Done()을 호출하고 아무 작업도 하지 않습니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 연결합니다.
func (s *Service) setupServer() *echo.Echo {
	authenticator := auth.NewAuthenticator(s.appConfig.Auth)

	systemHandler := system.New(s.deps.Store, s.deps.Cache, s.deps.BuildInfo)
	v1Handler := v1handler.New(s.deps.Engine, s.deps.Catalog)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.HTTP.AllowOrigins,
		RequestTimeout:     s.appConfig.HTTP.RequestTimeout,
		RateLimitPerSecond: s.appConfig.HTTP.RateLimit.RequestsPerSecond,
		RateLimitBurst:     s.appConfig.HTTP.RateLimit.Burst,
		Metrics:            s.deps.Metrics,
		AlertSender:        s.deps.Alert,
	})

	RegisterRoutes(e, systemHandler, s.deps.Metrics)
	v1.RegisterRoutes(e, v1Handler, authenticator)

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown, Info 로그만 남김
//   - 그 외: Error 로그 + 운영자 알림 (포트 바인딩 실패 등)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(message)

	if notifyErr := s.deps.Alert.Notify(config.AppName, fmt.Sprintf("%s\r\n\r\n%s", message, err), true); notifyErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": notifyErr,
		}).Warn(constants.LogMsgAlertSendFailed)
	}
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 상태를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
