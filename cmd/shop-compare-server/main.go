package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/pkg/version"
	"github.com/darkkaiser/shop-compare-server/internal/service"
	"github.com/darkkaiser/shop-compare-server/internal/service/alert"
	"github.com/darkkaiser/shop-compare-server/internal/service/api"
	"github.com/darkkaiser/shop-compare-server/internal/service/catalog"
	"github.com/darkkaiser/shop-compare-server/internal/service/compare"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	"github.com/darkkaiser/shop-compare-server/internal/service/report"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/darkkaiser/shop-compare-server/internal/store/postgres"
	"github.com/darkkaiser/shop-compare-server/internal/store/redis"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Shop Compare Server API
// @version 1.0.0
// @description 여러 쇼핑몰에 등록된 같은 상품의 가격, 평점, 배송비를 비교하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 상품명 부분 검색 (GET /api/v1/search)
// @description - 두 쇼핑몰 조합별 가성비 비교와 정렬 (GET /api/v1/filter_sort)
// @description - 상점/상품 카탈로그 관리 (관리자 전용)
// @description
// @description ## 인증 방법
// @description 조회 API는 인증 없이 사용할 수 있습니다. Bearer 토큰(JWT)을 함께 보내면 검색과 비교 이력이 사용자별로 기록됩니다.
// @description 상점/상품의 생성, 수정, 삭제는 admin 클레임이 true인 토큰이 필요합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer {JWT}" 형식

// 빌드 정보 변수 (ldflags로 주입됨)
var (
	Version     = "dev"
	Commit      = ""
	BuildDate   = "unknown"
	BuildNumber = "0"
)

const (
	banner = `
  ____   _                     ____
 / ___| | |__    ___   _ __   / ___|  ___   _ __ ___   _ __    __ _  _ __  ___
 \___ \ | '_ \  / _ \ | '_ \ | |     / _ \ | '_ ' _ \ | '_ \  / _' || '__|/ _ \
  ___) || | | || (_) || |_) || |___ | (_) || | | | | || |_) || (_| || |  |  __/
 |____/ |_| |_| \___/ | .__/  \____| \___/ |_| |_| |_|| .__/  \__,_||_|   \___|
                      |_|                             |_|            %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	fmt.Printf(banner, Version)

	buildInfo := version.Info{
		Version:     Version,
		Commit:      Commit,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)
	buildInfo = version.Get()

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"storage": appConfig.Storage.Driver,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서버 실행 실패")

		_ = appLogCloser.Close()
		os.Exit(1)
	}
}

// run 저장소와 서비스를 구성하고 종료 신호를 받을 때까지 블로킹됩니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	initCtx := context.Background()

	store, err := openStore(initCtx, appConfig.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	cache, closeCache, err := openShopNameCache(initCtx, appConfig.Redis)
	if err != nil {
		return err
	}
	defer closeCache()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	alertService, err := alert.New(appConfig.Alert, config.AppName, appConfig.Debug)
	if err != nil {
		return err
	}

	var shopNames contract.ShopNameCache
	var cachePinger contract.Pinger
	if cache != nil {
		shopNames = cache
		cachePinger = cache
	}

	compareService := compare.NewService(store, shopNames, appMetrics)
	catalogService := catalog.NewService(store, shopNames)

	var reportAlert contract.AlertSender
	if appConfig.Report.NotifyAlert {
		reportAlert = alertService
	}
	reportService := report.NewService(appConfig.Report, store, reportAlert)

	apiService := api.NewService(appConfig, api.Dependencies{
		Engine:    compareService,
		Catalog:   catalogService,
		Store:     store,
		Cache:     cachePinger,
		Alert:     alertService,
		Metrics:   appMetrics,
		BuildInfo: buildInfo,
	})

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{alertService, reportService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신하였습니다")
	cancel()
	serviceStopWG.Wait()

	return nil
}

// openStore 설정된 드라이버로 저장소를 엽니다.
func openStore(ctx context.Context, cfg config.StorageConfig) (contract.Store, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory:
		return memory.New(), nil
	default:
		store, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// openShopNameCache Redis가 비활성화되어 있으면 nil 캐시와 빈 정리 함수를 반환합니다.
func openShopNameCache(ctx context.Context, cfg config.RedisConfig) (*redis.ShopNameCache, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return redis.NewShopNameCache(client, cfg.ShopNameTTL), func() { _ = client.Close() }, nil
}
