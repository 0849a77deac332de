package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/shop-compare-server/internal/service/api/middleware"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한. 0이면 20 req/s, 버스트 40을 사용합니다.
	RateLimitPerSecond int
	RateLimitBurst     int

	// Metrics 요청 지표 수집기. nil이면 수집하지 않습니다.
	Metrics *metrics.Metrics

	// AlertSender 5xx 오류를 운영자에게 전달합니다. nil이면 로그만 남깁니다.
	AlertSender contract.AlertSender
}

const (
	defaultRateLimitPerSecond = 20
	defaultRateLimitBurst     = 40
)

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 다른 미들웨어의 panic을 복구하고 스택과 함께 기록
//  2. RequestID - X-Request-ID 부여 (로그의 request_id)
//  3. Server 헤더 제거
//  4. HTTPLogger - 요청/응답 구조화 로그 (민감한 쿼리 파라미터 마스킹)
//  5. Metrics - 라우트 패턴별 요청 수와 처리 시간
//  6. RateLimit - IP별 요청 제한 (/health, /metrics 제외, 초과 시 429)
//  7. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  8. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  9. CORS
//  10. Secure - 보안 헤더
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 기록합니다.
	e.Logger = appmiddleware.NewLogger(applog.StandardLogger())

	e.HTTPErrorHandler = httputil.NewErrorHandler(cfg.AlertSender)

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps == 0 {
		rps = defaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst == 0 {
		burst = defaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// RateLimit/Timeout보다 바깥에 두어야 429/503 응답도 기록됩니다.
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.Metrics(cfg.Metrics))
	e.Use(appmiddleware.RateLimit(rps, burst, "/health", "/metrics"))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Secure())

	return e
}
