package middleware

import (
	"net/http"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute 등록되지 않은 경로로 들어온 요청의 endpoint 레이블
// 임의의 URL이 레이블 값으로 쌓이지 않도록 하나로 묶습니다.
const unmatchedRoute = "unmatched"

// Metrics 요청 수와 처리 시간을 Prometheus 지표로 기록하는 미들웨어를 반환합니다.
//
// endpoint 레이블에는 실제 URL이 아니라 라우트 패턴(예: /api/v1/shops/:id)을 사용합니다.
// 에러는 c.Error로 먼저 응답을 확정한 뒤 기록하므로, 에러 핸들러가 정한 상태 코드가 반영됩니다.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = unmatchedRoute
			}

			status := c.Response().Status
			if status == 0 {
				status = http.StatusOK
			}

			m.RecordRequest(c.Request().Method, endpoint, status, time.Since(start))

			return nil
		}
	}
}
