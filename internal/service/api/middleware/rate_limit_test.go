package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestRateLimit_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		expectedPanic     string
	}{
		{"실패: RPS 0", 0, 20, fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, 0)},
		{"실패: RPS 음수", -1, 20, fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, -1)},
		{"실패: Burst 0", 10, 0, fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.PanicsWithValue(t, tt.expectedPanic, func() {
				RateLimit(tt.requestsPerSecond, tt.burst)
			})
		})
	}

	assert.NotPanics(t, func() { RateLimit(10, 20) })
}

func serveRateLimited(mw echo.MiddlewareFunc, path, ip string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, err
}

func TestRateLimit_BurstExceeded(t *testing.T) {
	t.Parallel()

	// 초당 1개, 버스트 2: 같은 IP의 세 번째 요청은 거부된다.
	mw := RateLimit(1, 2)

	for i := 0; i < 2; i++ {
		_, err := serveRateLimited(mw, "/api/v1/search", "10.0.0.1")
		require.NoError(t, err, "버스트 이내 요청 %d", i+1)
	}

	rec, err := serveRateLimited(mw, "/api/v1/search", "10.0.0.1")
	assert.Equal(t, ErrRateLimitExceeded, err)
	assert.Equal(t, retryAfterSeconds, rec.Header().Get(constants.HeaderRetryAfter))

	// 다른 IP는 영향을 받지 않는다.
	_, err = serveRateLimited(mw, "/api/v1/search", "10.0.0.2")
	assert.NoError(t, err)
}

func TestRateLimit_SkipPaths(t *testing.T) {
	t.Parallel()

	mw := RateLimit(1, 1, "/health", "/metrics")

	for i := 0; i < 5; i++ {
		_, err := serveRateLimited(mw, "/metrics", "10.0.0.3")
		require.NoError(t, err, "제외 경로는 제한하지 않아야 합니다")
	}

	_, err := serveRateLimited(mw, "/api/v1/shops", "10.0.0.3")
	require.NoError(t, err)
	_, err = serveRateLimited(mw, "/api/v1/shops", "10.0.0.3")
	assert.Equal(t, ErrRateLimitExceeded, err)
}

func TestIPRateLimiter_Eviction(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1)
	for i := 0; i < maxIPRateLimiters+10; i++ {
		limiter.getLimiter(fmt.Sprintf("ip-%d", i))
	}

	assert.LessOrEqual(t, len(limiter.limiters), maxIPRateLimiters)

	first := limiter.getLimiter("same-ip")
	assert.Same(t, first, limiter.getLimiter("same-ip"), "같은 IP는 같은 Limiter를 재사용해야 합니다")
}
