package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestLogger 전역 로거의 출력을 buf로 바꿉니다. 전역 상태를 바꾸므로 호출하는 테스트는 t.Parallel()을 사용하지 않습니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	logger := applog.StandardLogger()
	out, formatter, level := logger.Out, logger.Formatter, logger.GetLevel()

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(out)
		applog.SetFormatter(formatter)
		applog.SetLevel(level)
	})
	return buf
}

func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"민감 파라미터 없음", "/api/v1/search?q=phone", "/api/v1/search?q=phone"},
		{"access_token 마스킹", "/api/v1/search?q=laptop&access_token=eyJhbGciOi", "/api/v1/search?access_token=eyJh%2A%2A%2A&q=laptop"},
		{"짧은 값은 전부 가림", "/api/v1/search?token=abc", "/api/v1/search?token=%2A%2A%2A"},
		{"쿼리 없음", "/api/v1/shops", "/api/v1/shops"},
		{"파싱 불가 URI는 원본 유지", "%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	buf := setupTestLogger(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=phone&access_token=secret-token-value", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.SetIdentity(c, contract.Identity{UserID: "user-7"})

	err := HTTPLogger()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)

	entry := lastLogEntry(t, buf)
	assert.Equal(t, "HTTP 요청", entry["msg"])
	assert.Equal(t, constants.ComponentMiddlewareHTTPLogger, entry["component"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/api/v1/search", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.NotContains(t, entry["uri"], "secret-token-value")
}

func TestHTTPLogger_ErrorIsHandled(t *testing.T) {
	buf := setupTestLogger(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	err := HTTPLogger()(func(c echo.Context) error {
		return echo.ErrNotFound
	})(c)

	require.NoError(t, err, "에러는 c.Error로 처리되고 nil이 반환되어야 합니다")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(http.StatusNotFound), lastLogEntry(t, buf)["status"])
}
