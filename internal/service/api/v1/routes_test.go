package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/auth"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/httputil"
	"github.com/darkkaiser/shop-compare-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/shop-compare-server/internal/service/catalog"
	"github.com/darkkaiser/shop-compare-server/internal/service/compare"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-route-secret"

func setupRoutes(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.New()
	h := handler.New(compare.NewService(store, nil, nil), catalog.NewService(store, nil))

	e := echo.New()
	e.HTTPErrorHandler = httputil.NewErrorHandler(nil)
	RegisterRoutes(e, h, auth.NewAuthenticator(config.AuthConfig{JWTSecret: testSecret}))
	return e
}

func bearer(t *testing.T, sub string, admin bool) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRegisterRoutes_Registered(t *testing.T) {
	t.Parallel()

	e := setupRoutes(t)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/v1/search",
		"GET /api/v1/filter_sort",
		"GET /api/v1/shops",
		"GET /api/v1/shops/:id",
		"POST /api/v1/shops",
		"PUT /api/v1/shops/:id",
		"DELETE /api/v1/shops/:id",
		"GET /api/v1/products",
		"GET /api/v1/products/:id",
		"POST /api/v1/products",
		"PUT /api/v1/products/:id",
		"DELETE /api/v1/products/:id",
		"GET /search",
		"GET /filter_sort",
	} {
		assert.True(t, registered[route], "%s 라우트가 등록되지 않았습니다", route)
	}
}

func TestRegisterRoutes_AdminOnly(t *testing.T) {
	t.Parallel()

	e := setupRoutes(t)
	body := `{"name":"alpha","url":"https://alpha.example.com"}`

	tests := []struct {
		name          string
		authorization string
		contentType   string
		code          int
	}{
		{"익명 사용자는 403", "", echo.MIMEApplicationJSON, http.StatusForbidden},
		{"일반 사용자는 403", bearer(t, "user-1", false), echo.MIMEApplicationJSON, http.StatusForbidden},
		{"잘못된 토큰은 401", "Bearer not-a-jwt", echo.MIMEApplicationJSON, http.StatusUnauthorized},
		{"관리자라도 JSON이 아니면 415", bearer(t, "admin", true), echo.MIMETextPlain, http.StatusUnsupportedMediaType},
		{"관리자는 등록 가능", bearer(t, "admin", true), echo.MIMEApplicationJSON, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestRegisterRoutes_OptionalAuthentication(t *testing.T) {
	t.Parallel()

	e := setupRoutes(t)

	// 익명 요청도 허용되며, 일치하는 상품이 없으므로 404입니다.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=galaxy", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=galaxy", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired.or.invalid")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRoutes_LegacyEndpoints(t *testing.T) {
	t.Parallel()

	e := setupRoutes(t)

	tests := []struct {
		path        string
		replacement string
	}{
		{"/search?q=galaxy", "/api/v1/search"},
		{"/filter_sort?q=galaxy&sort_by=mb", "/api/v1/filter_sort"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "true", rec.Header().Get(constants.HeaderXAPIDeprecated))
		assert.Equal(t, tt.replacement, rec.Header().Get(constants.HeaderXAPIDeprecatedReplacement))
	}
}
