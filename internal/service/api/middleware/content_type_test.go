package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		expectErr   bool
	}{
		{"본문 없음: 검사 생략", "", "", false},
		{"JSON", `{"name":"a"}`, "application/json", false},
		{"charset 파라미터 허용", `{"name":"a"}`, "application/json; charset=utf-8", false},
		{"대소문자 무시", `{"name":"a"}`, "Application/JSON", false},
		{"Content-Type 누락", `{"name":"a"}`, "", true},
		{"폼 데이터 거부", "name=a", "application/x-www-form-urlencoded", true},
		{"접두어만 같은 타입 거부", `{"name":"a"}`, "application/jsonp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/shops", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			err := ValidateContentType(echo.MIMEApplicationJSON)(func(c echo.Context) error {
				return nil
			})(c)

			if tt.expectErr {
				assert.Equal(t, ErrUnsupportedMediaType, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
