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
)

func TestDeprecatedEndpoint_Headers(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/search?q=phone", nil), rec)

	err := DeprecatedEndpoint("/api/v1/search")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, `299 - "Deprecated API endpoint. Use /api/v1/search instead."`, rec.Header().Get(constants.HeaderWarning))
	assert.Equal(t, "true", rec.Header().Get(constants.HeaderXAPIDeprecated))
	assert.Equal(t, "/api/v1/search", rec.Header().Get(constants.HeaderXAPIDeprecatedReplacement))
	assert.Equal(t, `</api/v1/search>; rel="successor-version"`, rec.Header().Get(constants.HeaderLink))
}

func TestDeprecatedEndpoint_InvalidInput(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgDeprecatedEndpointEmpty, func() {
		DeprecatedEndpoint("")
	})
	assert.PanicsWithValue(t, fmt.Sprintf(constants.PanicMsgDeprecatedEndpointInvalidPrefix, "api/v1/search"), func() {
		DeprecatedEndpoint("api/v1/search")
	})
}
