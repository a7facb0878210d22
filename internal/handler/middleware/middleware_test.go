//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/rooms/:number", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/status-only", func(c *gin.Context) {
		_ = c.Error(errors.New("private failure"))
		c.Status(http.StatusServiceUnavailable)
	})
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("gone"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusGone, "Room withdrawn", nil),
		})
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter()

	t.Run("incoming id is reused", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/rooms/101", nil,
			map[string]string{"X-Request-ID": "req-123"})

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "req-123", body["request_id"])
		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-123"})
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/101", nil)

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.NotEmpty(t, body["request_id"])
		assert.Equal(t, body["request_id"], w.Header().Get("X-Request-ID"))
	})
}

func TestCustomRecovery(t *testing.T) {
	w := httptest.PerformRequest(t, newRouter(), http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	r := newRouter()

	t.Run("public error meta is rendered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, w, http.StatusGone, "Room withdrawn")
	})

	t.Run("bare status is kept without leaking the error", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "private failure")
	})
}
