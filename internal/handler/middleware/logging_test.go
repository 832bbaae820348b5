//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkops/internal/handler/middleware"
	"parkops/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes request logs to the injected logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		cfg := config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"}

		before := slog.Default()

		engine := gin.New()
		engine.Use(middleware.LoggingMiddleware(logger, cfg))
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)

		out := buf.String()
		assert.Contains(t, out, "Request started")
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, "/ping")

		assert.Same(t, before, slog.Default(),
			"wrapping a logger must not reconfigure the process default")
	})
}
