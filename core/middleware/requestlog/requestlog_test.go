package requestlog_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"devserver/core/middleware/rayid"
	"devserver/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	return app, logs
}

func TestRequestLog(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		level   zapcore.Level
		message string
	}{
		{"Success", "/ok", fiber.StatusOK, zapcore.InfoLevel, "Request"},
		{"NotFound", "/missing.js", fiber.StatusNotFound, zapcore.WarnLevel, "Request"},
		{"HandlerError", "/boom", fiber.StatusInternalServerError, zapcore.ErrorLevel, "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, logs := setupTestApp()

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, resp.Header.Get(rayid.Header), fields["ray_id"])
		})
	}
}
