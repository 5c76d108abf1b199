// Package requestlog logs every request through zap once it has been handled.
package requestlog

import (
	"errors"
	"time"

	"devserver/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New creates the request logging middleware. Register it after rayid so the
// entries carry the request's ray id.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		l := logger.WithRayID(log, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			l.Error("Request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			l.Warn("Request", fields...)
		default:
			l.Info("Request", fields...)
		}
		return err
	}
}
