// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. Server errors are logged at warn
// level so they stand out from rejected ledger operations.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []any{
			"method", c.Method(),
			"route", c.Route().Path,
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		if status >= fiber.StatusInternalServerError {
			log.Warnw("http", fields...)
		} else {
			log.Infow("http", fields...)
		}
		return err
	}
}
