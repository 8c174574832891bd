package telemetry

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AccessLog writes one line per request. It must run after the requestid
// middleware to pick up the request id.
func AccessLog(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		lvl := level.Info
		if status >= fiber.StatusInternalServerError {
			lvl = level.Warn
		}
		lvl(logger).Log(
			"msg", "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
		)
		return err
	}
}
