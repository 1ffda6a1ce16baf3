package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog. Debe ir después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// El ErrorHandler fija el status real de la respuesta.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		evt := l.Info()
		if status >= fiber.StatusInternalServerError {
			evt = l.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = l.Warn()
		}
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		evt.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}
