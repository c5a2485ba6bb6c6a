package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// RequestLogger asigna un request id (uuid) a cada petición y registra método,
// ruta, estado y duración con un sublogger por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		sub := log.With().Str("request_id", requestID).Logger()
		c.Locals("logger", &sub)

		start := time.Now()
		err := c.Next()

		sub.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
