package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// RequestObserver recibe cada solicitud atendida (p.ej. contador Prometheus).
type RequestObserver interface {
	HTTPRequest(method string, status int)
}

// RequestLogger registra método, ruta, status y latencia de cada solicitud.
func RequestLogger(log *logger.Logger, obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http request")

		if obs != nil {
			obs.HTTPRequest(c.Method(), status)
		}
		return err
	}
}
