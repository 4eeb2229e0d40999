package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/personnel-api/pkg/logger"
)

// HeaderRequestID header de correlación por petición.
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un id de correlación a cada petición (respeta el que
// venga del cliente) y lo refleja en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(HeaderRequestID, rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}

// RequestLogger registra cada petición terminada con su id de correlación.
// Debe ir después de RequestID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.WithRequestID(GetRequestID(c)).Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el id de correlación de la petición.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(HeaderRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
