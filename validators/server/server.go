package serverValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

// Health guards the outbound health payload shape.
func Health(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Response: middleware.Body[schemas.HealthCheck](),
	}, log)
}
