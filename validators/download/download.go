package downloadValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

func Version(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.ReleaseVersion](),
	}, log)
}
