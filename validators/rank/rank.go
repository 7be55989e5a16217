package rankValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

func List(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Query: middleware.Values[schemas.RankQuery](),
	}, log)
}
