package responseValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

// Create validates the submission payload and, when the score body mode is
// active, the outbound score payload.
func Create(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Body:     middleware.Body[schemas.SubmitResponses](),
		Response: middleware.Body[schemas.ScoreResult](),
	}, log)
}
