package responseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	responseController "guildtrivia/controllers/response"
	responseValidator "guildtrivia/validators/response"
)

// SetupResponseRoutes mounts the submission endpoint
func SetupResponseRoutes(app *fiber.App, ctl *responseController.Controller, log *logrus.Logger) {
	group := app.Group("/api/responses")

	group.Post("/", responseValidator.Create(log), ctl.Create)
}
