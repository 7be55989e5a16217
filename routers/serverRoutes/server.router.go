package serverRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	serverController "guildtrivia/controllers/server"
	serverValidator "guildtrivia/validators/server"
)

// SetupServerRoutes mounts the health endpoint
func SetupServerRoutes(app *fiber.App, log *logrus.Logger) {
	app.Get("/api/health", serverValidator.Health(log), serverController.Health)
}
