package downloadRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	downloadController "guildtrivia/controllers/download"
	downloadValidator "guildtrivia/validators/download"
)

// SetupDownloadRoutes mounts the mobile client download endpoints. The
// fixed paths must register before the version parameter route.
func SetupDownloadRoutes(app *fiber.App, ctl *downloadController.Controller, log *logrus.Logger) {
	group := app.Group("/api/download")

	group.Get("/info/latest", ctl.Info)
	group.Get("/latest", ctl.Latest)
	group.Get("/:version", downloadValidator.Version(log), ctl.ByVersion)
}
