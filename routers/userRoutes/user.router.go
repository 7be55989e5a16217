package userRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	userController "guildtrivia/controllers/user"
	userValidator "guildtrivia/validators/user"
)

// SetupUserRoutes mounts registration, login and user reads
func SetupUserRoutes(app *fiber.App, ctl *userController.Controller, log *logrus.Logger) {
	app.Post("/api/login", userValidator.Login(log), ctl.Login)

	group := app.Group("/api/users")
	group.Post("/", userValidator.Register(log), ctl.Register)
	group.Get("/", ctl.List)
	group.Get("/:id", userValidator.Get(log), ctl.Get)
}
