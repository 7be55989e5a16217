package challengeRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	challengeController "guildtrivia/controllers/challenge"
	"guildtrivia/middleware"
	challengeValidator "guildtrivia/validators/challenge"
)

// SetupChallengeRoutes mounts the challenge CRUD routes
func SetupChallengeRoutes(app *fiber.App, ctl *challengeController.Controller, log *logrus.Logger) {
	group := app.Group("/api/challenges")

	group.Get("/", challengeValidator.List(log), ctl.List)
	group.Get("/:id", challengeValidator.Get(log), ctl.Get)

	group.Post("/", middleware.JWTMiddleware, challengeValidator.Create(log), ctl.Create)
	group.Put("/:id", middleware.JWTMiddleware, challengeValidator.Update(log), ctl.Update)
	group.Delete("/:id", middleware.JWTMiddleware, challengeValidator.Delete(log), ctl.Delete)
}
