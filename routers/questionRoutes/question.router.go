package questionRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	questionController "guildtrivia/controllers/question"
	"guildtrivia/middleware"
	questionValidator "guildtrivia/validators/question"
)

// SetupQuestionRoutes mounts the question CRUD routes
func SetupQuestionRoutes(app *fiber.App, ctl *questionController.Controller, log *logrus.Logger) {
	group := app.Group("/api/questions")

	group.Get("/", ctl.List)
	group.Get("/:id", questionValidator.Get(log), ctl.Get)

	group.Post("/", middleware.JWTMiddleware, questionValidator.Create(log), ctl.Create)
	group.Put("/:id", middleware.JWTMiddleware, questionValidator.Update(log), ctl.Update)
	group.Delete("/:id", middleware.JWTMiddleware, questionValidator.Delete(log), ctl.Delete)
}
