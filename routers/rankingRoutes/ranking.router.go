package rankingRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	rankingController "guildtrivia/controllers/ranking"
	rankValidator "guildtrivia/validators/rank"
)

// SetupRankingRoutes mounts the leaderboard routes
func SetupRankingRoutes(app *fiber.App, ctl *rankingController.Controller, log *logrus.Logger) {
	group := app.Group("/api/ranking")

	group.Get("/users", rankValidator.List(log), ctl.Users)
	group.Get("/guilds", rankValidator.List(log), ctl.Guilds)
}
