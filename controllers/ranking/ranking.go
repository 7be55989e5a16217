package rankingController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
)

type Controller struct {
	ranks *services.RankService
	log   *logrus.Logger
}

func New(ranks *services.RankService, log *logrus.Logger) *Controller {
	return &Controller{ranks: ranks, log: log}
}

func (ctl *Controller) Users(c *fiber.Ctx) error {
	query := c.Locals(middleware.LocalQuery).(*schemas.RankQuery)

	ranks, err := ctl.ranks.TopUsers(c.UserContext(), query.Limit)
	if err != nil {
		ctl.log.WithError(err).Error("Failed to fetch user ranking")
		return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
	}
	return middleware.SuccessList(c, fiber.StatusOK, "Ranking fetched", ranks)
}

func (ctl *Controller) Guilds(c *fiber.Ctx) error {
	query := c.Locals(middleware.LocalQuery).(*schemas.RankQuery)

	ranks, err := ctl.ranks.TopGuilds(c.UserContext(), query.Limit)
	if err != nil {
		ctl.log.WithError(err).Error("Failed to fetch guild ranking")
		return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
	}
	return middleware.SuccessList(c, fiber.StatusOK, "Ranking fetched", ranks)
}
