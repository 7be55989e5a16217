package responseController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/config"
	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
)

type Controller struct {
	responses *services.ResponseService
	log       *logrus.Logger
}

func New(responses *services.ResponseService, log *logrus.Logger) *Controller {
	return &Controller{responses: responses, log: log}
}

// Create submits an answer batch and triggers the scoring transaction.
// Success is an empty 204 unless SCORE_IN_BODY switches the contract to
// 200 {score: n}.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalBody).(*schemas.SubmitResponses)

	score, err := ctl.responses.SubmitResponses(c.UserContext(), body.UserID, body.AnswerID)
	if err != nil {
		ctl.log.WithError(err).WithField("userId", body.UserID).Error("Error creating response")

		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			return c.Status(svcErr.Status).JSON(fiber.Map{"error": svcErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	if config.AppConfig != nil && config.AppConfig.ScoreInBody {
		return c.Status(fiber.StatusOK).JSON(schemas.ScoreResult{Score: score})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
