package challengeController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
)

type Controller struct {
	challenges *services.ChallengeService
	log        *logrus.Logger
}

func New(challenges *services.ChallengeService, log *logrus.Logger) *Controller {
	return &Controller{challenges: challenges, log: log}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalBody).(*schemas.CreateChallenge)

	challenge, err := ctl.challenges.Create(c.UserContext(), *body)
	if err != nil {
		return ctl.fail(c, err, "Failed to create challenge")
	}
	return middleware.Success(c, fiber.StatusCreated, "Challenge created", schemas.ChallengeFromModel(challenge).Public())
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	query := c.Locals(middleware.LocalQuery).(*schemas.Pagination)

	challenges, total, err := ctl.challenges.List(c.UserContext(), query.Page, query.Limit)
	if err != nil {
		return ctl.fail(c, err, "Failed to list challenges")
	}

	list := schemas.ChallengeList{
		Challenges:      make([]schemas.Challenge, 0, len(challenges)),
		TotalChallenges: total,
		TotalPages:      services.TotalPages(total, query.Limit),
		CurrentPage:     query.Page,
	}
	for _, ch := range challenges {
		list.Challenges = append(list.Challenges, schemas.ChallengeFromModel(ch).Public())
	}
	return middleware.Success(c, fiber.StatusOK, "Challenges fetched", list)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.ChallengeID)

	challenge, err := ctl.challenges.Get(c.UserContext(), params.ID)
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch challenge")
	}
	return middleware.Success(c, fiber.StatusOK, "Challenge fetched", schemas.ChallengeDetailFromModel(challenge))
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.ChallengeID)
	body := c.Locals(middleware.LocalBody).(*schemas.UpdateChallenge)

	challenge, err := ctl.challenges.Update(c.UserContext(), params.ID, *body)
	if err != nil {
		return ctl.fail(c, err, "Failed to update challenge")
	}
	return middleware.Success(c, fiber.StatusOK, "Challenge updated", schemas.ChallengeFromModel(challenge).Public())
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.ChallengeID)

	if err := ctl.challenges.Delete(c.UserContext(), params.ID); err != nil {
		return ctl.fail(c, err, "Failed to delete challenge")
	}
	return middleware.Success(c, fiber.StatusOK, "Challenge deleted", nil)
}

func (ctl *Controller) fail(c *fiber.Ctx, err error, message string) error {
	ctl.log.WithError(err).Warn(message)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return middleware.Failure(c, svcErr.Status, svcErr.Message, nil)
	}
	return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
