package questionController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
)

type Controller struct {
	questions *services.QuestionService
	log       *logrus.Logger
}

func New(questions *services.QuestionService, log *logrus.Logger) *Controller {
	return &Controller{questions: questions, log: log}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalBody).(*schemas.CreateQuestion)

	question, err := ctl.questions.Create(c.UserContext(), *body)
	if err != nil {
		return ctl.fail(c, err, "Failed to create question")
	}
	return middleware.Success(c, fiber.StatusCreated, "Question created", schemas.QuestionFromModel(question).Public())
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	questions, err := ctl.questions.List(c.UserContext())
	if err != nil {
		return ctl.fail(c, err, "Failed to list questions")
	}

	public := make([]schemas.Question, 0, len(questions))
	for _, q := range questions {
		public = append(public, schemas.QuestionFromModel(q).Public())
	}
	return middleware.SuccessList(c, fiber.StatusOK, "Questions fetched", public)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.QuestionID)

	question, err := ctl.questions.Get(c.UserContext(), params.ID)
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch question")
	}
	return middleware.Success(c, fiber.StatusOK, "Question fetched", schemas.QuestionFromModel(question).Public())
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.QuestionID)
	body := c.Locals(middleware.LocalBody).(*schemas.UpdateQuestion)

	question, err := ctl.questions.Update(c.UserContext(), params.ID, *body)
	if err != nil {
		return ctl.fail(c, err, "Failed to update question")
	}
	return middleware.Success(c, fiber.StatusOK, "Question updated", schemas.QuestionFromModel(question).Public())
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.QuestionID)

	if err := ctl.questions.Delete(c.UserContext(), params.ID); err != nil {
		return ctl.fail(c, err, "Failed to delete question")
	}
	return middleware.Success(c, fiber.StatusOK, "Question deleted", nil)
}

func (ctl *Controller) fail(c *fiber.Ctx, err error, message string) error {
	ctl.log.WithError(err).Warn(message)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return middleware.Failure(c, svcErr.Status, svcErr.Message, nil)
	}
	return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
