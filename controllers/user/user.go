package userController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
	"guildtrivia/services"
	"guildtrivia/utils"
)

type Controller struct {
	users *services.UserService
	log   *logrus.Logger
}

func New(users *services.UserService, log *logrus.Logger) *Controller {
	return &Controller{users: users, log: log}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalBody).(*schemas.CreateUser)

	user, err := ctl.users.Register(c.UserContext(), *body)
	if err != nil {
		return ctl.fail(c, err, "Failed to register user")
	}

	// Fire and forget, registration never waits on SMTP.
	go utils.SendWelcomeEmail(user.Email, user.Name)

	return middleware.Success(c, fiber.StatusCreated, "User registered successfully", schemas.UserFromModel(user))
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	body := c.Locals(middleware.LocalBody).(*schemas.Login)

	user, err := ctl.users.Login(c.UserContext(), *body)
	if err != nil {
		return ctl.fail(c, err, "Login failed")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		return ctl.fail(c, err, "Failed to issue token")
	}
	return middleware.Success(c, fiber.StatusOK, "Login successful", schemas.LoginResult{AccessToken: token})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	users, err := ctl.users.List(c.UserContext())
	if err != nil {
		return ctl.fail(c, err, "Failed to list users")
	}

	public := make([]schemas.UserPublic, 0, len(users))
	for _, u := range users {
		public = append(public, schemas.UserFromModel(u))
	}
	return middleware.SuccessList(c, fiber.StatusOK, "Users fetched", public)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	params := c.Locals(middleware.LocalParams).(*schemas.UserID)

	user, err := ctl.users.Get(c.UserContext(), params.ID)
	if err != nil {
		return ctl.fail(c, err, "Failed to fetch user")
	}
	return middleware.Success(c, fiber.StatusOK, "User fetched", schemas.UserFromModel(user))
}

func (ctl *Controller) fail(c *fiber.Ctx, err error, message string) error {
	ctl.log.WithError(err).Warn(message)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return middleware.Failure(c, svcErr.Status, svcErr.Message, nil)
	}
	return middleware.Failure(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
