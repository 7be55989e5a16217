package userValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

func Register(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Body: middleware.Body[schemas.CreateUser](),
	}, log)
}

func Login(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Body: middleware.Body[schemas.Login](),
	}, log)
}

func Get(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.UserID](),
	}, log)
}
