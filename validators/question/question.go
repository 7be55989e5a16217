package questionValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

func Create(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Body: middleware.Body[schemas.CreateQuestion](),
	}, log)
}

func Get(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.QuestionID](),
	}, log)
}

func Update(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.QuestionID](),
		Body:   middleware.Body[schemas.UpdateQuestion](),
	}, log)
}

func Delete(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.QuestionID](),
	}, log)
}
