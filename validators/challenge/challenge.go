package challengeValidator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

func Create(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Body: middleware.Body[schemas.CreateChallenge](),
	}, log)
}

func List(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Query: middleware.Values[schemas.Pagination](),
	}, log)
}

func Get(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.ChallengeID](),
	}, log)
}

func Update(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.ChallengeID](),
		Body:   middleware.Body[schemas.UpdateChallenge](),
	}, log)
}

func Delete(log *logrus.Logger) fiber.Handler {
	return middleware.Validate(middleware.ValidateConfig{
		Params: middleware.Values[schemas.ChallengeID](),
	}, log)
}
