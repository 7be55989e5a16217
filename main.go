package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"guildtrivia/config"
	challengeController "guildtrivia/controllers/challenge"
	downloadController "guildtrivia/controllers/download"
	questionController "guildtrivia/controllers/question"
	rankingController "guildtrivia/controllers/ranking"
	responseController "guildtrivia/controllers/response"
	userController "guildtrivia/controllers/user"
	"guildtrivia/database"
	"guildtrivia/middleware"
	"guildtrivia/routers/challengeRoutes"
	"guildtrivia/routers/downloadRoutes"
	"guildtrivia/routers/questionRoutes"
	"guildtrivia/routers/rankingRoutes"
	"guildtrivia/routers/responseRoutes"
	"guildtrivia/routers/serverRoutes"
	"guildtrivia/routers/userRoutes"
	"guildtrivia/services"
	"guildtrivia/utils"
)

func main() {
	config.LoadConfig()

	log := utils.NewLogger("guildtrivia")

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.WithError(err).Fatal("Database connection failed")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))
	app.Use(middleware.Timing())

	responses := services.NewResponseService(db, log)
	challenges := services.NewChallengeService(db, log)
	questions := services.NewQuestionService(db, log)
	users := services.NewUserService(db, log)
	ranks := services.NewRankService(db, log)
	releases := services.NewReleaseService(
		config.AppConfig.GitHubAPIBase,
		config.AppConfig.GitHubOwner,
		config.AppConfig.GitHubRepo,
		log,
	)

	serverRoutes.SetupServerRoutes(app, log)
	userRoutes.SetupUserRoutes(app, userController.New(users, log), log)
	challengeRoutes.SetupChallengeRoutes(app, challengeController.New(challenges, log), log)
	questionRoutes.SetupQuestionRoutes(app, questionController.New(questions, log), log)
	responseRoutes.SetupResponseRoutes(app, responseController.New(responses, log), log)
	rankingRoutes.SetupRankingRoutes(app, rankingController.New(ranks, log), log)
	downloadRoutes.SetupDownloadRoutes(app, downloadController.New(releases, log), log)

	scheduler, err := utils.InitializeRankScheduler(ranks, log)
	if err != nil {
		log.WithError(err).Fatal("Rank scheduler failed to start")
	}
	defer scheduler.Stop()

	log.WithField("port", config.AppConfig.Port).Info("Server starting")
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}
