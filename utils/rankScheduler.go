package utils

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"guildtrivia/config"
	"guildtrivia/services"
)

// InitializeRankScheduler starts the periodic leaderboard snapshot job. It
// logs the current top users and guilds on the configured cron schedule.
func InitializeRankScheduler(ranks *services.RankService, log *logrus.Logger) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.RankSnapshotCron, func() {
		snapshotRanking(ranks, log)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.WithField("schedule", config.AppConfig.RankSnapshotCron).Info("Rank scheduler started")
	return c, nil
}

func snapshotRanking(ranks *services.RankService, log *logrus.Logger) {
	ctx := context.Background()
	limit := config.AppConfig.RankSnapshotSize

	users, err := ranks.TopUsers(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Rank snapshot failed for users")
		return
	}
	guilds, err := ranks.TopGuilds(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Rank snapshot failed for guilds")
		return
	}

	log.WithFields(logrus.Fields{
		"topUsers":  users,
		"topGuilds": guilds,
	}).Info("Leaderboard snapshot")
}
