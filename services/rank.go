package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"guildtrivia/models"
	"guildtrivia/schemas"
)

// RankService reads the user and guild leaderboards.
type RankService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewRankService(db *gorm.DB, log *logrus.Logger) *RankService {
	return &RankService{db: db, log: log}
}

func (s *RankService) TopUsers(ctx context.Context, limit int) ([]schemas.Rank, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	ranks := make([]schemas.Rank, 0, len(users))
	for i, u := range users {
		ranks = append(ranks, schemas.Rank{Rank: i + 1, Name: u.Name, Score: u.Score})
	}
	return ranks, nil
}

func (s *RankService) TopGuilds(ctx context.Context, limit int) ([]schemas.Rank, error) {
	var guilds []models.Guild
	err := s.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&guilds).Error
	if err != nil {
		return nil, err
	}

	ranks := make([]schemas.Rank, 0, len(guilds))
	for i, g := range guilds {
		ranks = append(ranks, schemas.Rank{Rank: i + 1, Name: g.Name, Score: g.Score})
	}
	return ranks, nil
}
