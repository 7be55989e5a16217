package services

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"guildtrivia/models"
	"guildtrivia/schemas"
)

// ChallengeService is a thin CRUD wrapper over the challenge table.
type ChallengeService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewChallengeService(db *gorm.DB, log *logrus.Logger) *ChallengeService {
	return &ChallengeService{db: db, log: log}
}

func (s *ChallengeService) Create(ctx context.Context, input schemas.CreateChallenge) (models.Challenge, error) {
	challenge := models.Challenge{
		Name:             input.Name,
		Description:      input.Description,
		Difficulty:       input.Difficulty,
		IsGuildChallenge: input.IsGuildChallenge,
	}
	if err := s.db.WithContext(ctx).Create(&challenge).Error; err != nil {
		return models.Challenge{}, err
	}
	return challenge, nil
}

func (s *ChallengeService) List(ctx context.Context, page, limit int) ([]models.Challenge, int64, error) {
	var challenges []models.Challenge
	err := s.db.WithContext(ctx).
		Offset((page - 1) * limit).
		Limit(limit).
		Order("created_at").
		Find(&challenges).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Challenge{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

// Get loads one challenge expanded with its questions and answers.
func (s *ChallengeService) Get(ctx context.Context, id string) (models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.WithContext(ctx).
		Preload("Questions.Answers").
		First(&challenge, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Challenge{}, ErrChallengeNotFound
		}
		return models.Challenge{}, err
	}
	return challenge, nil
}

func (s *ChallengeService) Update(ctx context.Context, id string, input schemas.UpdateChallenge) (models.Challenge, error) {
	challenge, err := s.Get(ctx, id)
	if err != nil {
		return models.Challenge{}, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Difficulty != nil {
		updates["difficulty"] = *input.Difficulty
	}
	if input.IsGuildChallenge != nil {
		updates["is_guild_challenge"] = *input.IsGuildChallenge
	}
	if len(updates) == 0 {
		return challenge, nil
	}

	if err := s.db.WithContext(ctx).Model(&challenge).Updates(updates).Error; err != nil {
		return models.Challenge{}, err
	}
	return challenge, nil
}

func (s *ChallengeService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Challenge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChallengeNotFound
	}
	s.log.WithField("challengeId", id).Info("Challenge deleted")
	return nil
}

// TotalPages computes the page count for a listing.
func TotalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
