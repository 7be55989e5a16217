package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"guildtrivia/models"
	"guildtrivia/schemas"
)

// QuestionService is a thin CRUD wrapper over questions and their answers.
type QuestionService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewQuestionService(db *gorm.DB, log *logrus.Logger) *QuestionService {
	return &QuestionService{db: db, log: log}
}

// Create persists a question together with its nested answers.
func (s *QuestionService) Create(ctx context.Context, input schemas.CreateQuestion) (models.Question, error) {
	var challenge models.Challenge
	if err := s.db.WithContext(ctx).First(&challenge, "id = ?", input.ChallengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, ErrChallengeNotFound
		}
		return models.Question{}, err
	}

	question := models.Question{
		ChallengeID:  input.ChallengeID,
		QuestionText: input.QuestionText,
		Points:       input.Points,
	}
	for _, a := range input.Answers {
		question.Answers = append(question.Answers, models.Answer{
			Answer:    a.Answer,
			IsCorrect: a.IsCorrect,
		})
	}

	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Preload("Answers").
		Order("created_at").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Get(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).
		Preload("Answers").
		First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, ErrQuestionNotFound
		}
		return models.Question{}, err
	}
	return question, nil
}

// Update applies the partial shape; when answers are provided they replace
// the existing set wholesale inside one transaction.
func (s *QuestionService) Update(ctx context.Context, id string, input schemas.UpdateQuestion) (models.Question, error) {
	question, err := s.Get(ctx, id)
	if err != nil {
		return models.Question{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.QuestionText != nil {
			if err := tx.Model(&question).Update("question_text", *input.QuestionText).Error; err != nil {
				return err
			}
		}
		if len(input.Answers) > 0 {
			if err := tx.Delete(&models.Answer{}, "question_id = ?", id).Error; err != nil {
				return err
			}
			replacements := make([]models.Answer, 0, len(input.Answers))
			for _, a := range input.Answers {
				replacements = append(replacements, models.Answer{
					QuestionID: id,
					Answer:     a.Answer,
					IsCorrect:  a.IsCorrect,
				})
			}
			if err := tx.Create(&replacements).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Question{}, err
	}

	return s.Get(ctx, id)
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	s.log.WithField("questionId", id).Info("Question deleted")
	return nil
}
