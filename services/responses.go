package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"guildtrivia/models"
)

// ResponseService is the scoring engine. Every submission runs as a single
// transaction: verify user, verify answers, reject duplicates, persist the
// batch, re-evaluate touched challenges and apply relative score
// increments. A failure at any step rolls back everything.
type ResponseService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewResponseService(db *gorm.DB, log *logrus.Logger) *ResponseService {
	return &ResponseService{db: db, log: log}
}

// SubmitResponses records one answer batch for a user and returns the
// marginal score earned by this call.
func (s *ResponseService) SubmitResponses(ctx context.Context, userID string, answerIDs []string) (int, error) {
	var totalScore int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Guild").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// Exact cardinality check: every requested id must resolve, a
		// duplicate id inside the batch fails the same way.
		var answers []models.Answer
		if err := tx.Where("id IN ?", answerIDs).Find(&answers).Error; err != nil {
			return err
		}
		if len(answers) != len(answerIDs) {
			return ErrAnswerNotFound
		}

		// A single already-answered item blocks the entire batch.
		var duplicates int64
		if err := tx.Model(&models.Response{}).
			Where("user_id = ? AND answer_id IN ?", userID, answerIDs).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return ErrResponseExists
		}

		var prior []models.Response
		if err := tx.Where("user_id = ?", userID).Find(&prior).Error; err != nil {
			return err
		}

		records := make([]models.Response, 0, len(answerIDs))
		for _, answerID := range answerIDs {
			records = append(records, models.Response{UserID: userID, AnswerID: answerID})
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}

		answeredBefore := make(map[string]bool, len(prior))
		answeredNow := make(map[string]bool, len(prior)+len(answerIDs))
		for _, r := range prior {
			answeredBefore[r.AnswerID] = true
			answeredNow[r.AnswerID] = true
		}
		for _, answerID := range answerIDs {
			answeredNow[answerID] = true
		}

		challenges, err := s.touchedChallenges(tx, userID)
		if err != nil {
			return err
		}

		guildScore := 0
		for _, challenge := range challenges {
			completeNow, points := evaluateChallenge(challenge, answeredNow)
			if !completeNow {
				continue
			}
			// A challenge may only score in the call where it first
			// becomes complete; recorded answers are append-only, so a
			// challenge complete before this batch has already been paid.
			if completeBefore, _ := evaluateChallenge(challenge, answeredBefore); completeBefore {
				continue
			}

			totalScore += points
			if challenge.IsGuildChallenge && user.GuildID != nil {
				guildScore += points
			}
		}

		if totalScore > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				UpdateColumn("score", gorm.Expr("score + ?", totalScore)).Error; err != nil {
				return err
			}
		}
		if guildScore > 0 && user.GuildID != nil {
			if err := tx.Model(&models.Guild{}).Where("id = ?", *user.GuildID).
				UpdateColumn("score", gorm.Expr("score + ?", guildScore)).Error; err != nil {
				return err
			}
		}

		s.log.WithFields(logrus.Fields{
			"userId":     userID,
			"answers":    len(answerIDs),
			"score":      totalScore,
			"guildScore": guildScore,
		}).Info("Responses recorded")

		return nil
	})
	if err != nil {
		return 0, err
	}

	return totalScore, nil
}

// touchedChallenges loads every challenge the user has submitted at least
// one answer toward, fully expanded with questions and answers.
func (s *ResponseService) touchedChallenges(tx *gorm.DB, userID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := tx.
		Distinct("challenges.*").
		Joins("JOIN questions ON questions.challenge_id = challenges.id").
		Joins("JOIN answers ON answers.question_id = questions.id").
		Joins("JOIN responses ON responses.answer_id = answers.id").
		Where("responses.user_id = ?", userID).
		Preload("Questions.Answers").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// evaluateChallenge decides completion and the challenge point total for
// one user, given the set of answer ids the user has submitted.
//
// Completion is presence, not correctness: the challenge is complete once
// every question has at least one submitted answer. A question awards its
// full point value only when the submitted set for that question exactly
// equals its correct set; anything else awards zero for that question.
func evaluateChallenge(challenge models.Challenge, answered map[string]bool) (bool, int) {
	points := 0

	for _, question := range challenge.Questions {
		// A question without answers can never be satisfied.
		questionAnswered := false
		for _, answer := range question.Answers {
			if answered[answer.ID] {
				questionAnswered = true
				break
			}
		}
		if !questionAnswered {
			return false, 0
		}

		exact := true
		for _, answer := range question.Answers {
			if answered[answer.ID] != answer.IsCorrect {
				exact = false
				break
			}
		}
		if exact {
			points += question.Points
		}
	}

	return true, points
}
