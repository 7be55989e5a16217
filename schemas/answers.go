package schemas

import (
	"time"

	"guildtrivia/models"
)

// AnswerDAL is the full persistence shape of an answer, correctness flag
// and timestamps included. It never crosses the API boundary.
type AnswerDAL struct {
	ID         string    `json:"id" validate:"required,uuid4"`
	QuestionID string    `json:"questionId" validate:"required,uuid4"`
	Answer     string    `json:"answer" validate:"required"`
	IsCorrect  bool      `json:"isCorrect"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Answer is the API shape: the DAL shape without timestamps.
type Answer struct {
	ID         string `json:"id" validate:"required,uuid4"`
	QuestionID string `json:"questionId" validate:"required,uuid4"`
	Answer     string `json:"answer" validate:"required"`
	IsCorrect  bool   `json:"isCorrect"`
}

// AnswerSecret additionally strips the correctness flag. This is the only
// answer shape players ever see.
type AnswerSecret struct {
	ID         string `json:"id" validate:"required,uuid4"`
	QuestionID string `json:"questionId" validate:"required,uuid4"`
	Answer     string `json:"answer" validate:"required"`
}

// CreateAnswer is the inbound shape when creating answers under a question.
// IsCorrect defaults to false when absent.
type CreateAnswer struct {
	Answer    string `json:"answer" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// The narrowing below is deliberately field-by-field: a column added to the
// model or the DAL shape stays invisible to the public shapes until it is
// mapped here explicitly.

func AnswerFromModel(m models.Answer) AnswerDAL {
	return AnswerDAL{
		ID:         m.ID,
		QuestionID: m.QuestionID,
		Answer:     m.Answer,
		IsCorrect:  m.IsCorrect,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (d AnswerDAL) Public() Answer {
	return Answer{
		ID:         d.ID,
		QuestionID: d.QuestionID,
		Answer:     d.Answer,
		IsCorrect:  d.IsCorrect,
	}
}

func (a Answer) Secret() AnswerSecret {
	return AnswerSecret{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Answer:     a.Answer,
	}
}
