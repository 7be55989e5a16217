package schemas

import (
	"time"

	"guildtrivia/models"
)

// QuestionDAL is the persistence shape of a question with its full answers.
type QuestionDAL struct {
	ID           string      `json:"id" validate:"required,uuid4"`
	ChallengeID  string      `json:"challengeId" validate:"required,uuid4"`
	QuestionText string      `json:"questionText" validate:"required"`
	Points       int         `json:"points" validate:"gte=0"`
	Answers      []AnswerDAL `json:"answers" validate:"min=1,dive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Question is the API shape: no timestamps, answers stripped of their
// correctness flag.
type Question struct {
	ID           string         `json:"id" validate:"required,uuid4"`
	ChallengeID  string         `json:"challengeId" validate:"required,uuid4"`
	QuestionText string         `json:"questionText" validate:"required"`
	Points       int            `json:"points" validate:"gte=0"`
	Answers      []AnswerSecret `json:"answers" validate:"min=1,dive"`
}

// CreateQuestion creates a question together with its answers. Points
// defaults to 0 when absent, the answer list may not be empty.
type CreateQuestion struct {
	ChallengeID  string         `json:"challengeId" validate:"required,uuid4"`
	QuestionText string         `json:"questionText" validate:"required"`
	Points       int            `json:"points" validate:"gte=0"`
	Answers      []CreateAnswer `json:"answers" validate:"min=1,dive"`
}

// UpdateQuestion is the partial shape. Points is immutable after creation.
type UpdateQuestion struct {
	QuestionText *string        `json:"questionText" validate:"omitempty,min=1"`
	Answers      []CreateAnswer `json:"answers" validate:"omitempty,min=1,dive"`
}

// QuestionID validates the :id path parameter.
type QuestionID struct {
	ID string `json:"id" validate:"required,uuid4"`
}

func QuestionFromModel(m models.Question) QuestionDAL {
	d := QuestionDAL{
		ID:           m.ID,
		ChallengeID:  m.ChallengeID,
		QuestionText: m.QuestionText,
		Points:       m.Points,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, a := range m.Answers {
		d.Answers = append(d.Answers, AnswerFromModel(a))
	}
	return d
}

func (d QuestionDAL) Public() Question {
	q := Question{
		ID:           d.ID,
		ChallengeID:  d.ChallengeID,
		QuestionText: d.QuestionText,
		Points:       d.Points,
	}
	for _, a := range d.Answers {
		q.Answers = append(q.Answers, a.Public().Secret())
	}
	return q
}
