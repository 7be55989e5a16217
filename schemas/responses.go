package schemas

import (
	"time"

	"guildtrivia/models"
)

// SubmitResponses is the submission payload: one user, one or more answer
// ids. The scoring transaction relies on this shape being enforced before
// it runs, it never re-checks the batch for emptiness or id format.
type SubmitResponses struct {
	UserID   string   `json:"userId" validate:"required,uuid4"`
	AnswerID []string `json:"answerId" validate:"required,min=1,dive,uuid4"`
}

// ScoreResult is the optional submission response body: the marginal score
// earned by this call.
type ScoreResult struct {
	Score int `json:"score" validate:"gte=0"`
}

// ResponseDAL is the persistence shape of a ledger entry.
type ResponseDAL struct {
	UserID    string    `json:"userId" validate:"required,uuid4"`
	AnswerID  string    `json:"answerId" validate:"required,uuid4"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Response is the API shape without timestamps.
type Response struct {
	UserID   string `json:"userId" validate:"required,uuid4"`
	AnswerID string `json:"answerId" validate:"required,uuid4"`
}

func ResponseFromModel(m models.Response) ResponseDAL {
	return ResponseDAL{
		UserID:    m.UserID,
		AnswerID:  m.AnswerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (d ResponseDAL) Public() Response {
	return Response{
		UserID:   d.UserID,
		AnswerID: d.AnswerID,
	}
}
