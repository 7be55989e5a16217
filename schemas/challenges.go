package schemas

import (
	"time"

	"guildtrivia/models"
)

// ChallengeDAL is the persistence shape of a challenge.
type ChallengeDAL struct {
	ID               string    `json:"id" validate:"required,uuid4"`
	Name             string    `json:"name" validate:"required"`
	Description      string    `json:"description"`
	Difficulty       int       `json:"difficulty" validate:"gte=1"`
	IsGuildChallenge bool      `json:"isGuildChallenge"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Challenge is the API shape without timestamps.
type Challenge struct {
	ID               string `json:"id" validate:"required,uuid4"`
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Difficulty       int    `json:"difficulty" validate:"gte=1"`
	IsGuildChallenge bool   `json:"isGuildChallenge"`
}

// ChallengeDetail expands the challenge with its questions, answers in
// their secret shape.
type ChallengeDetail struct {
	Challenge
	Questions []Question `json:"questions"`
}

// CreateChallenge is the inbound creation shape. IsGuildChallenge defaults
// to false when absent.
type CreateChallenge struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Difficulty       int    `json:"difficulty" validate:"gte=1"`
	IsGuildChallenge bool   `json:"isGuildChallenge"`
}

// UpdateChallenge is the partial update shape.
type UpdateChallenge struct {
	Name             *string `json:"name" validate:"omitempty,min=1"`
	Description      *string `json:"description"`
	Difficulty       *int    `json:"difficulty" validate:"omitempty,gte=1"`
	IsGuildChallenge *bool   `json:"isGuildChallenge"`
}

// ChallengeID validates the :id path parameter.
type ChallengeID struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ChallengeList is the paginated listing response.
type ChallengeList struct {
	Challenges      []Challenge `json:"challenges"`
	TotalChallenges int64       `json:"totalChallenges"`
	TotalPages      int         `json:"totalPages"`
	CurrentPage     int         `json:"currentPage"`
}

// Pagination validates listing query parameters and defaults them.
type Pagination struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

func (p *Pagination) SetDefaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = 10
	}
}

func ChallengeFromModel(m models.Challenge) ChallengeDAL {
	return ChallengeDAL{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Difficulty:       m.Difficulty,
		IsGuildChallenge: m.IsGuildChallenge,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (d ChallengeDAL) Public() Challenge {
	return Challenge{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Difficulty:       d.Difficulty,
		IsGuildChallenge: d.IsGuildChallenge,
	}
}

func ChallengeDetailFromModel(m models.Challenge) ChallengeDetail {
	detail := ChallengeDetail{Challenge: ChallengeFromModel(m).Public()}
	for _, q := range m.Questions {
		detail.Questions = append(detail.Questions, QuestionFromModel(q).Public())
	}
	return detail
}
