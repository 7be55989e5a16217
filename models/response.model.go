package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Response is the submission ledger. The composite unique index is the
// backstop for the duplicate check in the scoring transaction: at most one
// row may ever exist per (user, answer) pair.
type Response struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_responses_user_answer" json:"userId"`
	AnswerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_responses_user_answer" json:"answerId"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
