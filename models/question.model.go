package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID           string   `gorm:"type:uuid;primaryKey" json:"id"`
	ChallengeID  string   `gorm:"type:uuid;not null;index" json:"challengeId"`
	QuestionText string   `gorm:"not null" json:"questionText"`
	Points       int      `gorm:"not null;default:0" json:"points"`
	Answers      []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
