package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer carries the correctness flag. It is never serialized through the
// public schemas, only through the DAL shapes in the schemas package.
type Answer struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID string `gorm:"type:uuid;not null;index" json:"questionId"`
	Answer     string `gorm:"not null" json:"answer"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
