package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Challenge struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Description      string     `json:"description"`
	Difficulty       int        `gorm:"not null;default:1" json:"difficulty"`
	IsGuildChallenge bool       `gorm:"not null;default:false" json:"isGuildChallenge"`
	Questions        []Question `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
