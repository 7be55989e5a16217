package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guild struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string `gorm:"unique;not null" json:"name"`
	Score     int    `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Guild) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
