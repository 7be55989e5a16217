package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"unique;not null" json:"email"`
	Password  string  `gorm:"not null" json:"-"`
	Score     int     `gorm:"not null;default:0" json:"score"`
	GuildID   *string `gorm:"type:uuid" json:"guildId"`
	Guild     *Guild  `gorm:"foreignKey:GuildID" json:"guild,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
