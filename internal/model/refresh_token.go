package model

import (
	"time"
)

// RefreshToken holds one persisted refresh token per successful login.
// Tokens are intentionally not unique: concurrent sessions are allowed.
type RefreshToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `json:"token" gorm:"type:text;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
