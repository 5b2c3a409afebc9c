package model

import (
	"time"
)

// Favorite marks a question a user wants to revisit. Toggled by the favorite
// endpoint; one row per (user, question).
type Favorite struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_user_question"`
	CreatedAt  time.Time `json:"created_at"`

	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
}
