package model

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName string    `json:"first_name" gorm:"size:32"`
	LastName  string    `json:"last_name" gorm:"size:32"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Exams    []Exam    `json:"exams,omitempty" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:UserID"`
	// Refresh tokens are the only ownership that cascades with the user.
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
