package model

import (
	"time"
)

// Comment is optionally attached to one of question/video. The columns stay
// independently nullable; the service layer rejects more than one parent.
type Comment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	QuestionID *uint     `json:"question_id,omitempty" gorm:"index"`
	VideoID    *uint     `json:"video_id,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID"`
	Question *Question `json:"-" gorm:"foreignKey:QuestionID"`
	Video    *Video    `json:"-" gorm:"foreignKey:VideoID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:CommentID"`
}
