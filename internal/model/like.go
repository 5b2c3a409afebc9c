package model

import (
	"time"
)

// Like is optionally attached to one of question/video/comment, same nullable
// pattern as Comment.
type Like struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	QuestionID *uint     `json:"question_id,omitempty" gorm:"index"`
	VideoID    *uint     `json:"video_id,omitempty" gorm:"index"`
	CommentID  *uint     `json:"comment_id,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`

	User     User      `json:"-" gorm:"foreignKey:UserID"`
	Question *Question `json:"-" gorm:"foreignKey:QuestionID"`
	Video    *Video    `json:"-" gorm:"foreignKey:VideoID"`
	Comment  *Comment  `json:"-" gorm:"foreignKey:CommentID"`
}
