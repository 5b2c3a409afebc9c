package dto

import "time"

type LikeCreateRequest struct {
	UserID     uint  `json:"user_id" binding:"required"`
	QuestionID *uint `json:"question_id"`
	VideoID    *uint `json:"video_id"`
	CommentID  *uint `json:"comment_id"`
}

func (r LikeCreateRequest) ParentCount() int {
	return countRefs(r.QuestionID, r.VideoID, r.CommentID)
}

type LikeResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	QuestionID *uint     `json:"question_id,omitempty"`
	VideoID    *uint     `json:"video_id,omitempty"`
	CommentID  *uint     `json:"comment_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
