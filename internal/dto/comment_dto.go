package dto

import "time"

type CommentCreateRequest struct {
	Text       string `json:"text" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	QuestionID *uint  `json:"question_id"`
	VideoID    *uint  `json:"video_id"`
}

// ParentCount reports how many parent references are set. The schema keeps the
// columns independently nullable; anything above one is rejected before insert.
func (r CommentCreateRequest) ParentCount() int {
	return countRefs(r.QuestionID, r.VideoID)
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	UserID     uint      `json:"user_id"`
	QuestionID *uint     `json:"question_id,omitempty"`
	VideoID    *uint     `json:"video_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func countRefs(ids ...*uint) int {
	n := 0
	for _, id := range ids {
		if id != nil {
			n++
		}
	}
	return n
}
