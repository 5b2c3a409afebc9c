package dto

type VideoCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
}

type VideoResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ViewsCount  int    `json:"views_count"`
	LikesCount  int    `json:"likes_count"`
}

// VideoCommentRequest attaches a comment directly to a video.
type VideoCommentRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type VideoLikeResponse struct {
	Message    string `json:"message"`
	TotalLikes int    `json:"total_likes"`
}
