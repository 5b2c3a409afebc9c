package dto

type QuestionCreateRequest struct {
	Text        string `json:"text" binding:"required"`
	Explanation string `json:"explanation" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required,oneof=easy medium advanced"`
}

type QuestionResponse struct {
	ID          uint   `json:"id"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	CategoryID  uint   `json:"category_id"`
	Difficulty  string `json:"difficulty"`
}

// QuestionFilter collects the optional list-query parameters.
type QuestionFilter struct {
	CategoryID *uint   `form:"category"`
	Difficulty *string `form:"difficulty" binding:"omitempty,oneof=easy medium advanced"`
	Limit      int     `form:"limit,default=20" binding:"omitempty,min=1"`
}

type FavoriteToggleResponse struct {
	Status string `json:"status"` // "added" or "removed"
}
