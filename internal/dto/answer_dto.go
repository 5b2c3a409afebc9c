package dto

type AnswerOptionCreateRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type AnswerOptionResponse struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	QuestionID uint   `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}
