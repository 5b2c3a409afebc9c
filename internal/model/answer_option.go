package model

type AnswerOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Text       string `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`

	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
}
