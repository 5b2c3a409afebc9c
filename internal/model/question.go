package model

// Question difficulty values accepted by the API.
const (
	DifficultyEasy     = "easy"
	DifficultyMedium   = "medium"
	DifficultyAdvanced = "advanced"
)

type Question struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Text        string `json:"text" gorm:"type:text;not null"`
	Explanation string `json:"explanation" gorm:"type:text;not null"`
	Difficulty  string `json:"difficulty" gorm:"size:16;not null"`
	CategoryID  uint   `json:"category_id" gorm:"not null;index"`

	Category      Category       `json:"-" gorm:"foreignKey:CategoryID"`
	AnswerOptions []AnswerOption `json:"answer_options,omitempty" gorm:"foreignKey:QuestionID"`
	Exams         []Exam         `json:"exams,omitempty" gorm:"many2many:question_exam;"`
	Comments      []Comment      `json:"comments,omitempty" gorm:"foreignKey:QuestionID"`
	Likes         []Like         `json:"likes,omitempty" gorm:"foreignKey:QuestionID"`
}
