package model

import (
	"time"
)

// Exam status values accepted by the API.
const (
	ExamInProgress = "in_progress"
	ExamPassed     = "passed"
	ExamFailed     = "failed"
	ExamFinished   = "finished"
)

type Exam struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Score      int        `json:"score" gorm:"default:0"`
	Status     string     `json:"status" gorm:"size:16;default:'in_progress'"`
	StartedAt  time.Time  `json:"started_at" gorm:"autoCreateTime"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	User      User       `json:"-" gorm:"foreignKey:UserID"`
	Questions []Question `json:"questions,omitempty" gorm:"many2many:question_exam;"`
}
