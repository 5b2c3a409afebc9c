package dto

import "time"

type ExamCreateRequest struct {
	UserID     uint       `json:"user_id" binding:"required"`
	Score      int        `json:"score"`
	Status     string     `json:"status" binding:"omitempty,oneof=in_progress passed failed finished"`
	FinishedAt *time.Time `json:"finished_at"`
}

type ExamResponse struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Score      int        `json:"score"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
