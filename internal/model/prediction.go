package model

import (
	"time"
)

// Prediction records one classification of an uploaded traffic-sign photo.
type Prediction struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ImagePath      string    `json:"image_path"`
	PredictedLabel string    `json:"predicted_label"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}
