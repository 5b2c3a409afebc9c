package dto

import "time"

// PredictionResponse mirrors the predict contract: top class name plus a
// percentage string rounded to two decimals, e.g. "97.41%".
type PredictionResponse struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
}

type PredictionRecordResponse struct {
	ID             uint      `json:"id"`
	ImagePath      string    `json:"image_path"`
	PredictedLabel string    `json:"predicted_label"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}
