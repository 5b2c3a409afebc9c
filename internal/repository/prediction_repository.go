package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type PredictionRepository interface {
	Create(prediction *model.Prediction) error
	FindAll() ([]model.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(prediction *model.Prediction) error {
	return r.db.Create(prediction).Error
}

func (r *predictionRepository) FindAll() ([]model.Prediction, error) {
	var predictions []model.Prediction
	if err := r.db.Order("id desc").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
