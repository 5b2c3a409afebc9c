package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/melisbekov/pdd-api/internal/classifier"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type PredictionService interface {
	Predict(data []byte) (*dto.PredictionResponse, error)
	List() ([]dto.PredictionRecordResponse, error)
}

// Predictor is the classification dependency; *classifier.Classifier is the
// production implementation.
type Predictor interface {
	Predict(data []byte) (*classifier.Result, error)
}

type predictionService struct {
	clf            Predictor
	predictionRepo repository.PredictionRepository
	uploadDir      string
}

func NewPredictionService(clf Predictor, predictionRepo repository.PredictionRepository, uploadDir string) PredictionService {
	return &predictionService{clf: clf, predictionRepo: predictionRepo, uploadDir: uploadDir}
}

func (s *predictionService) Predict(data []byte) (*dto.PredictionResponse, error) {
	result, err := s.clf.Predict(data)
	if err != nil {
		if errors.Is(err, classifier.ErrInvalidImage) {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
		}
		return nil, fmt.Errorf("inference error: %w", err)
	}

	// History row is best-effort; a failed write must not fail the prediction.
	imagePath, saveErr := s.storeUpload(data)
	if saveErr != nil {
		log.Warn().Err(saveErr).Msg("Failed to store classified upload")
	}
	record := model.Prediction{
		ImagePath:      imagePath,
		PredictedLabel: result.Label,
		Confidence:     result.Confidence,
	}
	if err := s.predictionRepo.Create(&record); err != nil {
		log.Warn().Err(err).Msg("Failed to persist prediction record")
	}

	return &dto.PredictionResponse{
		Name:       result.Label,
		Confidence: classifier.FormatConfidence(result.Confidence),
	}, nil
}

func (s *predictionService) List() ([]dto.PredictionRecordResponse, error) {
	records, err := s.predictionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching predictions: %w", err)
	}
	resp := make([]dto.PredictionRecordResponse, 0, len(records))
	for _, r := range records {
		var item dto.PredictionRecordResponse
		if err := copier.Copy(&item, &r); err != nil {
			return nil, fmt.Errorf("error preparing prediction response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *predictionService) storeUpload(data []byte) (string, error) {
	if s.uploadDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.uploadDir, uuid.New().String()+".img")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
