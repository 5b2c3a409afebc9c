package service

import (
	"os"
	"testing"

	"github.com/melisbekov/pdd-api/internal/classifier"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	result *classifier.Result
	err    error
}

func (s stubPredictor) Predict([]byte) (*classifier.Result, error) {
	return s.result, s.err
}

func TestPredictReturnsFormattedResult(t *testing.T) {
	db := newTestDB(t)
	uploadDir := t.TempDir()
	svc := NewPredictionService(
		stubPredictor{result: &classifier.Result{ClassID: 14, Label: "Stop", Confidence: 0.97412}},
		repository.NewPredictionRepository(db),
		uploadDir,
	)

	resp, err := svc.Predict([]byte("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Stop", resp.Name)
	assert.Equal(t, "97.41%", resp.Confidence)

	// The upload and a history row are persisted as a side effect.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var records []model.Prediction
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "Stop", records[0].PredictedLabel)
}

func TestPredictInvalidImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewPredictionService(
		stubPredictor{err: classifier.ErrInvalidImage},
		repository.NewPredictionRepository(db),
		t.TempDir(),
	)

	_, err := svc.Predict([]byte("not an image"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	require.NoError(t, db.Model(&model.Prediction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPredictionListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPredictionRepository(db)
	svc := NewPredictionService(stubPredictor{}, repo, "")

	require.NoError(t, repo.Create(&model.Prediction{PredictedLabel: "Stop", Confidence: 0.9}))
	require.NoError(t, repo.Create(&model.Prediction{PredictedLabel: "Yield", Confidence: 0.8}))

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Yield", records[0].PredictedLabel)
}
