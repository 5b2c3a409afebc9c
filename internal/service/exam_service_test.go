package service

import (
	"testing"
	"time"

	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewExamService(repository.NewExamRepository(db))
	user := seedUser(t, db, "alice")

	created, err := svc.Create(dto.ExamCreateRequest{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, model.ExamInProgress, created.Status)
	assert.Zero(t, created.Score)
	assert.Nil(t, created.FinishedAt)

	finishedAt := time.Now()
	updated, err := svc.Update(created.ID, dto.ExamCreateRequest{
		UserID:     user.ID,
		Score:      18,
		Status:     model.ExamPassed,
		FinishedAt: &finishedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ExamPassed, updated.Status)
	assert.Equal(t, 18, updated.Score)
	require.NotNil(t, updated.FinishedAt)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
