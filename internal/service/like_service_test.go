package service

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRejectsMultipleParents(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(repository.NewLikeRepository(db))
	user := seedUser(t, db, "alice")
	category := seedCategory(t, db, "Road signs")
	question := seedQuestion(t, db, category.ID)
	video := seedVideo(t, db, "lesson")

	_, err := svc.Create(dto.LikeCreateRequest{
		UserID:     user.ID,
		QuestionID: &question.ID,
		VideoID:    &video.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLikeSingleParentAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(repository.NewLikeRepository(db))
	user := seedUser(t, db, "alice")
	video := seedVideo(t, db, "lesson")

	created, err := svc.Create(dto.LikeCreateRequest{UserID: user.ID, VideoID: &video.ID})
	require.NoError(t, err)
	require.NotNil(t, created.VideoID)
	assert.Equal(t, video.ID, *created.VideoID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
