package repository

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoIncrementLikes(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoRepository(db)

	video := model.Video{Title: "Parallel parking", URL: "https://example.com/v1"}
	require.NoError(t, repo.Create(&video))

	got, err := repo.IncrementLikes(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)

	got, err = repo.IncrementLikes(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)

	// The counter moves without any rows in the likes table.
	var likeRows int64
	require.NoError(t, db.Model(&model.Like{}).Count(&likeRows).Error)
	assert.Zero(t, likeRows)
}
