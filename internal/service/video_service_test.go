package service

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVideoService(t *testing.T) (VideoService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewVideoService(
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
	), db
}

func TestVideoLikeBumpsCounter(t *testing.T) {
	svc, db := newVideoService(t)
	video := seedVideo(t, db, "lesson")

	first, err := svc.Like(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalLikes)

	second, err := svc.Like(video.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.TotalLikes)

	// The counter is independent of rows in the likes table.
	var likeRows int64
	require.NoError(t, db.Model(&model.Like{}).Count(&likeRows).Error)
	assert.Zero(t, likeRows)
}

func TestVideoLikeUnknownVideo(t *testing.T) {
	svc, _ := newVideoService(t)
	_, err := svc.Like(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVideoAddComment(t *testing.T) {
	svc, db := newVideoService(t)
	user := seedUser(t, db, "alice")
	video := seedVideo(t, db, "lesson")

	comment, err := svc.AddComment(video.ID, dto.VideoCommentRequest{
		UserID: user.ID,
		Text:   "very helpful",
	})
	require.NoError(t, err)
	require.NotNil(t, comment.VideoID)
	assert.Equal(t, video.ID, *comment.VideoID)
	assert.Equal(t, "very helpful", comment.Text)

	_, err = svc.AddComment(9999, dto.VideoCommentRequest{UserID: user.ID, Text: "?"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVideoUpdateReplacesFields(t *testing.T) {
	svc, db := newVideoService(t)
	video := seedVideo(t, db, "lesson")

	updated, err := svc.Update(video.ID, dto.VideoCreateRequest{
		Title:       "lesson, part two",
		Description: "parking on a hill",
		URL:         "https://example.com/v2",
	})
	require.NoError(t, err)
	assert.Equal(t, "lesson, part two", updated.Title)
	assert.Equal(t, "https://example.com/v2", updated.URL)
}
