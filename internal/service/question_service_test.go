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

func newQuestionService(t *testing.T) (QuestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewFavoriteRepository(db),
	), db
}

func TestQuestionCRUDRoundTrip(t *testing.T) {
	svc, db := newQuestionService(t)
	category := seedCategory(t, db, "Road signs")

	created, err := svc.Create(dto.QuestionCreateRequest{
		Text:        "What does a red octagon mean?",
		Explanation: "Full stop.",
		CategoryID:  category.ID,
		Difficulty:  model.DifficultyEasy,
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Text, got.Text)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)

	updated, err := svc.Update(created.ID, dto.QuestionCreateRequest{
		Text:        "What does a red octagon require?",
		Explanation: "A complete stop.",
		CategoryID:  category.ID,
		Difficulty:  model.DifficultyMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyMedium, updated.Difficulty)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionListFiltered(t *testing.T) {
	svc, db := newQuestionService(t)
	signs := seedCategory(t, db, "Road signs")
	rules := seedCategory(t, db, "Right of way")
	seedQuestion(t, db, signs.ID)
	seedQuestion(t, db, signs.ID)
	seedQuestion(t, db, rules.ID)

	got, err := svc.List(dto.QuestionFilter{CategoryID: &signs.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(dto.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestToggleFavoriteFlipsState(t *testing.T) {
	svc, db := newQuestionService(t)
	user := seedUser(t, db, "alice")
	category := seedCategory(t, db, "Road signs")
	question := seedQuestion(t, db, category.ID)

	resp, err := svc.ToggleFavorite(question.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "added", resp.Status)

	var count int64
	require.NoError(t, db.Model(&model.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	resp, err = svc.ToggleFavorite(question.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "removed", resp.Status)

	require.NoError(t, db.Model(&model.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestToggleFavoriteUnknownQuestion(t *testing.T) {
	svc, db := newQuestionService(t)
	user := seedUser(t, db, "alice")

	_, err := svc.ToggleFavorite(9999, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
