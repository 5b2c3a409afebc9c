package repository

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserFindByUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "driver")

	byName, err := repo.FindByUsername("driver")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail("driver@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserDeleteCascadesRefreshTokensOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "driver")

	require.NoError(t, db.Create(&model.RefreshToken{UserID: user.ID, Token: "tok-1"}).Error)
	require.NoError(t, db.Create(&model.RefreshToken{UserID: user.ID, Token: "tok-2"}).Error)
	require.NoError(t, db.Create(&model.Comment{UserID: user.ID, Text: "left behind"}).Error)

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var tokens int64
	require.NoError(t, db.Model(&model.RefreshToken{}).Where("user_id = ?", user.ID).Count(&tokens).Error)
	assert.Zero(t, tokens)

	var comments int64
	require.NoError(t, db.Model(&model.Comment{}).Where("user_id = ?", user.ID).Count(&comments).Error)
	assert.EqualValues(t, 1, comments)
}
