package service

import (
	"path/filepath"
	"testing"

	"github.com/melisbekov/pdd-api/config"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Category{},
		&model.Question{},
		&model.AnswerOption{},
		&model.Exam{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Favorite{},
		&model.Prediction{},
	))
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMinutes = 30
	cfg.JWT.RefreshTTLDays = 7
	return cfg
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := model.Category{CategoryName: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func seedQuestion(t *testing.T, db *gorm.DB, categoryID uint) *model.Question {
	t.Helper()
	question := model.Question{
		Text:        "What does this sign mean?",
		Explanation: "It limits the speed.",
		Difficulty:  model.DifficultyEasy,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&question).Error)
	return &question
}

func seedVideo(t *testing.T, db *gorm.DB, title string) *model.Video {
	t.Helper()
	video := model.Video{Title: title, URL: "https://example.com/" + title}
	require.NoError(t, db.Create(&video).Error)
	return &video
}
