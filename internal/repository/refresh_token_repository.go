package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type RefreshTokenRepository interface {
	Create(token *model.RefreshToken) error
	FindByToken(token string) (*model.RefreshToken, error)
	Delete(id uint) error
	CountByUser(userID uint) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(token *model.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByToken(token string) (*model.RefreshToken, error) {
	var stored model.RefreshToken
	if err := r.db.Preload("User").Where("token = ?", token).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *refreshTokenRepository) Delete(id uint) error {
	return r.db.Delete(&model.RefreshToken{}, id).Error
}

func (r *refreshTokenRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.RefreshToken{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
