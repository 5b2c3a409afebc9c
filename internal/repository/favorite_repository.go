package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.Favorite) error
	FindByUserAndQuestion(userID, questionID uint) (*model.Favorite, error)
	FindByUser(userID uint) ([]model.Favorite, error)
	Delete(id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *favoriteRepository) FindByUserAndQuestion(userID, questionID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindByUser(userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Delete(id uint) error {
	return r.db.Delete(&model.Favorite{}, id).Error
}
