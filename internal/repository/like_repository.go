package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *model.Like) error
	FindByID(id uint) (*model.Like, error)
	FindAll() ([]model.Like, error)
	Delete(id uint) error
	CountByVideo(videoID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) FindByID(id uint) (*model.Like, error) {
	var like model.Like
	if err := r.db.First(&like, id).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindAll() ([]model.Like, error) {
	var likes []model.Like
	if err := r.db.Order("id asc").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Like{}, id).Error
}

func (r *likeRepository) CountByVideo(videoID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
