package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *model.Video) error
	FindByID(id uint) (*model.Video, error)
	FindAll() ([]model.Video, error)
	Update(video *model.Video) error
	Delete(id uint) error
	IncrementLikes(id uint) (*model.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	if err := r.db.First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindAll() ([]model.Video, error) {
	var videos []model.Video
	if err := r.db.Order("id asc").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Update(video *model.Video) error {
	return r.db.Save(video).Error
}

func (r *videoRepository) Delete(id uint) error {
	return r.db.Delete(&model.Video{}, id).Error
}

// IncrementLikes bumps the denormalized counter in a single statement and
// returns the fresh row. The counter is independent of the likes table.
func (r *videoRepository) IncrementLikes(id uint) (*model.Video, error) {
	err := r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
