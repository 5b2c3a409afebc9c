package repository

import (
	"github.com/melisbekov/pdd-api/internal/model"
	"gorm.io/gorm"
)

type AnswerOptionRepository interface {
	Create(option *model.AnswerOption) error
	FindByID(id uint) (*model.AnswerOption, error)
	FindByQuestionID(questionID uint) ([]model.AnswerOption, error)
	Update(option *model.AnswerOption) error
	Delete(id uint) error
}

type answerOptionRepository struct {
	db *gorm.DB
}

func NewAnswerOptionRepository(db *gorm.DB) AnswerOptionRepository {
	return &answerOptionRepository{db: db}
}

func (r *answerOptionRepository) Create(option *model.AnswerOption) error {
	return r.db.Create(option).Error
}

func (r *answerOptionRepository) FindByID(id uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *answerOptionRepository) FindByQuestionID(questionID uint) ([]model.AnswerOption, error) {
	var options []model.AnswerOption
	if err := r.db.Where("question_id = ?", questionID).Order("id asc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *answerOptionRepository) Update(option *model.AnswerOption) error {
	return r.db.Save(option).Error
}

func (r *answerOptionRepository) Delete(id uint) error {
	return r.db.Delete(&model.AnswerOption{}, id).Error
}
