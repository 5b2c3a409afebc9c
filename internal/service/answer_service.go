package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"gorm.io/gorm"
)

type AnswerService interface {
	ListByQuestion(questionID uint) ([]dto.AnswerOptionResponse, error)
	Create(questionID uint, req dto.AnswerOptionCreateRequest) (*dto.AnswerOptionResponse, error)
	Update(answerID uint, req dto.AnswerOptionCreateRequest) (*dto.AnswerOptionResponse, error)
	Delete(answerID uint) error
}

type answerService struct {
	answerRepo   repository.AnswerOptionRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(answerRepo repository.AnswerOptionRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{answerRepo: answerRepo, questionRepo: questionRepo}
}

func (s *answerService) ListByQuestion(questionID uint) ([]dto.AnswerOptionResponse, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	options, err := s.answerRepo.FindByQuestionID(questionID)
	if err != nil {
		return nil, fmt.Errorf("error fetching answer options: %w", err)
	}
	resp := make([]dto.AnswerOptionResponse, 0, len(options))
	for _, o := range options {
		var item dto.AnswerOptionResponse
		if err := copier.Copy(&item, &o); err != nil {
			return nil, fmt.Errorf("error preparing answer response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *answerService) Create(questionID uint, req dto.AnswerOptionCreateRequest) (*dto.AnswerOptionResponse, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	option := model.AnswerOption{
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
		QuestionID: questionID,
	}
	if err := s.answerRepo.Create(&option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}

	var resp dto.AnswerOptionResponse
	if err := copier.Copy(&resp, &option); err != nil {
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}
	return &resp, nil
}

func (s *answerService) Update(answerID uint, req dto.AnswerOptionCreateRequest) (*dto.AnswerOptionResponse, error) {
	option, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer option %d: %w", answerID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching answer option: %w", err)
	}

	option.Text = req.Text
	option.IsCorrect = req.IsCorrect
	if err := s.answerRepo.Update(option); err != nil {
		return nil, fmt.Errorf("failed to update answer option: %w", err)
	}

	var resp dto.AnswerOptionResponse
	if err := copier.Copy(&resp, option); err != nil {
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}
	return &resp, nil
}

func (s *answerService) Delete(answerID uint) error {
	if _, err := s.answerRepo.FindByID(answerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("answer option %d: %w", answerID, ErrNotFound)
		}
		return fmt.Errorf("error fetching answer option: %w", err)
	}
	return s.answerRepo.Delete(answerID)
}
