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

type ExamService interface {
	List() ([]dto.ExamResponse, error)
	Get(id uint) (*dto.ExamResponse, error)
	Create(req dto.ExamCreateRequest) (*dto.ExamResponse, error)
	Update(id uint, req dto.ExamCreateRequest) (*dto.ExamResponse, error)
	Delete(id uint) error
}

type examService struct {
	examRepo repository.ExamRepository
}

func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examService{examRepo: examRepo}
}

func (s *examService) List() ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}
	resp := make([]dto.ExamResponse, 0, len(exams))
	for _, e := range exams {
		var item dto.ExamResponse
		if err := copier.Copy(&item, &e); err != nil {
			return nil, fmt.Errorf("error preparing exam response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *examService) Get(id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("exam %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching exam: %w", err)
	}
	var resp dto.ExamResponse
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}

func (s *examService) Create(req dto.ExamCreateRequest) (*dto.ExamResponse, error) {
	status := req.Status
	if status == "" {
		status = model.ExamInProgress
	}

	exam := model.Exam{
		UserID:     req.UserID,
		Score:      req.Score,
		Status:     status,
		FinishedAt: req.FinishedAt,
	}
	if err := s.examRepo.Create(&exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}

	var resp dto.ExamResponse
	if err := copier.Copy(&resp, &exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}

func (s *examService) Update(id uint, req dto.ExamCreateRequest) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("exam %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching exam: %w", err)
	}

	exam.UserID = req.UserID
	exam.Score = req.Score
	if req.Status != "" {
		exam.Status = req.Status
	}
	exam.FinishedAt = req.FinishedAt
	if err := s.examRepo.Update(exam); err != nil {
		return nil, fmt.Errorf("failed to update exam: %w", err)
	}

	var resp dto.ExamResponse
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	return &resp, nil
}

func (s *examService) Delete(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("exam %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching exam: %w", err)
	}
	return s.examRepo.Delete(id)
}
