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

type CommentService interface {
	List() ([]dto.CommentResponse, error)
	Get(id uint) (*dto.CommentResponse, error)
	Create(req dto.CommentCreateRequest) (*dto.CommentResponse, error)
	Update(id uint, req dto.CommentCreateRequest) (*dto.CommentResponse, error)
	Delete(id uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) List() ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching comments: %w", err)
	}
	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		var item dto.CommentResponse
		if err := copier.Copy(&item, &c); err != nil {
			return nil, fmt.Errorf("error preparing comment response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *commentService) Get(id uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching comment: %w", err)
	}
	var resp dto.CommentResponse
	if err := copier.Copy(&resp, comment); err != nil {
		return nil, fmt.Errorf("error preparing comment response: %w", err)
	}
	return &resp, nil
}

func (s *commentService) Create(req dto.CommentCreateRequest) (*dto.CommentResponse, error) {
	// At most one parent; the columns themselves are independently nullable.
	if req.ParentCount() > 1 {
		return nil, fmt.Errorf("comment may reference at most one of question/video: %w", ErrInvalidInput)
	}

	comment := model.Comment{
		Text:       req.Text,
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		VideoID:    req.VideoID,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	var resp dto.CommentResponse
	if err := copier.Copy(&resp, &comment); err != nil {
		return nil, fmt.Errorf("error preparing comment response: %w", err)
	}
	return &resp, nil
}

func (s *commentService) Update(id uint, req dto.CommentCreateRequest) (*dto.CommentResponse, error) {
	if req.ParentCount() > 1 {
		return nil, fmt.Errorf("comment may reference at most one of question/video: %w", ErrInvalidInput)
	}

	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching comment: %w", err)
	}

	comment.Text = req.Text
	comment.UserID = req.UserID
	comment.QuestionID = req.QuestionID
	comment.VideoID = req.VideoID
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	var resp dto.CommentResponse
	if err := copier.Copy(&resp, comment); err != nil {
		return nil, fmt.Errorf("error preparing comment response: %w", err)
	}
	return &resp, nil
}

func (s *commentService) Delete(id uint) error {
	if _, err := s.commentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching comment: %w", err)
	}
	return s.commentRepo.Delete(id)
}
