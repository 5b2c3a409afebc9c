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

type LikeService interface {
	List() ([]dto.LikeResponse, error)
	Get(id uint) (*dto.LikeResponse, error)
	Create(req dto.LikeCreateRequest) (*dto.LikeResponse, error)
	Delete(id uint) error
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) List() ([]dto.LikeResponse, error) {
	likes, err := s.likeRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching likes: %w", err)
	}
	resp := make([]dto.LikeResponse, 0, len(likes))
	for _, l := range likes {
		var item dto.LikeResponse
		if err := copier.Copy(&item, &l); err != nil {
			return nil, fmt.Errorf("error preparing like response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *likeService) Get(id uint) (*dto.LikeResponse, error) {
	like, err := s.likeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("like %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching like: %w", err)
	}
	var resp dto.LikeResponse
	if err := copier.Copy(&resp, like); err != nil {
		return nil, fmt.Errorf("error preparing like response: %w", err)
	}
	return &resp, nil
}

func (s *likeService) Create(req dto.LikeCreateRequest) (*dto.LikeResponse, error) {
	if req.ParentCount() > 1 {
		return nil, fmt.Errorf("like may reference at most one of question/video/comment: %w", ErrInvalidInput)
	}

	like := model.Like{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		VideoID:    req.VideoID,
		CommentID:  req.CommentID,
	}
	if err := s.likeRepo.Create(&like); err != nil {
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	var resp dto.LikeResponse
	if err := copier.Copy(&resp, &like); err != nil {
		return nil, fmt.Errorf("error preparing like response: %w", err)
	}
	return &resp, nil
}

func (s *likeService) Delete(id uint) error {
	if _, err := s.likeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("like %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching like: %w", err)
	}
	return s.likeRepo.Delete(id)
}
