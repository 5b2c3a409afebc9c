package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type VideoService interface {
	List() ([]dto.VideoResponse, error)
	Get(id uint) (*dto.VideoResponse, error)
	Create(req dto.VideoCreateRequest) (*dto.VideoResponse, error)
	Update(id uint, req dto.VideoCreateRequest) (*dto.VideoResponse, error)
	Delete(id uint) error
	AddComment(videoID uint, req dto.VideoCommentRequest) (*dto.CommentResponse, error)
	Like(videoID uint) (*dto.VideoLikeResponse, error)
}

type videoService struct {
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
}

func NewVideoService(videoRepo repository.VideoRepository, commentRepo repository.CommentRepository) VideoService {
	return &videoService{videoRepo: videoRepo, commentRepo: commentRepo}
}

func (s *videoService) List() ([]dto.VideoResponse, error) {
	videos, err := s.videoRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching videos: %w", err)
	}
	resp := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		var item dto.VideoResponse
		if err := copier.Copy(&item, &v); err != nil {
			return nil, fmt.Errorf("error preparing video response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *videoService) Get(id uint) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching video: %w", err)
	}
	var resp dto.VideoResponse
	if err := copier.Copy(&resp, video); err != nil {
		return nil, fmt.Errorf("error preparing video response: %w", err)
	}
	return &resp, nil
}

func (s *videoService) Create(req dto.VideoCreateRequest) (*dto.VideoResponse, error) {
	video := model.Video{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	}
	if err := s.videoRepo.Create(&video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	var resp dto.VideoResponse
	if err := copier.Copy(&resp, &video); err != nil {
		return nil, fmt.Errorf("error preparing video response: %w", err)
	}
	return &resp, nil
}

func (s *videoService) Update(id uint, req dto.VideoCreateRequest) (*dto.VideoResponse, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching video: %w", err)
	}

	video.Title = req.Title
	video.Description = req.Description
	video.URL = req.URL
	if err := s.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	var resp dto.VideoResponse
	if err := copier.Copy(&resp, video); err != nil {
		return nil, fmt.Errorf("error preparing video response: %w", err)
	}
	return &resp, nil
}

func (s *videoService) Delete(id uint) error {
	if _, err := s.videoRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("video %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching video: %w", err)
	}
	return s.videoRepo.Delete(id)
}

func (s *videoService) AddComment(videoID uint, req dto.VideoCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video %d: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching video: %w", err)
	}

	comment := model.Comment{
		Text:    req.Text,
		UserID:  req.UserID,
		VideoID: &videoID,
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

// Like bumps the denormalized likes_count column; it does not touch the likes
// table, so the two can drift.
func (s *videoService) Like(videoID uint) (*dto.VideoLikeResponse, error) {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video %d: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching video: %w", err)
	}

	video, err := s.videoRepo.IncrementLikes(videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to like video: %w", err)
	}
	log.Info().Uint("videoID", videoID).Int("totalLikes", video.LikesCount).Msg("Video liked")
	return &dto.VideoLikeResponse{Message: "Video liked", TotalLikes: video.LikesCount}, nil
}
