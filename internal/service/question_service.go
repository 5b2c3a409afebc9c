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

type QuestionService interface {
	List(filter dto.QuestionFilter) ([]dto.QuestionResponse, error)
	Get(id uint) (*dto.QuestionResponse, error)
	Create(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	Update(id uint, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	Delete(id uint) error
	ToggleFavorite(questionID, userID uint) (*dto.FavoriteToggleResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	favoriteRepo repository.FavoriteRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, favoriteRepo repository.FavoriteRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, favoriteRepo: favoriteRepo}
}

func (s *questionService) List(filter dto.QuestionFilter) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindFiltered(repository.QuestionListFilter{
		CategoryID: filter.CategoryID,
		Difficulty: filter.Difficulty,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var item dto.QuestionResponse
		if err := copier.Copy(&item, &q); err != nil {
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *questionService) Get(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) Create(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		Text:        req.Text,
		Explanation: req.Explanation,
		CategoryID:  req.CategoryID,
		Difficulty:  req.Difficulty,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) Update(id uint, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	question.Text = req.Text
	question.Explanation = req.Explanation
	question.CategoryID = req.CategoryID
	question.Difficulty = req.Difficulty
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) Delete(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching question: %w", err)
	}
	return s.questionRepo.Delete(id)
}

// ToggleFavorite creates the favorite row when absent and removes it when
// present, so repeated calls flip the state.
func (s *questionService) ToggleFavorite(questionID, userID uint) (*dto.FavoriteToggleResponse, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	existing, err := s.favoriteRepo.FindByUserAndQuestion(userID, questionID)
	if err == nil {
		if err := s.favoriteRepo.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return &dto.FavoriteToggleResponse{Status: "removed"}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking favorite: %w", err)
	}

	if err := s.favoriteRepo.Create(&model.Favorite{UserID: userID, QuestionID: questionID}); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	log.Info().Uint("userID", userID).Uint("questionID", questionID).Msg("Question favorited")
	return &dto.FavoriteToggleResponse{Status: "added"}, nil
}
