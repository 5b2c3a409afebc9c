package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	List() ([]dto.UserResponse, error)
	Get(id uint) (*dto.UserResponse, error)
	Create(req dto.UserCreateRequest) (*dto.UserResponse, error)
	Update(id uint, req dto.UserCreateRequest) (*dto.UserResponse, error)
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		var item dto.UserResponse
		if err := copier.Copy(&item, &u); err != nil {
			return nil, fmt.Errorf("error preparing user response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *userService) Get(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) Create(req dto.UserCreateRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, fmt.Errorf("username %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

// Update overwrites every mutable field from the request (full replace).
func (s *userService) Update(id uint, req dto.UserCreateRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Password = string(hash)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Age = req.Age
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) Delete(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("error fetching user: %w", err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.Info().Uint("userID", id).Msg("User deleted")
	return nil
}
