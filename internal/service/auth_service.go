package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/melisbekov/pdd-api/config"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) error
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(refreshToken string) error
	Refresh(refreshToken string) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) error {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return fmt.Errorf("username %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return fmt.Errorf("email %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
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
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("username", req.Username).Msg("User registered")
	return nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		// Same answer for unknown user and bad password.
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	accessToken, err := s.signToken(user.Username, time.Duration(s.cfg.JWT.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.signToken(user.Username, time.Duration(s.cfg.JWT.RefreshTTLDays)*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	// One row per login; multiple concurrent sessions are fine.
	if err := s.tokenRepo.Create(&model.RefreshToken{UserID: user.ID, Token: refreshToken}); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Logout(refreshToken string) error {
	stored, err := s.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		return fmt.Errorf("unknown refresh token: %w", ErrUnauthorized)
	}
	if err := s.tokenRepo.Delete(stored.ID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (s *authService) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("unknown refresh token: %w", ErrUnauthorized)
	}

	// Subject comes from the owning user, not the token row.
	accessToken, err := s.signToken(stored.User.Username, time.Duration(s.cfg.JWT.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

func (s *authService) signToken(subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
