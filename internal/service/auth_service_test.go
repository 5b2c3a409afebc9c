package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/model"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewRefreshTokenRepository(db),
		newTestConfig(),
	), db
}

func registerReq(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	}
}

func tokenSubject(t *testing.T, signed string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	return claims.Subject
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, db := newAuthService(t)

	require.NoError(t, svc.Register(registerReq("alice")))

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Register(registerReq("alice")))

	dup := registerReq("alice")
	dup.Email = "other@example.com"
	assert.ErrorIs(t, svc.Register(dup), ErrConflict)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Register(registerReq("alice")))

	dup := registerReq("bob")
	dup.Email = "alice@example.com"
	assert.ErrorIs(t, svc.Register(dup), ErrConflict)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, db := newAuthService(t)
	require.NoError(t, svc.Register(registerReq("alice")))

	tokens, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, "alice", tokenSubject(t, tokens.AccessToken))

	// Exactly one persisted refresh token per successful login.
	var count int64
	require.NoError(t, db.Model(&model.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, db := newAuthService(t)
	require.NoError(t, svc.Register(registerReq("alice")))

	_, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login(dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Failed logins leave no token rows behind.
	var count int64
	require.NoError(t, db.Model(&model.RefreshToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogoutIsSingleUse(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register(registerReq("alice")))

	tokens, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(tokens.RefreshToken))
	assert.ErrorIs(t, svc.Logout(tokens.RefreshToken), ErrUnauthorized)
}

func TestLogoutUnknownToken(t *testing.T) {
	svc, _ := newAuthService(t)
	assert.ErrorIs(t, svc.Logout("never-issued"), ErrUnauthorized)
}

func TestRefreshDerivesSubjectFromOwner(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register(registerReq("alice")))

	tokens, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", tokenSubject(t, refreshed.AccessToken))
	assert.Empty(t, refreshed.RefreshToken)

	// Refresh does not consume the stored token.
	_, err = svc.Refresh(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Refresh("never-issued")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
