package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/melisbekov/pdd-api/config"
	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/melisbekov/pdd-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLMinutes = 30
	cfg.JWT.RefreshTTLDays = 7

	ctrl := NewAuthController(service.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewRefreshTokenRepository(db),
		cfg,
	))

	router := newTestRouter()
	group := router.Group("/auth")
	group.POST("/register", ctrl.Register)
	group.POST("/login", ctrl.Login)
	group.POST("/logout", ctrl.Logout)
	group.POST("/refresh", ctrl.Refresh)
	return router
}

const registerBody = `{"username":"alice","email":"alice@example.com","password":"secret123"}`

func TestAuthFlow(t *testing.T) {
	router := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.NotEmpty(t, tokens.RefreshToken)

	refreshBody, err := json.Marshal(dto.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)

	rec = doJSON(t, router, http.MethodPost, "/auth/refresh", string(refreshBody))
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed dto.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	rec = doJSON(t, router, http.MethodPost, "/auth/logout", string(refreshBody))
	require.Equal(t, http.StatusOK, rec.Code)

	// The refresh token is gone once logged out.
	rec = doJSON(t, router, http.MethodPost, "/auth/logout", string(refreshBody))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/auth/refresh", string(refreshBody))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterConflict(t *testing.T) {
	router := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", registerBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newAuthRouter(t)

	// Short password fails the min=6 binding rule.
	rec := doJSON(t, router, http.MethodPost, "/auth/register", `{"username":"bob","email":"bob@example.com","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", `{"username":"bob","email":"not-an-email","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
