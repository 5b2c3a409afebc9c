package service

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	age := 34
	created, err := svc.Create(dto.UserCreateRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
		Age:       &age,
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Alice", got.FirstName)
	require.NotNil(t, got.Age)
	assert.Equal(t, 34, *got.Age)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(dto.UserCreateRequest{Username: "alice", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(dto.UserCreateRequest{Username: "alice", Email: "b@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	created, err := svc.Create(dto.UserCreateRequest{Username: "alice", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.UserCreateRequest{
		Username: "alice",
		Email:    "new@example.com",
		Password: "rotated1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
