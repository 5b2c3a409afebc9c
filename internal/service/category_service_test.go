package service

import (
	"testing"

	"github.com/melisbekov/pdd-api/internal/dto"
	"github.com/melisbekov/pdd-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUDRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	created, err := svc.Create(dto.CategoryCreateRequest{CategoryName: "Road signs"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Road signs", got.CategoryName)

	updated, err := svc.Update(created.ID, dto.CategoryCreateRequest{CategoryName: "Traffic signs"})
	require.NoError(t, err)
	assert.Equal(t, "Traffic signs", updated.CategoryName)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Create(dto.CategoryCreateRequest{CategoryName: "Road signs"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CategoryCreateRequest{CategoryName: "Road signs"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoryGetUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
